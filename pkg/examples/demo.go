package examples

import "github.com/quickfind/quickfind-terminal/pkg/models"

func getDemoExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Dribbble workspace",
			Description: "People, media and a project folder that all match \"dribb\"",
			Items: []models.ResultItem{
				models.Person{
					Name:           "Caroline Dribsson",
					Status:         "Unactivated",
					AvatarGlyph:    "👩‍💼",
					StatusColorTag: "red",
				},
				models.Person{
					Name:           "Adam Cadribean",
					Status:         "Active 1w ago",
					AvatarGlyph:    "👨‍💻",
					StatusColorTag: "yellow",
				},
				models.File{
					Name:     "final_dribbble_presentation.jpg",
					Location: "in Presentations",
					Time:     "Edited 1w ago",
					Subtype:  models.FileSubtypeImage,
				},
				models.Person{
					Name:           "Margareth Cendribgssen",
					Status:         "Active 1w ago",
					AvatarGlyph:    "👩‍🎨",
					StatusColorTag: "yellow",
				},
				models.File{
					Name:     "dribbble_animation.avi",
					Location: "in Videos",
					Time:     "Added 1y ago",
					Subtype:  models.FileSubtypeVideo,
				},
				models.Folder{
					Name:     "Dribbble Folder",
					Count:    "12 Files",
					Location: "in Projects",
					Time:     "Edited 2m ago",
				},
			},
		},
		{
			Name:        "Team basics",
			Description: "A design chat and a project checklist",
			Items: []models.ResultItem{
				models.Chat{
					Name:             "Design Team Discussion",
					LastMessage:      "Hey, can you review the latest mockups?",
					Time:             "2h ago",
					ParticipantCount: 5,
				},
				models.List{
					Name:           "Project Checklist",
					ItemCount:      12,
					CompletedCount: 8,
					Time:           "Updated 1d ago",
				},
			},
		},
	}
}
