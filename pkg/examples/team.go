package examples

import "github.com/quickfind/quickfind-terminal/pkg/models"

func getTeamExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Release channels",
			Description: "Chats around a product release",
			Items: []models.ResultItem{
				models.Chat{
					Name:             "Release Planning",
					LastMessage:      "Freeze moves to Thursday",
					Time:             "35m ago",
					ParticipantCount: 8,
				},
				models.Chat{
					Name:             "Launch War Room",
					LastMessage:      "Dashboards look green",
					Time:             "1d ago",
					ParticipantCount: 12,
				},
				models.Chat{
					Name:             "Support Escalations",
					LastMessage:      "Release notes link is broken",
					Time:             "3d ago",
					ParticipantCount: 4,
				},
			},
		},
		{
			Name:        "Release checklists",
			Description: "Lists and documents for shipping",
			Items: []models.ResultItem{
				models.List{
					Name:           "Release Checklist",
					ItemCount:      20,
					CompletedCount: 14,
					Time:           "Updated 2h ago",
				},
				models.List{
					Name:           "Onboarding Tasks",
					ItemCount:      9,
					CompletedCount: 9,
					Time:           "Updated 1w ago",
				},
				models.File{
					Name:     "release_notes_v2.md",
					Location: "in Docs",
					Time:     "Edited 4h ago",
					Subtype:  models.FileSubtypeGeneric,
				},
				models.Folder{
					Name:     "Release Assets",
					Count:    "31 Files",
					Location: "in Marketing",
					Time:     "Edited 5h ago",
				},
			},
		},
	}
}
