package models

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog-related errors
var (
	ErrUnknownItemType = errors.New("unknown catalog item type")
	ErrEmptyItemName   = errors.New("catalog item name cannot be empty")
)

// CatalogEntry is the on-disk form of a result item. Only the fields of the
// entry's type are read.
type CatalogEntry struct {
	Type         Kind        `yaml:"type" json:"type"`
	Name         string      `yaml:"name" json:"name"`
	Status       string      `yaml:"status,omitempty" json:"status,omitempty"`
	Avatar       string      `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	StatusColor  string      `yaml:"status_color,omitempty" json:"status_color,omitempty"`
	Location     string      `yaml:"location,omitempty" json:"location,omitempty"`
	Time         string      `yaml:"time,omitempty" json:"time,omitempty"`
	Subtype      FileSubtype `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Count        string      `yaml:"count,omitempty" json:"count,omitempty"`
	LastMessage  string      `yaml:"last_message,omitempty" json:"last_message,omitempty"`
	Participants int         `yaml:"participants,omitempty" json:"participants,omitempty"`
	Items        int         `yaml:"items,omitempty" json:"items,omitempty"`
	Completed    int         `yaml:"completed,omitempty" json:"completed,omitempty"`
}

// CatalogFile is the document stored in catalog.yaml
type CatalogFile struct {
	Items []CatalogEntry `yaml:"items"`
}

// Item converts the entry into its result item variant
func (e CatalogEntry) Item() (ResultItem, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, ErrEmptyItemName
	}

	switch Kind(strings.ToLower(string(e.Type))) {
	case KindPerson:
		return Person{Name: e.Name, Status: e.Status, AvatarGlyph: e.Avatar, StatusColorTag: e.StatusColor}, nil
	case KindFile:
		subtype := e.Subtype
		switch subtype {
		case FileSubtypeImage, FileSubtypeVideo:
		default:
			subtype = FileSubtypeGeneric
		}
		return File{Name: e.Name, Location: e.Location, Time: e.Time, Subtype: subtype}, nil
	case KindFolder:
		return Folder{Name: e.Name, Count: e.Count, Location: e.Location, Time: e.Time}, nil
	case KindChat:
		return Chat{Name: e.Name, LastMessage: e.LastMessage, Time: e.Time, ParticipantCount: e.Participants}, nil
	case KindList:
		return List{Name: e.Name, ItemCount: e.Items, CompletedCount: e.Completed, Time: e.Time}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, e.Type)
	}
}

// EntryFor converts a result item back into its on-disk form
func EntryFor(item ResultItem) CatalogEntry {
	switch it := item.(type) {
	case Person:
		return CatalogEntry{Type: KindPerson, Name: it.Name, Status: it.Status, Avatar: it.AvatarGlyph, StatusColor: it.StatusColorTag}
	case File:
		return CatalogEntry{Type: KindFile, Name: it.Name, Location: it.Location, Time: it.Time, Subtype: it.Subtype}
	case Folder:
		return CatalogEntry{Type: KindFolder, Name: it.Name, Count: it.Count, Location: it.Location, Time: it.Time}
	case Chat:
		return CatalogEntry{Type: KindChat, Name: it.Name, LastMessage: it.LastMessage, Time: it.Time, Participants: it.ParticipantCount}
	case List:
		return CatalogEntry{Type: KindList, Name: it.Name, Items: it.ItemCount, Completed: it.CompletedCount, Time: it.Time}
	default:
		panic("models: unknown result item variant")
	}
}

// Decode converts every entry, stopping at the first invalid one
func (c CatalogFile) Decode() ([]ResultItem, error) {
	items := make([]ResultItem, 0, len(c.Items))
	for i, entry := range c.Items {
		item, err := entry.Item()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}
