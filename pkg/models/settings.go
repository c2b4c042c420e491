package models

import "time"

// Settings represents the application configuration
type Settings struct {
	Search SearchSettings `yaml:"search"`
	Facets FacetSettings  `yaml:"facets"`
	UI     UISettings     `yaml:"ui"`
	Server ServerSettings `yaml:"server"`
	Log    LogSettings    `yaml:"log"`
}

// SearchSettings controls the search timing and link format
type SearchSettings struct {
	Debounce   time.Duration `yaml:"debounce"`
	Linger     time.Duration `yaml:"linger"`
	LinkOrigin string        `yaml:"link_origin"`
}

// FacetSettings controls which facet tabs are offered
type FacetSettings struct {
	Files  bool `yaml:"files"`
	People bool `yaml:"people"`
	Chats  bool `yaml:"chats"`
	Lists  bool `yaml:"lists"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowSubtext      bool `yaml:"show_subtext"`
	AnimateCounts    bool `yaml:"animate_counts"`
	MaxResultsHeight int  `yaml:"max_results_height"`
}

// ServerSettings controls the quickfind serve command
type ServerSettings struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
	WatchCatalog   bool     `yaml:"watch_catalog"`
}

// LogSettings controls where logs are written
type LogSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Map returns the facet flags keyed by facet
func (f FacetSettings) Map() map[FacetKey]bool {
	return map[FacetKey]bool{
		FacetFiles:  f.Files,
		FacetPeople: f.People,
		FacetChats:  f.Chats,
		FacetLists:  f.Lists,
	}
}

// FacetSettingsFrom builds the yaml form from a facet map
func FacetSettingsFrom(m map[FacetKey]bool) FacetSettings {
	return FacetSettings{
		Files:  m[FacetFiles],
		People: m[FacetPeople],
		Chats:  m[FacetChats],
		Lists:  m[FacetLists],
	}
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			Debounce:   600 * time.Millisecond,
			Linger:     400 * time.Millisecond,
			LinkOrigin: "http://localhost:8088",
		},
		Facets: FacetSettings{
			Files:  true,
			People: true,
			Chats:  false,
			Lists:  false,
		},
		UI: UISettings{
			ShowSubtext:      true,
			AnimateCounts:    true,
			MaxResultsHeight: 12,
		},
		Server: ServerSettings{
			Addr:         ":8088",
			WatchCatalog: true,
		},
		Log: LogSettings{
			File:  "quickfind.log",
			Level: "info",
		},
	}
}
