package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// IsBlank reports whether a query carries no search text
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Matches reports whether item contains query in any of its searchable
// fields, ignoring case. A blank query matches nothing.
func Matches(item models.ResultItem, query string) bool {
	if IsBlank(query) {
		return false
	}
	lowerQuery := strings.ToLower(query)
	for _, field := range searchableFields(item) {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

// searchableFields returns the text fields a query is tested against
func searchableFields(item models.ResultItem) []string {
	switch it := item.(type) {
	case models.Person:
		return []string{it.Name, it.Status}
	case models.File:
		return []string{it.Name, it.Location}
	case models.Folder:
		return []string{it.Name, it.Location}
	case models.Chat:
		return []string{it.Name, it.LastMessage}
	case models.List:
		return []string{it.Name}
	default:
		panic(fmt.Sprintf("search: unknown result item variant %T", item))
	}
}

// FacetOf returns the facet an item is counted under
func FacetOf(item models.ResultItem) models.FacetKey {
	switch item.(type) {
	case models.File, models.Folder:
		return models.FacetFiles
	case models.Person:
		return models.FacetPeople
	case models.Chat:
		return models.FacetChats
	case models.List:
		return models.FacetLists
	default:
		panic(fmt.Sprintf("search: unknown result item variant %T", item))
	}
}

// Subtext returns the secondary line shown under an item's name
func Subtext(item models.ResultItem) string {
	switch it := item.(type) {
	case models.Person:
		return it.Status
	case models.File:
		return it.Location + " • " + it.Time
	case models.Folder:
		text := it.Location + " • " + it.Time
		if it.Count != "" {
			text += " • " + it.Count
		}
		return text
	case models.Chat:
		return fmt.Sprintf("%s • %d participants", it.LastMessage, it.ParticipantCount)
	case models.List:
		return fmt.Sprintf("%d/%d completed • %s", it.CompletedCount, it.ItemCount, it.Time)
	default:
		panic(fmt.Sprintf("search: unknown result item variant %T", item))
	}
}

// Slug derives the stable link segment of a name: lower case with every
// whitespace run replaced by a hyphen.
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// DeepLink builds the shareable URL of an item under origin
func DeepLink(origin string, item models.ResultItem) string {
	origin = strings.TrimRight(origin, "/")
	return fmt.Sprintf("%s/%s/%s", origin, item.Kind(), Slug(models.NameOf(item)))
}
