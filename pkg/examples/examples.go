package examples

import (
	"fmt"

	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// ExampleSet represents a collection of related sample items
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Items       []models.ResultItem
}

// Categories lists the valid example categories, "all" last
var Categories = []string{"demo", "team", "all"}

// GetExamples returns example sets for the given category
func GetExamples(category string) []ExampleSet {
	switch category {
	case "demo":
		return withCategory("demo", getDemoExamples())
	case "team":
		return withCategory("team", getTeamExamples())
	case "all":
		var all []ExampleSet
		all = append(all, withCategory("demo", getDemoExamples())...)
		all = append(all, withCategory("team", getTeamExamples())...)
		return all
	default:
		return []ExampleSet{}
	}
}

func withCategory(category string, sets []ExampleSet) []ExampleSet {
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}

// DefaultCatalog returns the catalog used when no catalog.yaml exists
func DefaultCatalog() []models.ResultItem {
	var items []models.ResultItem
	for _, set := range getDemoExamples() {
		items = append(items, set.Items...)
	}
	return items
}

// InstallSet appends a set's items to the project catalog. Items whose kind
// and name already exist are skipped unless force is set, in which case they
// are replaced in place. It returns how many items were written.
func InstallSet(set ExampleSet, force bool) (int, error) {
	existing, err := files.ReadCatalog()
	if err != nil {
		return 0, err
	}

	index := make(map[string]int, len(existing))
	for i, item := range existing {
		index[itemKey(item)] = i
	}

	written := 0
	for _, item := range set.Items {
		if i, ok := index[itemKey(item)]; ok {
			if !force {
				continue
			}
			existing[i] = item
			written++
			continue
		}
		index[itemKey(item)] = len(existing)
		existing = append(existing, item)
		written++
	}

	if written == 0 {
		return 0, nil
	}
	if err := files.WriteCatalog(existing); err != nil {
		return 0, fmt.Errorf("failed to install %s: %w", set.Name, err)
	}
	return written, nil
}

func itemKey(item models.ResultItem) string {
	return string(item.Kind()) + "/" + models.NameOf(item)
}
