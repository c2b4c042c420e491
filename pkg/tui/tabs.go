package tui

import (
	"fmt"
	"strings"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// RenderTabs draws the offered tab chips with the animated counts
func RenderTabs(chips []models.TabChip, counter *Counter) string {
	parts := make([]string, 0, len(chips))
	for _, chip := range chips {
		count := chip.Count
		if counter != nil {
			count = counter.Value(chip.Tab)
		}

		label := InactiveTabStyle.Render(string(chip.Tab))
		badge := CountBadgeStyle.Render(fmt.Sprintf("%d", count))
		if chip.Active {
			label = ActiveTabStyle.Render(string(chip.Tab))
			badge = ActiveCountBadgeStyle.Render(fmt.Sprintf("%d", count))
		}
		parts = append(parts, label+" "+badge)
	}
	return strings.Join(parts, "   ")
}

// nextTab returns the offered tab after (or before, with step -1) the
// active one. An active tab that is not offered restarts from All.
func nextTab(chips []models.TabChip, active models.Tab, step int) models.Tab {
	if len(chips) == 0 {
		return models.TabAll
	}
	for i, chip := range chips {
		if chip.Tab == active {
			return chips[(i+step+len(chips))%len(chips)].Tab
		}
	}
	return models.TabAll
}
