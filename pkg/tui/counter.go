package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickfind/quickfind-terminal/pkg/models"
)

const counterFrame = 40 * time.Millisecond

// counterTickMsg advances the count animation by one frame
type counterTickMsg struct{}

// Counter eases the displayed tab counts toward the real ones. It holds
// presentation state only; the widget owns the authoritative counts.
type Counter struct {
	animate   bool
	displayed map[models.Tab]float64
	target    models.Counts
	ticking   bool
}

// NewCounter creates a counter; with animate off counts snap immediately
func NewCounter(animate bool) *Counter {
	return &Counter{
		animate:   animate,
		displayed: make(map[models.Tab]float64, len(models.Tabs)),
	}
}

// SetTarget records new counts and returns the tick command needed to
// animate toward them, if any
func (c *Counter) SetTarget(counts models.Counts) tea.Cmd {
	c.target = counts
	if !c.animate {
		c.snap()
		return nil
	}
	if c.ticking || c.settled() {
		return nil
	}
	c.ticking = true
	return counterTick()
}

// Step moves every count one frame closer to its target
func (c *Counter) Step() tea.Cmd {
	for _, tab := range models.Tabs {
		want := float64(c.target.Get(tab))
		cur := c.displayed[tab]
		diff := want - cur
		if math.Abs(diff) < 1 {
			c.displayed[tab] = want
			continue
		}
		step := math.Max(1, math.Abs(diff)*0.35)
		c.displayed[tab] = cur + math.Copysign(step, diff)
	}

	if c.settled() {
		c.ticking = false
		return nil
	}
	return counterTick()
}

// Value returns the count to display for a tab
func (c *Counter) Value(tab models.Tab) int {
	return int(math.Round(c.displayed[tab]))
}

func (c *Counter) snap() {
	for _, tab := range models.Tabs {
		c.displayed[tab] = float64(c.target.Get(tab))
	}
	c.ticking = false
}

func (c *Counter) settled() bool {
	for _, tab := range models.Tabs {
		if c.displayed[tab] != float64(c.target.Get(tab)) {
			return false
		}
	}
	return true
}

func counterTick() tea.Cmd {
	return tea.Tick(counterFrame, func(time.Time) tea.Msg {
		return counterTickMsg{}
	})
}
