// Package visibility keeps the results surface mounted for a linger period
// after results stop showing, so exit transitions can play.
package visibility

import (
	"sync"
	"time"

	"github.com/quickfind/quickfind-terminal/pkg/clock"
	"github.com/quickfind/quickfind-terminal/pkg/models"
)

// DefaultLinger is how long the surface stays after results hide
const DefaultLinger = 400 * time.Millisecond

// PhaseFunc is told about every visibility transition
type PhaseFunc func(from, to models.VisibilityPhase)

// Controller owns the visibility phase. It starts Unmounted.
type Controller struct {
	mu       sync.Mutex
	clock    clock.Scheduler
	linger   time.Duration
	onChange PhaseFunc

	phase      models.VisibilityPhase
	timer      clock.Timer
	generation uint64
}

// New creates a controller. onChange may be nil; it is called without the
// controller's lock held.
func New(scheduler clock.Scheduler, linger time.Duration, onChange PhaseFunc) *Controller {
	if scheduler == nil {
		scheduler = clock.Real()
	}
	if linger <= 0 {
		linger = DefaultLinger
	}
	return &Controller{
		clock:    scheduler,
		linger:   linger,
		onChange: onChange,
	}
}

// Phase returns the current visibility phase
func (c *Controller) Phase() models.VisibilityPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Present reports whether the surface should be rendered at all
func (c *Controller) Present() bool {
	return c.Phase() != models.VisibilityUnmounted
}

// Linger returns the hide delay
func (c *Controller) Linger() time.Duration {
	return c.linger
}

// SetShowing reports the logical "results are showing" flag. Showing mounts
// immediately and cancels a pending unmount; hiding a mounted surface starts
// the linger timer.
func (c *Controller) SetShowing(showing bool) {
	c.mu.Lock()
	from := c.phase

	switch {
	case showing:
		c.stopTimerLocked()
		c.phase = models.VisibilityMounted
	case c.phase == models.VisibilityMounted:
		c.stopTimerLocked()
		gen := c.generation
		c.timer = c.clock.AfterFunc(c.linger, func() { c.unmount(gen) })
		c.phase = models.VisibilityHidingPending
	}

	to := c.phase
	c.mu.Unlock()

	c.notify(from, to)
}

// FollowSearch derives the showing flag from a search phase
func (c *Controller) FollowSearch(phase models.SearchPhase) {
	c.SetShowing(phase == models.PhaseResultsReady)
}

// Stop cancels a pending unmount without changing the phase
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

func (c *Controller) unmount(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.phase != models.VisibilityHidingPending {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.phase = models.VisibilityUnmounted
	c.mu.Unlock()

	c.notify(models.VisibilityHidingPending, models.VisibilityUnmounted)
}

func (c *Controller) stopTimerLocked() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) notify(from, to models.VisibilityPhase) {
	if from == to || c.onChange == nil {
		return
	}
	c.onChange(from, to)
}
