// Package lifecycle debounces query input into the idle, debouncing and
// results-ready search phases.
package lifecycle

import (
	"sync"
	"time"

	"github.com/quickfind/quickfind-terminal/pkg/clock"
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
)

// DefaultDebounce is the quiet period before results are shown
const DefaultDebounce = 600 * time.Millisecond

// PhaseFunc is told about every phase transition
type PhaseFunc func(from, to models.SearchPhase)

// Controller owns the search phase. At most one settle timer is outstanding.
type Controller struct {
	mu       sync.Mutex
	clock    clock.Scheduler
	debounce time.Duration
	onChange PhaseFunc

	phase      models.SearchPhase
	timer      clock.Timer
	generation uint64
}

// New creates a controller in the Idle phase. onChange may be nil; it is
// called without the controller's lock held.
func New(scheduler clock.Scheduler, debounce time.Duration, onChange PhaseFunc) *Controller {
	if scheduler == nil {
		scheduler = clock.Real()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{
		clock:    scheduler,
		debounce: debounce,
		onChange: onChange,
	}
}

// Phase returns the current phase
func (c *Controller) Phase() models.SearchPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Debounce returns the settle duration
func (c *Controller) Debounce() time.Duration {
	return c.debounce
}

// Submit feeds new query text. A blank query clears synchronously; anything
// else restarts the settle timer and enters Debouncing.
func (c *Controller) Submit(query string) {
	if search.IsBlank(query) {
		c.Clear()
		return
	}

	c.mu.Lock()
	c.stopTimerLocked()
	gen := c.generation
	c.timer = c.clock.AfterFunc(c.debounce, func() { c.settle(gen) })
	from := c.phase
	c.phase = models.PhaseDebouncing
	c.mu.Unlock()

	c.notify(from, models.PhaseDebouncing)
}

// Clear cancels any pending settle timer and returns to Idle
func (c *Controller) Clear() {
	c.mu.Lock()
	c.stopTimerLocked()
	from := c.phase
	c.phase = models.PhaseIdle
	c.mu.Unlock()

	c.notify(from, models.PhaseIdle)
}

// Stop cancels the pending timer without changing the phase
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

func (c *Controller) settle(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.phase != models.PhaseDebouncing {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.phase = models.PhaseResultsReady
	c.mu.Unlock()

	c.notify(models.PhaseDebouncing, models.PhaseResultsReady)
}

// stopTimerLocked invalidates the outstanding timer, including one whose
// callback is already running on another goroutine
func (c *Controller) stopTimerLocked() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) notify(from, to models.SearchPhase) {
	if from == to || c.onChange == nil {
		return
	}
	c.onChange(from, to)
}
