package stream

import (
	"sync"
	"time"
)

// Controller that manages patterns. It plays one pattern and, when another
// is swapped in, crossfades to it over the transition time.
type Controller struct {
	mu sync.Mutex

	pattern        Pattern
	startedAt      time.Duration
	next           Pattern
	nextStartedAt  time.Duration
	pending        bool
	transitionTime time.Duration
}

// NewController creates an instance of a Controller.
func NewController(pattern Pattern, transitionTime time.Duration) *Controller {
	return &Controller{
		pattern:        pattern,
		transitionTime: transitionTime,
	}
}

// Swap schedules a crossfade to p starting at the next frame. A swap that
// arrives mid-transition replaces the pattern being faded in.
func (c *Controller) Swap(p Pattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = p
	c.pending = true
}

// Current returns the pattern that is fully shown or being faded out.
func (c *Controller) Current() Pattern {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pattern
}

// Describe calls fn with the current pattern while holding the lock that
// frame rendering takes, so fn may query the pattern's animation safely.
func (c *Controller) Describe(fn func(Pattern)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.pattern)
}

// CalculateFrame creates a new Frame instance.
func (c *Controller) CalculateFrame(elapsed time.Duration) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		c.pending = false
		c.nextStartedAt = elapsed
	}
	if c.next != nil && elapsed-c.nextStartedAt >= c.transitionTime {
		c.pattern, c.startedAt, c.next = c.next, c.nextStartedAt, nil
	}

	f := c.pattern.CalculateFrame(elapsed - c.startedAt)
	if c.next == nil {
		return f
	}

	transition := float64(elapsed-c.nextStartedAt) / float64(c.transitionTime)
	f2 := c.next.CalculateFrame(elapsed - c.nextStartedAt)
	return f.InterpolateFrame(f2, transition)
}
