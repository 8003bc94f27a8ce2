package stream

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/stretchr/testify/assert"
)

// clockPattern records the elapsed times it is asked to render.
type clockPattern struct {
	Solid
	calls []time.Duration
}

func (p *clockPattern) CalculateFrame(elapsed time.Duration) *Frame {
	p.calls = append(p.calls, elapsed)
	return p.Solid.CalculateFrame(elapsed)
}

func TestControllerCrossfade(t *testing.T) {
	red := &clockPattern{Solid: Solid{Colour: colorful.Color{R: 1}, Pixels: 4}}
	blue := &clockPattern{Solid: Solid{Colour: colorful.Color{B: 1}, Pixels: 4}}

	c := NewController(red, 100*time.Millisecond)
	assert.Equal(t, red.Colour, c.CalculateFrame(time.Second).Pixel(0))

	c.Swap(blue)
	assert.Same(t, red, c.Current(), "swap waits for the next frame")

	start := c.CalculateFrame(2 * time.Second).Pixel(0)
	assert.True(t, start.AlmostEqualRgb(red.Colour))

	mid := c.CalculateFrame(2*time.Second + 50*time.Millisecond).Pixel(0)
	assert.False(t, mid.AlmostEqualRgb(red.Colour))
	assert.False(t, mid.AlmostEqualRgb(blue.Colour))

	end := c.CalculateFrame(2*time.Second + 100*time.Millisecond).Pixel(0)
	assert.Equal(t, blue.Colour, end)
	assert.Same(t, blue, c.Current())

	// Each pattern sees time from when it started playing.
	assert.Equal(t, []time.Duration{0, 50 * time.Millisecond, 100 * time.Millisecond}, blue.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 2*time.Second + 50*time.Millisecond}, red.calls)
}

func TestControllerImmediateSwap(t *testing.T) {
	red := Solid{Colour: colorful.Color{R: 1}, Pixels: 2}
	blue := Solid{Colour: colorful.Color{B: 1}, Pixels: 2}

	c := NewController(red, 0)
	c.Swap(blue)
	assert.Equal(t, blue.Colour, c.CalculateFrame(time.Second).Pixel(0))
	assert.Equal(t, blue, c.Current())
}

func TestControllerSwapDuringTransition(t *testing.T) {
	red := Solid{Colour: colorful.Color{R: 1}, Pixels: 2}
	green := Solid{Colour: colorful.Color{G: 1}, Pixels: 2}
	blue := Solid{Colour: colorful.Color{B: 1}, Pixels: 2}

	c := NewController(red, 100*time.Millisecond)
	c.Swap(green)
	c.CalculateFrame(0)
	c.CalculateFrame(50 * time.Millisecond)

	c.Swap(blue)
	c.CalculateFrame(60 * time.Millisecond)
	assert.Equal(t, red, c.Current())
	assert.Equal(t, blue.Colour, c.CalculateFrame(160*time.Millisecond).Pixel(0))
}

func TestControllerDescribeRunsUnderLock(t *testing.T) {
	red := Solid{Colour: colorful.Color{R: 1}, Pixels: 2}
	c := NewController(red, 0)

	var seen Pattern
	c.Describe(func(p Pattern) {
		seen = p
		assert.False(t, c.mu.TryLock(), "lock is held while describing")
	})
	assert.Equal(t, red, seen)
	assert.True(t, c.mu.TryLock())
	c.mu.Unlock()
}

func TestControllerDescribeConcurrentWithFrames(t *testing.T) {
	set := anim.NewSet(false)
	set.AddAnimation(anim.NewAlpha(0, 1))
	set.SetDuration(time.Second)
	c := NewController(NewSprite(set, Solid{Pixels: 20}, testStreamConfig()), 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			c.CalculateFrame(time.Duration(i) * 10 * time.Millisecond)
		}
	}()
	for i := 0; i < 100; i++ {
		c.Describe(func(p Pattern) {
			set.Invalidate()
			assert.Equal(t, time.Second, p.(*Sprite).Animation().Duration())
		})
	}
	<-done
}
