package stream

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// A Pattern renders a frame for a point in time. Elapsed time is measured
// from when the pattern started playing.
type Pattern interface {
	CalculateFrame(elapsed time.Duration) *Frame
}

// Solid is a Pattern of one colour.
type Solid struct {
	Colour colorful.Color
	Pixels int
}

// CalculateFrame creates a new Frame instance.
func (s Solid) CalculateFrame(time.Duration) *Frame {
	f := NewFrame(s.Pixels)
	f.Fill(s.Colour)
	return f
}
