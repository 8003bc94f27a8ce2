package anim

import (
	"math"
	"time"
)

// Infinite is the duration hint of an animation that never ends.
const Infinite = time.Duration(math.MaxInt64)

// Animation is implemented by every animation, single or grouped, so that
// sets can be nested arbitrarily.
type Animation interface {
	// Transformation evaluates the animation at elapsed time and writes the
	// result into out, which the caller must have cleared. It returns false
	// when the animation has nothing to apply at that time; out then holds no
	// change, either because it was not written or because it was reset to
	// the identity.
	Transformation(elapsed time.Duration, out *Transform) bool

	// Duration is the length of one cycle, not counting the start offset.
	Duration() time.Duration
	// StartOffset is the delay before the first cycle begins.
	StartOffset() time.Duration
	// ComputeDurationHint estimates how long the animation runs in total,
	// including start offset and repeats. It returns Infinite for animations
	// that repeat forever.
	ComputeDurationHint() time.Duration

	// Initialize resolves sizes that are relative to the animated object or
	// its parent.
	Initialize(width, height, parentWidth, parentHeight int)
	// ScaleCurrentDuration multiplies the current duration and start offset.
	ScaleCurrentDuration(scale float64)

	SetDuration(d time.Duration)
	SetStartOffset(d time.Duration)
	SetFillBefore(fill bool)
	SetFillAfter(fill bool)
	SetRepeatMode(mode RepeatMode)
	SetRepeatCount(count int)
	SetInterpolator(fn Interpolator)

	// HasAlpha reports whether the animation changes alpha.
	HasAlpha() bool
	// WillChangeTransformationMatrix reports whether the animation changes
	// the matrix.
	WillChangeTransformationMatrix() bool
}

func scaleDuration(d time.Duration, scale float64) time.Duration {
	return time.Duration(float64(d) * scale)
}

var (
	_ Animation = (*Alpha)(nil)
	_ Animation = (*Translate)(nil)
	_ Animation = (*Scale)(nil)
	_ Animation = (*Rotate)(nil)
	_ Animation = (*Set)(nil)
)
