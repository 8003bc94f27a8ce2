package anim

import "time"

// Base implements the timing shared by all leaf animations: start offset,
// duration, fill before and after, repeat count and mode, and the
// interpolator. Leaf kinds embed Base and turn the progress it computes into
// a transform.
type Base struct {
	duration     time.Duration
	startOffset  time.Duration
	fillBefore   bool
	fillAfter    bool
	repeatCount  int
	repeatMode   RepeatMode
	interpolator Interpolator

	width, height             int
	parentWidth, parentHeight int
}

func newBase() Base {
	return Base{
		fillBefore:   true,
		repeatMode:   RepeatRestart,
		interpolator: DefaultInterpolator,
	}
}

// Progress returns the interpolated progress of the animation at elapsed
// time, and false when the animation is outside its active window and its
// fill settings do not cover that time.
func (b *Base) Progress(elapsed time.Duration) (float64, bool) {
	local := elapsed - b.startOffset
	if local < 0 {
		if !b.fillBefore {
			return 0, false
		}
		return b.interpolator(0), true
	}

	if active := b.activeLength(); b.duration <= 0 || (active != Infinite && local >= active) {
		if !b.fillAfter {
			return 0, false
		}
		end := 1.0
		if b.repeatMode == RepeatReverse && b.repeatCount >= 0 && (b.repeatCount+1)%2 == 0 {
			end = 0
		}
		return b.interpolator(end), true
	}

	cycle := local / b.duration
	fraction := float64(local%b.duration) / float64(b.duration)
	if b.repeatMode == RepeatReverse && cycle%2 == 1 {
		fraction = 1 - fraction
	}
	return b.interpolator(fraction), true
}

func (b *Base) Duration() time.Duration { return b.duration }

// SetDuration sets the length of one cycle. Negative values are treated as
// zero.
func (b *Base) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	b.duration = d
}

func (b *Base) StartOffset() time.Duration     { return b.startOffset }
func (b *Base) SetStartOffset(d time.Duration) { b.startOffset = d }

func (b *Base) FillBefore() bool           { return b.fillBefore }
func (b *Base) SetFillBefore(fill bool)    { b.fillBefore = fill }
func (b *Base) FillAfter() bool            { return b.fillAfter }
func (b *Base) SetFillAfter(fill bool)     { b.fillAfter = fill }
func (b *Base) RepeatMode() RepeatMode     { return b.repeatMode }
func (b *Base) SetRepeatMode(m RepeatMode) { b.repeatMode = m }

// RepeatCount is the number of extra cycles; RepeatInfinite repeats forever.
func (b *Base) RepeatCount() int { return b.repeatCount }

// SetRepeatCount sets the number of extra cycles. Any negative count means
// RepeatInfinite.
func (b *Base) SetRepeatCount(count int) {
	if count < 0 {
		count = RepeatInfinite
	}
	b.repeatCount = count
}

// SetInterpolator sets the easing curve; nil restores DefaultInterpolator.
func (b *Base) SetInterpolator(fn Interpolator) {
	if fn == nil {
		fn = DefaultInterpolator
	}
	b.interpolator = fn
}

// Initialize records the object and parent sizes.
func (b *Base) Initialize(width, height, parentWidth, parentHeight int) {
	b.width, b.height = width, height
	b.parentWidth, b.parentHeight = parentWidth, parentHeight
}

// ScaleCurrentDuration multiplies both the duration and the start offset.
func (b *Base) ScaleCurrentDuration(scale float64) {
	b.duration = scaleDuration(b.duration, scale)
	b.startOffset = scaleDuration(b.startOffset, scale)
}

func (b *Base) ComputeDurationHint() time.Duration {
	if b.repeatCount < 0 {
		return Infinite
	}
	return mulCycles(b.startOffset+b.duration, b.repeatCount+1)
}

// activeLength is how long the cycles run after the start offset, or
// Infinite when they never end.
func (b *Base) activeLength() time.Duration {
	if b.repeatCount < 0 {
		return Infinite
	}
	return mulCycles(b.duration, b.repeatCount+1)
}

// mulCycles returns d*n, saturating at Infinite.
func mulCycles(d time.Duration, n int) time.Duration {
	if d <= 0 || n <= 0 {
		return 0
	}
	if d > Infinite/time.Duration(n) {
		return Infinite
	}
	return d * time.Duration(n)
}

func (b *Base) HasAlpha() bool                       { return false }
func (b *Base) WillChangeTransformationMatrix() bool { return true }

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
