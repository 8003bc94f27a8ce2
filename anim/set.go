package anim

import "time"

// optional holds a value that was explicitly assigned.
type optional[T any] struct {
	value T
	ok    bool
}

func (o *optional[T]) set(v T) {
	o.value = v
	o.ok = true
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.ok
}

// cacheState tracks whether a Set's aggregate timing is current.
//
//	          mutation
//	clean ─────────────► dirty
//	  ▲                    │
//	  └────────────────────┘
//	     timing query recomputes
type cacheState int

const (
	dirty cacheState = iota
	clean
)

// Set plays a group of animations as one. Its transform at any time is the
// concatenation of the transforms of all children that are active at that
// time, in the order the children were added.
//
// Settings given to the set behave as follows:
//
//   - duration, repeat mode, fill before and fill after are pushed down to
//     every child, replacing the child's own value, the next time the set's
//     timing is queried. Children added later receive them too.
//   - start offset and the shared interpolator apply to the set itself.
//   - repeat count is ignored.
//
// The set caches its aggregate timing. Children mutated directly after they
// were added are not observed until Invalidate is called.
type Set struct {
	children          []Animation
	shareInterpolator bool
	ordering          Ordering

	duration   optional[time.Duration]
	fillBefore optional[bool]
	fillAfter  optional[bool]
	repeatMode optional[RepeatMode]

	startOffset  time.Duration
	interpolator Interpolator

	state         cacheState
	total         time.Duration
	hasAlpha      bool
	changesMatrix bool
	lastChildEnd  time.Duration

	childrenStarted bool
	size            [4]int
}

// NewSet returns an empty set. When shareInterpolator is true every child
// uses the set's interpolator instead of its own.
func NewSet(shareInterpolator bool) *Set {
	return &Set{
		shareInterpolator: shareInterpolator,
		interpolator:      DefaultInterpolator,
	}
}

// AddAnimation appends a child. Transforms are applied in the order children
// are added. A nil child is ignored.
//
// Under OrderSequential the child's start offset is moved past the end of
// the children added before it; its own offset becomes a gap.
func (s *Set) AddAnimation(a Animation) {
	if a == nil {
		return
	}
	if s.ordering == OrderSequential {
		a.SetStartOffset(s.lastChildEnd + a.StartOffset())
	}

	d := a.Duration()
	if override, ok := s.duration.get(); ok {
		d = override
	}
	if end := a.StartOffset() + d; end > s.lastChildEnd {
		s.lastChildEnd = end
	}
	s.children = append(s.children, a)
	s.childrenStarted = false
	s.state = dirty
}

// Children returns the children in insertion order. The slice must not be
// modified.
func (s *Set) Children() []Animation {
	return s.children
}

// Len returns the number of children.
func (s *Set) Len() int {
	return len(s.children)
}

// SetOrdering changes how children added from now on are positioned.
// Children already in the set keep their offsets.
func (s *Set) SetOrdering(o Ordering) {
	s.ordering = o
}

func (s *Set) Ordering() Ordering {
	return s.ordering
}

// SetDuration sets the duration of every child.
func (s *Set) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.duration.set(d)
	s.state = dirty
}

func (s *Set) SetFillBefore(fill bool) {
	s.fillBefore.set(fill)
	s.state = dirty
}

func (s *Set) SetFillAfter(fill bool) {
	s.fillAfter.set(fill)
	s.state = dirty
}

func (s *Set) SetRepeatMode(mode RepeatMode) {
	s.repeatMode.set(mode)
	s.state = dirty
}

// SetRepeatCount does nothing; a set repeats only through its children.
func (s *Set) SetRepeatCount(int) {}

// SetStartOffset delays the whole set. The offset is not pushed down.
func (s *Set) SetStartOffset(d time.Duration) {
	s.startOffset = d
	s.state = dirty
}

func (s *Set) StartOffset() time.Duration {
	return s.startOffset
}

// SetInterpolator sets the interpolator shared with the children. It has no
// effect on a set that does not share its interpolator.
func (s *Set) SetInterpolator(fn Interpolator) {
	if fn == nil {
		fn = DefaultInterpolator
	}
	s.interpolator = fn
	s.state = dirty
}

// FillBefore returns the value pushed to children, or the leaf default when
// it was never set.
func (s *Set) FillBefore() bool {
	if v, ok := s.fillBefore.get(); ok {
		return v
	}
	return true
}

func (s *Set) FillAfter() bool {
	v, _ := s.fillAfter.get()
	return v
}

func (s *Set) RepeatMode() RepeatMode {
	if v, ok := s.repeatMode.get(); ok {
		return v
	}
	return RepeatRestart
}

// Overridden reports whether p was explicitly set on the set.
func (s *Set) Overridden(p Property) bool {
	switch p {
	case PropertyDuration:
		return s.duration.ok
	case PropertyFillBefore:
		return s.fillBefore.ok
	case PropertyFillAfter:
		return s.fillAfter.ok
	case PropertyRepeatMode:
		return s.repeatMode.ok
	case PropertyShareInterpolator:
		return s.shareInterpolator
	case PropertyMorphMatrix:
		return s.WillChangeTransformationMatrix()
	default:
		return false
	}
}

// Invalidate forces the aggregate timing to be recomputed on the next query.
func (s *Set) Invalidate() {
	s.state = dirty
}

func (s *Set) ensure() {
	if s.state == clean {
		return
	}
	s.recompute()
}

// recompute pushes overridden properties to the children and rebuilds the
// aggregates from them. Nested sets are queried here, so changes made to a
// child set after it was added are picked up once the parent is invalidated. It depends only on the children and the override
// fields.
func (s *Set) recompute() {
	duration, durationSet := s.duration.get()
	fillBefore, fillBeforeSet := s.fillBefore.get()
	fillAfter, fillAfterSet := s.fillAfter.get()
	repeatMode, repeatModeSet := s.repeatMode.get()

	var total time.Duration
	hasAlpha, changesMatrix := false, false
	for _, a := range s.children {
		if durationSet {
			a.SetDuration(duration)
		}
		if fillBeforeSet {
			a.SetFillBefore(fillBefore)
		}
		if fillAfterSet {
			a.SetFillAfter(fillAfter)
		}
		if repeatModeSet {
			a.SetRepeatMode(repeatMode)
		}
		if s.shareInterpolator {
			a.SetInterpolator(s.interpolator)
		}

		if end := a.StartOffset() + a.Duration(); end > total {
			total = end
		}
		hasAlpha = hasAlpha || a.HasAlpha()
		changesMatrix = changesMatrix || a.WillChangeTransformationMatrix()
	}

	s.total = total
	s.hasAlpha = hasAlpha
	s.changesMatrix = changesMatrix
	s.state = clean
}

// Duration is the time at which the latest-finishing child ends, measured
// from the start of the set. An empty set has zero duration.
func (s *Set) Duration() time.Duration {
	s.ensure()
	return s.total
}

// ComputeDurationHint returns the largest duration hint of the children.
func (s *Set) ComputeDurationHint() time.Duration {
	s.ensure()
	var hint time.Duration
	for _, a := range s.children {
		if d := a.ComputeDurationHint(); d > hint {
			hint = d
		}
	}
	return hint
}

// HasAlpha reports whether any child changes alpha.
func (s *Set) HasAlpha() bool {
	s.ensure()
	return s.hasAlpha
}

// WillChangeTransformationMatrix reports whether any child changes the
// matrix.
func (s *Set) WillChangeTransformationMatrix() bool {
	s.ensure()
	return s.changesMatrix
}

// Transformation evaluates every child at the same time and composes the
// valid results into out, which is reset to the identity first. It returns
// false when no child is active.
func (s *Set) Transformation(elapsed time.Duration, out *Transform) bool {
	s.ensure()
	out.Clear()

	local := elapsed - s.startOffset
	valid := false
	var t Transform
	for _, a := range s.children {
		t.Clear()
		if !a.Transformation(local, &t) {
			continue
		}
		out.Compose(&t)
		valid = true
	}
	return valid
}

// ScaleCurrentDuration scales the set's own timing and forwards the scale to
// every child regardless of overrides.
func (s *Set) ScaleCurrentDuration(scale float64) {
	if d, ok := s.duration.get(); ok {
		s.duration.set(scaleDuration(d, scale))
	}
	s.startOffset = scaleDuration(s.startOffset, scale)
	s.total = scaleDuration(s.total, scale)
	s.lastChildEnd = scaleDuration(s.lastChildEnd, scale)
	for _, a := range s.children {
		a.ScaleCurrentDuration(scale)
	}
}

// Initialize brings the timing up to date and initializes the children. The
// children are initialized once per generation; a generation ends when a
// child is added or the sizes change.
func (s *Set) Initialize(width, height, parentWidth, parentHeight int) {
	s.ensure()
	size := [4]int{width, height, parentWidth, parentHeight}
	if s.childrenStarted && size == s.size {
		return
	}
	for _, a := range s.children {
		a.Initialize(width, height, parentWidth, parentHeight)
	}
	s.size = size
	s.childrenStarted = true
}
