package anim

import "fmt"

// RepeatMode controls what happens when a repeating animation reaches the end
// of a cycle.
type RepeatMode int

const (
	// RepeatRestart plays every cycle from the beginning.
	RepeatRestart RepeatMode = iota + 1
	// RepeatReverse plays every other cycle backwards.
	RepeatReverse
)

// String returns the markup name of the mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatRestart:
		return "restart"
	case RepeatReverse:
		return "reverse"
	default:
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
}

// RepeatInfinite as a repeat count repeats forever.
const RepeatInfinite = -1

// Ordering decides how a Set positions children as they are added.
type Ordering int

const (
	// OrderTogether leaves every child's start offset as it is.
	OrderTogether Ordering = iota
	// OrderSequential starts each new child where the previously added
	// children end.
	OrderSequential
)

func (o Ordering) String() string {
	switch o {
	case OrderTogether:
		return "together"
	case OrderSequential:
		return "sequentially"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Property names a setting that a Set can push down to its children.
type Property int

const (
	PropertyFillAfter Property = iota
	PropertyFillBefore
	PropertyRepeatMode
	PropertyShareInterpolator
	PropertyDuration
	// PropertyMorphMatrix is not settable; it reports whether any child
	// changes the transformation matrix.
	PropertyMorphMatrix
)

func (p Property) String() string {
	switch p {
	case PropertyFillAfter:
		return "fillAfter"
	case PropertyFillBefore:
		return "fillBefore"
	case PropertyRepeatMode:
		return "repeatMode"
	case PropertyShareInterpolator:
		return "shareInterpolator"
	case PropertyDuration:
		return "duration"
	case PropertyMorphMatrix:
		return "morphMatrix"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}
