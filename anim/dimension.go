package anim

import (
	"fmt"
	"strconv"
	"strings"
)

// DimensionType says what a Dimension value is measured against.
type DimensionType int

const (
	// Absolute values are used as they are.
	Absolute DimensionType = iota
	// RelativeToSelf values are fractions of the animated object's size.
	RelativeToSelf
	// RelativeToParent values are fractions of the parent's size.
	RelativeToParent
)

// Dimension is a position or pivot that may depend on object or parent size.
type Dimension struct {
	Type  DimensionType
	Value float64
}

// Abs returns an absolute dimension.
func Abs(v float64) Dimension { return Dimension{Type: Absolute, Value: v} }

// SelfFraction returns a dimension relative to the object's own size.
func SelfFraction(v float64) Dimension { return Dimension{Type: RelativeToSelf, Value: v} }

// ParentFraction returns a dimension relative to the parent's size.
func ParentFraction(v float64) Dimension { return Dimension{Type: RelativeToParent, Value: v} }

// Resolve converts the dimension to an absolute value.
func (d Dimension) Resolve(size, parentSize int) float64 {
	switch d.Type {
	case RelativeToSelf:
		return d.Value * float64(size)
	case RelativeToParent:
		return d.Value * float64(parentSize)
	default:
		return d.Value
	}
}

func (d Dimension) String() string {
	switch d.Type {
	case RelativeToSelf:
		return strconv.FormatFloat(d.Value*100, 'g', -1, 64) + "%"
	case RelativeToParent:
		return strconv.FormatFloat(d.Value*100, 'g', -1, 64) + "%p"
	default:
		return strconv.FormatFloat(d.Value, 'g', -1, 64)
	}
}

// ParseDimension parses "12.5" (absolute), "50%" (relative to self) or "50%p"
// (relative to parent).
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	typ := Absolute
	switch {
	case strings.HasSuffix(s, "%p"):
		typ, s = RelativeToParent, strings.TrimSuffix(s, "%p")
	case strings.HasSuffix(s, "%"):
		typ, s = RelativeToSelf, strings.TrimSuffix(s, "%")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("dimension %q: %w", s, err)
	}
	if typ != Absolute {
		v /= 100
	}
	return Dimension{Type: typ, Value: v}, nil
}
