package anim

import (
	"errors"
	"fmt"
)

// Markup errors. Match them with errors.Is.
var (
	// ErrBadValue indicates an attribute value that could not be parsed.
	ErrBadValue = errors.New("anim: malformed attribute value")

	// ErrUnknownAttr indicates an attribute the animation kind does not accept.
	ErrUnknownAttr = errors.New("anim: unknown attribute")

	// ErrUnknownKind indicates a markup node whose kind is not registered.
	ErrUnknownKind = errors.New("anim: unknown animation kind")
)

// AttrError reports a markup node that could not be turned into an animation.
// Nothing is applied to the animation when an AttrError is returned.
type AttrError struct {
	// Kind is the markup kind of the node, e.g. "set" or "rotate".
	Kind string
	// Attr is the offending attribute, empty for node-level failures.
	Attr string
	// Value is the raw attribute value.
	Value string
	// Err is the underlying error; it wraps one of the sentinel errors.
	Err error
}

func (e *AttrError) Error() string {
	if e.Attr == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s=%q: %v", e.Kind, e.Attr, e.Value, e.Err)
}

func (e *AttrError) Unwrap() error {
	return e.Err
}
