package anim

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a plain integer as milliseconds, or a Go duration
// string such as "1.5s". Negative durations are rejected.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	var d time.Duration
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, err
		}
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", d)
	}
	return d, nil
}

// ParseRepeatMode accepts "restart", "reverse" or their numeric values 1 and 2.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "restart", "1":
		return RepeatRestart, nil
	case "reverse", "2":
		return RepeatReverse, nil
	}
	return 0, fmt.Errorf("repeat mode %q", s)
}

// ParseRepeatCount accepts a non-negative integer or "infinite".
func ParseRepeatCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "infinite") {
		return RepeatInfinite, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return RepeatInfinite, nil
	}
	return n, nil
}

// ParseOrdering accepts "together" or "sequentially".
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "together":
		return OrderTogether, nil
	case "sequentially", "sequential":
		return OrderSequential, nil
	}
	return 0, fmt.Errorf("ordering %q", s)
}

var errNoInterpolator = errors.New("no such interpolator")

// attrReader pulls typed values out of a markup attribute map. It keeps the
// first failure and tracks which attributes were consumed so leftovers can
// be reported.
type attrReader struct {
	kind  string
	attrs map[string]string
	seen  map[string]bool
	err   error
}

func newAttrReader(kind string, attrs map[string]string) *attrReader {
	return &attrReader{kind: kind, attrs: attrs, seen: make(map[string]bool, len(attrs))}
}

func (r *attrReader) lookup(name string) (string, bool) {
	r.seen[name] = true
	v, ok := r.attrs[name]
	return v, ok && r.err == nil
}

func (r *attrReader) fail(name, value string, cause error) {
	if r.err != nil {
		return
	}
	r.err = &AttrError{Kind: r.kind, Attr: name, Value: value, Err: fmt.Errorf("%w: %v", ErrBadValue, cause)}
}

func (r *attrReader) duration(name string) *time.Duration {
	v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	d, err := ParseDuration(v)
	if err != nil {
		r.fail(name, v, err)
		return nil
	}
	return &d
}

func (r *attrReader) boolean(name string) *bool {
	v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		r.fail(name, v, err)
		return nil
	}
	return &b
}

func (r *attrReader) repeatMode(name string) *RepeatMode {
	v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	m, err := ParseRepeatMode(v)
	if err != nil {
		r.fail(name, v, err)
		return nil
	}
	return &m
}

func (r *attrReader) repeatCount(name string) *int {
	v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	n, err := ParseRepeatCount(v)
	if err != nil {
		r.fail(name, v, err)
		return nil
	}
	return &n
}

func (r *attrReader) ordering(name string) Ordering {
	v, ok := r.lookup(name)
	if !ok {
		return OrderTogether
	}
	o, err := ParseOrdering(v)
	if err != nil {
		r.fail(name, v, err)
	}
	return o
}

func (r *attrReader) interpolator(name string) Interpolator {
	v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	fn, found := LookupInterpolator(strings.TrimSpace(v))
	if !found {
		r.fail(name, v, errNoInterpolator)
	}
	return fn
}

func (r *attrReader) float(name string, def float64) float64 {
	v, ok := r.lookup(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		r.fail(name, v, err)
		return def
	}
	return f
}

func (r *attrReader) dimension(name string, def Dimension) Dimension {
	v, ok := r.lookup(name)
	if !ok {
		return def
	}
	d, err := ParseDimension(v)
	if err != nil {
		r.fail(name, v, err)
		return def
	}
	return d
}

// done returns the first parse failure, or an error naming the first
// attribute (in sorted order) that nothing consumed.
func (r *attrReader) done() error {
	if r.err != nil {
		return r.err
	}
	names := make([]string, 0, len(r.attrs))
	for name := range r.attrs {
		if !r.seen[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return &AttrError{Kind: r.kind, Attr: names[0], Value: r.attrs[names[0]], Err: ErrUnknownAttr}
}
