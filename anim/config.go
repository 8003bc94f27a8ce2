package anim

import "time"

// SetConfig is the declarative configuration of a Set. Nil fields are left
// at the set's defaults and are not marked as overridden.
type SetConfig struct {
	// ShareInterpolator is fixed when the set is built.
	ShareInterpolator bool
	Ordering          Ordering

	Duration    *time.Duration
	FillBefore  *bool
	FillAfter   *bool
	RepeatMode  *RepeatMode
	StartOffset *time.Duration

	// Interpolator is shared with the children when ShareInterpolator is set.
	Interpolator Interpolator
}

// ParseSetConfig reads a set's markup attributes. Every attribute is parsed
// before the config is returned, so a failure never leaves a set partially
// configured.
func ParseSetConfig(attrs map[string]string) (SetConfig, error) {
	r := newAttrReader("set", attrs)
	var cfg SetConfig
	if share := r.boolean("shareInterpolator"); share != nil {
		cfg.ShareInterpolator = *share
	}
	cfg.Ordering = r.ordering("ordering")
	cfg.Duration = r.duration("duration")
	cfg.FillBefore = r.boolean("fillBefore")
	cfg.FillAfter = r.boolean("fillAfter")
	cfg.RepeatMode = r.repeatMode("repeatMode")
	cfg.StartOffset = r.duration("startOffset")
	cfg.Interpolator = r.interpolator("interpolator")
	// Accepted for compatibility with leaf markup; sets do not repeat.
	r.repeatCount("repeatCount")
	if err := r.done(); err != nil {
		return SetConfig{}, err
	}
	return cfg, nil
}

// NewSet builds a set from the config.
func (c SetConfig) NewSet() *Set {
	s := NewSet(c.ShareInterpolator)
	c.Apply(s)
	return s
}

// Apply runs the set's public setters for every field that is present.
// ShareInterpolator is ignored because it cannot change after construction.
func (c SetConfig) Apply(s *Set) {
	s.SetOrdering(c.Ordering)
	if c.Duration != nil {
		s.SetDuration(*c.Duration)
	}
	if c.FillBefore != nil {
		s.SetFillBefore(*c.FillBefore)
	}
	if c.FillAfter != nil {
		s.SetFillAfter(*c.FillAfter)
	}
	if c.RepeatMode != nil {
		s.SetRepeatMode(*c.RepeatMode)
	}
	if c.StartOffset != nil {
		s.SetStartOffset(*c.StartOffset)
	}
	if c.Interpolator != nil {
		s.SetInterpolator(c.Interpolator)
	}
}

// leafConfig holds the timing attributes shared by all leaf kinds.
type leafConfig struct {
	duration     *time.Duration
	startOffset  *time.Duration
	fillBefore   *bool
	fillAfter    *bool
	repeatMode   *RepeatMode
	repeatCount  *int
	interpolator Interpolator
}

func parseLeafConfig(r *attrReader) leafConfig {
	return leafConfig{
		duration:     r.duration("duration"),
		startOffset:  r.duration("startOffset"),
		fillBefore:   r.boolean("fillBefore"),
		fillAfter:    r.boolean("fillAfter"),
		repeatMode:   r.repeatMode("repeatMode"),
		repeatCount:  r.repeatCount("repeatCount"),
		interpolator: r.interpolator("interpolator"),
	}
}

func (c leafConfig) apply(a Animation) {
	if c.duration != nil {
		a.SetDuration(*c.duration)
	}
	if c.startOffset != nil {
		a.SetStartOffset(*c.startOffset)
	}
	if c.fillBefore != nil {
		a.SetFillBefore(*c.fillBefore)
	}
	if c.fillAfter != nil {
		a.SetFillAfter(*c.fillAfter)
	}
	if c.repeatMode != nil {
		a.SetRepeatMode(*c.repeatMode)
	}
	if c.repeatCount != nil {
		a.SetRepeatCount(*c.repeatCount)
	}
	if c.interpolator != nil {
		a.SetInterpolator(c.interpolator)
	}
}
