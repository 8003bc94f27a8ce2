package anim

import (
	"sort"

	"github.com/fogleman/ease"
)

// Interpolator maps linear progress in [0, 1] to eased progress.
type Interpolator func(t float64) float64

// Linear leaves progress unchanged.
var Linear Interpolator = ease.Linear

// DefaultInterpolator accelerates into and decelerates out of the motion. It
// is used by leaves that were never given an interpolator and by sets that
// share one.
var DefaultInterpolator Interpolator = ease.InOutSine

var interpolators = map[string]Interpolator{
	"linear":               ease.Linear,
	"accelerate":           ease.InQuad,
	"decelerate":           ease.OutQuad,
	"accelerateDecelerate": ease.InOutSine,
	"anticipate":           ease.InBack,
	"overshoot":            ease.OutBack,
	"bounce":               ease.OutBounce,
	"cubicIn":              ease.InCubic,
	"cubicOut":             ease.OutCubic,
	"cubicInOut":           ease.InOutCubic,
	"elastic":              ease.OutElastic,
}

// LookupInterpolator returns the interpolator registered under name.
func LookupInterpolator(name string) (Interpolator, bool) {
	fn, ok := interpolators[name]
	return fn, ok
}

// InterpolatorNames returns the registered names in sorted order.
func InterpolatorNames() []string {
	names := make([]string, 0, len(interpolators))
	for name := range interpolators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
