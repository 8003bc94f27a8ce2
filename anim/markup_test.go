package anim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"250", 250 * ms, false},
		{"0", 0, false},
		{"1.5s", 1500 * ms, false},
		{" 40ms ", 40 * ms, false},
		{"-5", 0, true},
		{"-1s", 0, true},
		{"soon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want Dimension
	}{
		{"12.5", Abs(12.5)},
		{"50%", SelfFraction(0.5)},
		{"100%p", ParentFraction(1)},
		{"-25%p", ParentFraction(-0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDimension(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}

	_, err := ParseDimension("wide")
	assert.Error(t, err)
}

func TestParseEnums(t *testing.T) {
	mode, err := ParseRepeatMode("Reverse")
	require.NoError(t, err)
	assert.Equal(t, RepeatReverse, mode)
	mode, err = ParseRepeatMode("1")
	require.NoError(t, err)
	assert.Equal(t, RepeatRestart, mode)
	_, err = ParseRepeatMode("pingpong")
	assert.Error(t, err)

	count, err := ParseRepeatCount("infinite")
	require.NoError(t, err)
	assert.Equal(t, RepeatInfinite, count)

	order, err := ParseOrdering("sequentially")
	require.NoError(t, err)
	assert.Equal(t, OrderSequential, order)
	assert.Equal(t, "sequentially", order.String())
}

func TestParseSetConfig(t *testing.T) {
	cfg, err := ParseSetConfig(map[string]string{
		"shareInterpolator": "true",
		"duration":          "400",
		"fillBefore":        "false",
		"fillAfter":         "1",
		"repeatMode":        "reverse",
		"startOffset":       "50ms",
		"interpolator":      "linear",
	})
	require.NoError(t, err)

	s := cfg.NewSet()
	assert.True(t, s.Overridden(PropertyShareInterpolator))
	assert.True(t, s.Overridden(PropertyDuration))
	assert.True(t, s.Overridden(PropertyFillBefore))
	assert.True(t, s.Overridden(PropertyFillAfter))
	assert.True(t, s.Overridden(PropertyRepeatMode))
	assert.False(t, s.FillBefore())
	assert.True(t, s.FillAfter())
	assert.Equal(t, RepeatReverse, s.RepeatMode())
	assert.Equal(t, 50*ms, s.StartOffset())
}

func TestParseSetConfigRejectsWithoutPartialState(t *testing.T) {
	_, err := ParseSetConfig(map[string]string{
		"fillBefore": "true",
		"duration":   "soon",
	})
	require.Error(t, err)

	var attrErr *AttrError
	require.True(t, errors.As(err, &attrErr))
	assert.Equal(t, "set", attrErr.Kind)
	assert.Equal(t, "duration", attrErr.Attr)
	assert.Equal(t, "soon", attrErr.Value)
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = ParseSetConfig(map[string]string{"durration": "100"})
	assert.ErrorIs(t, err, ErrUnknownAttr)

	_, err = ParseSetConfig(map[string]string{"interpolator": "wobbly"})
	assert.ErrorIs(t, err, ErrBadValue)
}

const markup = `
kind: set
shareInterpolator: true
interpolator: linear
duration: 400
fillAfter: true
children:
  - kind: translate
    fromXDelta: 0
    toXDelta: 100%p
    duration: 50
  - kind: alpha
    fromAlpha: 0
    toAlpha: 1
  - kind: set
    ordering: sequentially
    children:
      - kind: rotate
        toDegrees: 90
        duration: 100
      - kind: scale
        toXScale: 2
        pivotX: 50%
        duration: 100
`

func TestLoad(t *testing.T) {
	a, err := Load([]byte(markup))
	require.NoError(t, err)

	s, ok := a.(*Set)
	require.True(t, ok)
	require.Equal(t, 3, s.Len())
	assert.True(t, s.HasAlpha())

	// The nested set's second child was chained at 100ms before the
	// override stretched both of its children to 400ms.
	assert.Equal(t, 500*ms, s.Duration())
	for _, c := range s.Children()[:2] {
		assert.Equal(t, 400*ms, c.Duration())
	}
	nested := s.Children()[2].(*Set)
	assert.Equal(t, OrderSequential, nested.Ordering())
	assert.Equal(t, 100*ms, nested.Children()[1].StartOffset())
	assert.Equal(t, 400*ms, nested.Children()[1].Duration())
	assert.Equal(t, 500*ms, nested.Duration())

	s.Initialize(10, 1, 200, 1)
	var out Transform
	require.True(t, s.Transformation(200*ms, &out))
	assert.InDelta(t, 0.5, out.Alpha, 1e-9)
}

func TestLoadMatchesCode(t *testing.T) {
	fromMarkup, err := Load([]byte(`
kind: set
duration: 200
fillBefore: false
startOffset: 20
children:
  - kind: alpha
    fromAlpha: 0
    toAlpha: 1
    interpolator: linear
`))
	require.NoError(t, err)

	fromCode := NewSet(false)
	child := NewAlpha(0, 1)
	child.SetInterpolator(Linear)
	fromCode.AddAnimation(child)
	fromCode.SetDuration(200 * ms)
	fromCode.SetFillBefore(false)
	fromCode.SetStartOffset(20 * ms)

	for _, elapsed := range []time.Duration{0, 20 * ms, 70 * ms, 219 * ms, 220 * ms} {
		var want, got Transform
		wantOK := fromCode.Transformation(elapsed, &want)
		gotOK := fromMarkup.Transformation(elapsed, &got)
		assert.Equal(t, wantOK, gotOK, "valid at %v", elapsed)
		assert.Equal(t, want, got, "transform at %v", elapsed)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "kind: spin\n", ErrUnknownKind},
		{"missing kind", "duration: 100\n", ErrUnknownKind},
		{"bad leaf value", "kind: alpha\nfromAlpha: half\n", ErrBadValue},
		{"unknown leaf attribute", "kind: rotate\ntoDegree: 90\n", ErrUnknownAttr},
		{"leaf with children", "kind: alpha\nchildren:\n  - kind: alpha\n", ErrBadValue},
		{"bad nested child", "kind: set\nchildren:\n  - kind: scale\n    pivotX: left\n", ErrBadValue},
		{"unknown set attribute", "kind: set\npivotX: 10\n", ErrUnknownAttr},
		{"bad repeat count", "kind: alpha\nrepeatCount: often\n", ErrBadValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Load([]byte("kind: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	require.NoError(t, os.WriteFile(path, []byte(markup), 0o644))

	a, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500*ms, a.Duration())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInterpolatorNames(t *testing.T) {
	names := InterpolatorNames()
	assert.Contains(t, names, "linear")
	assert.Contains(t, names, "accelerateDecelerate")
	assert.IsIncreasing(t, names)

	fn, ok := LookupInterpolator("bounce")
	require.True(t, ok)
	assert.InDelta(t, 1, fn(1), 1e-9)
}
