package stream

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
)

// A Sprite is a Pattern that draws a gradient band through an animation.
//
// The band occupies [0, length) on the x axis of its own space. Each frame the
// animation's transform places it on the strip: every pixel centre is mapped
// back through the inverse transform and, if it lands inside the band, the
// gradient colour is blended over the background by the transform's alpha.
type Sprite struct {
	animation  anim.Animation
	background Pattern
	gradient   GradientTable
	length     float64
	chroma     float64
	luminance  float64
	pixels     int
}

// NewSprite creates a Sprite and initializes the animation with the band as
// the object and the strip as its parent.
func NewSprite(a anim.Animation, background Pattern, cfg StreamConfig) *Sprite {
	s := &Sprite{
		animation:  a,
		background: background,
		gradient:   RainbowGradient,
		length:     float64(cfg.SpriteLength),
		chroma:     cfg.Chroma,
		luminance:  cfg.Luminance,
		pixels:     cfg.Pixels,
	}
	a.Initialize(cfg.SpriteLength, 1, cfg.Pixels, 1)
	return s
}

// Animation returns the animation driving the sprite.
func (s *Sprite) Animation() anim.Animation {
	return s.animation
}

// CalculateFrame creates a new Frame instance.
func (s *Sprite) CalculateFrame(elapsed time.Duration) *Frame {
	f := s.background.CalculateFrame(elapsed)

	t := anim.IdentityTransform()
	if !s.animation.Transformation(elapsed, &t) || t.Alpha <= 0 {
		return f
	}
	inv, ok := t.Matrix.Invert()
	if !ok {
		return f
	}

	alpha := min(t.Alpha, 1)
	for i := 0; i < len(f.pixels); i++ {
		u, _ := inv.Apply(float64(i)+0.5, 0)
		if u < 0 || u >= s.length {
			continue
		}
		c := s.gradient.GetColor(u/s.length, s.chroma, s.luminance)
		f.pixels[i] = f.pixels[i].BlendRgb(c, alpha)
	}

	return f
}

// NewBackground builds the pattern drawn behind the sprite: a twinkle when
// particles are configured, otherwise a solid colour.
func NewBackground(cfg StreamConfig) (Pattern, error) {
	back, err := colorful.Hex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("stream.background: %w", err)
	}
	if cfg.TwinkleParticles <= 0 {
		return Solid{Colour: back, Pixels: cfg.Pixels}, nil
	}
	fore, err := colorful.Hex(cfg.TwinkleColour)
	if err != nil {
		return nil, fmt.Errorf("stream.twinkleColour: %w", err)
	}
	return NewTwinkle(cfg.TwinkleParticles, fore, back, cfg.Pixels, cfg.Seed), nil
}

// Loader turns a markup file into a Pattern.
type Loader func(path string) (Pattern, error)

// SpriteLoader returns a Loader that inflates the animation markup at path
// and draws it as a Sprite over the configured background.
func SpriteLoader(cfg StreamConfig) Loader {
	return func(path string) (Pattern, error) {
		a, err := anim.LoadFile(path)
		if err != nil {
			return nil, err
		}
		background, err := NewBackground(cfg)
		if err != nil {
			return nil, err
		}
		return NewSprite(a, background, cfg), nil
	}
}
