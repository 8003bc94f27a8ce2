package stream

import (
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

type twinkleParticle struct {
	pixel  int
	period time.Duration
	phase  time.Duration
}

// A Twinkle is a Pattern that twinkles random particles over a background
// colour. Particle positions and rhythms come from the seed, so the same
// elapsed time always renders the same frame.
type Twinkle struct {
	foreColour colorful.Color
	backColour colorful.Color
	pixels     int
	particles  []twinkleParticle
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(numParticles int, foreColour, backColour colorful.Color, pixels int, seed int64) *Twinkle {
	t := new(Twinkle)
	t.foreColour = foreColour
	t.backColour = backColour
	t.pixels = pixels

	rng := rand.New(rand.NewSource(seed))
	t.particles = make([]twinkleParticle, numParticles)
	for i := range t.particles {
		period := time.Duration(rng.Intn(1800)+600) * time.Millisecond
		t.particles[i] = twinkleParticle{
			pixel:  rng.Intn(pixels),
			period: period,
			phase:  time.Duration(rng.Int63n(int64(period))),
		}
	}

	return t
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(elapsed time.Duration) *Frame {
	f := NewFrame(t.pixels)
	f.Fill(t.backColour)

	for _, p := range t.particles {
		pos := float64((elapsed+p.phase)%p.period) / float64(p.period)
		// Rise for the first half of the period, fall for the second.
		gain := ease.InOutQuad(1 - math.Abs(2*pos-1))
		f.pixels[p.pixel] = t.backColour.BlendHcl(t.foreColour, gain).Clamped()
	}

	return f
}
