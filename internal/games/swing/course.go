package swing

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/retro-arcade/internal/config"
)

// maxAmplitude caps the idle swing of a rope, in radians.
const maxAmplitude = 1.3

// Pit is a gap in the ground with a rope hanging over its middle.
// A rope is a rigid pendulum of the given length; Theta is measured from
// straight down, positive towards +x.
type Pit struct {
	X0, X1 float64 // open interval of the gap
	Anchor r2.Vec
	Length float64
	Theta  float64
	Omega  float64
}

// Width returns the width of the gap.
func (p *Pit) Width() float64 {
	return p.X1 - p.X0
}

// Tip returns the free end of the rope.
func (p *Pit) Tip() r2.Vec {
	return ropePoint(p.Anchor, p.Length, p.Theta)
}

// ropePoint returns the point at distance r along a rope at angle theta.
func ropePoint(anchor r2.Vec, r, theta float64) r2.Vec {
	return r2.Add(anchor, r2.Vec{X: r * math.Sin(theta), Y: r * math.Cos(theta)})
}

// Course is an endless strip of ground broken by pits, generated on demand
// from a seed. Extending it always consumes the RNG in the same order, so
// the layout depends only on the seed and config.
type Course struct {
	cfg     config.SwingCourse
	rng     *rand.Rand
	surface float64 // y of the ground surface
	end     float64 // x where the next stretch of ground begins
	Pits    []Pit
}

// NewCourse creates an empty course whose ground sits at surface.
func NewCourse(seed int64, cfg config.SwingCourse, surface float64) *Course {
	return &Course{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		surface: surface,
		// The first stretch of ground is a longer run-up.
		end: float64(cfg.GroundMaxWidth),
	}
}

// Extend generates pits until the course reaches at least x.
func (c *Course) Extend(x float64) {
	for c.end < x {
		ground := c.between(c.cfg.GroundMinWidth, c.cfg.GroundMaxWidth)
		width := c.between(c.cfg.PitMinWidth, c.cfg.PitMaxWidth)
		x0 := c.end + float64(ground)
		x1 := x0 + float64(width)

		length := float64(c.cfg.RopeLength)
		amp := maxAmplitude
		if reach := (float64(width)/2 + 0.5) / length; reach < 1 {
			amp = min(math.Asin(reach), maxAmplitude)
		}
		if c.rng.Intn(2) == 0 {
			amp = -amp
		}

		c.Pits = append(c.Pits, Pit{
			X0: x0,
			X1: x1,
			// At rest the tip dangles one cell into the pit.
			Anchor: r2.Vec{X: (x0 + x1) / 2, Y: c.surface + 1 - length},
			Length: length,
			Theta:  amp,
		})
		c.end = x1
	}
}

func (c *Course) between(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}

// PitAt returns the index of the pit whose gap contains x.
func (c *Course) PitAt(x float64) (int, bool) {
	i := sort.Search(len(c.Pits), func(i int) bool {
		return c.Pits[i].X1 > x
	})
	if i < len(c.Pits) && c.Pits[i].X0 < x {
		return i, true
	}
	return -1, false
}

// swingRope advances a free rope by dt. Free ropes are undamped.
func swingRope(p *Pit, gravity, dt float64) {
	p.Omega += -(gravity / p.Length) * math.Sin(p.Theta) * dt
	p.Theta += p.Omega * dt
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	l2 := r2.Dot(ab, ab)
	if l2 == 0 {
		return r2.Norm(r2.Sub(p, a))
	}
	t := max(0, min(1, r2.Dot(r2.Sub(p, a), ab)/l2))
	return r2.Norm(r2.Sub(p, r2.Add(a, r2.Scale(t, ab))))
}
