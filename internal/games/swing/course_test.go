package swing

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/retro-arcade/internal/config"
)

func TestCourseGeneration(t *testing.T) {
	cfg := config.DefaultSwingConfig().Course
	const surface = 21.0

	c := NewCourse(1, cfg, surface)
	c.Extend(500)

	if len(c.Pits) == 0 {
		t.Fatal("no pits generated")
	}
	if last := c.Pits[len(c.Pits)-1]; last.X1 < 500 {
		t.Errorf("course ends at %v, expected at least 500", last.X1)
	}
	if first := c.Pits[0].X0; first < float64(cfg.GroundMaxWidth+cfg.GroundMinWidth) {
		t.Errorf("first pit at %v leaves too short a run-up", first)
	}

	prevEnd := c.Pits[0].X0 - float64(cfg.GroundMinWidth)
	for i, p := range c.Pits {
		if w := p.Width(); w < float64(cfg.PitMinWidth) || w > float64(cfg.PitMaxWidth) {
			t.Errorf("pit %d width %v outside [%d, %d]", i, w, cfg.PitMinWidth, cfg.PitMaxWidth)
		}
		if i > 0 {
			ground := p.X0 - prevEnd
			if ground < float64(cfg.GroundMinWidth) || ground > float64(cfg.GroundMaxWidth) {
				t.Errorf("ground before pit %d is %v wide", i, ground)
			}
		}
		prevEnd = p.X1

		if p.Anchor.X != (p.X0+p.X1)/2 {
			t.Errorf("pit %d rope not centred: anchor %v", i, p.Anchor)
		}
		if want := surface + 1 - float64(cfg.RopeLength); p.Anchor.Y != want {
			t.Errorf("pit %d anchor height %v, expected %v", i, p.Anchor.Y, want)
		}
		if math.Abs(p.Theta) > maxAmplitude || p.Theta == 0 {
			t.Errorf("pit %d idle amplitude %v", i, p.Theta)
		}
	}
}

func TestCourseDeterministic(t *testing.T) {
	cfg := config.DefaultSwingConfig().Course

	a := NewCourse(99, cfg, 21)
	a.Extend(300)
	a.Extend(800)

	b := NewCourse(99, cfg, 21)
	b.Extend(800)

	if !reflect.DeepEqual(a.Pits, b.Pits) {
		t.Error("extending in steps should match extending at once")
	}

	c := NewCourse(100, cfg, 21)
	c.Extend(800)
	if reflect.DeepEqual(a.Pits, c.Pits) {
		t.Error("different seeds should give different courses")
	}
}

func TestPitAt(t *testing.T) {
	c := &Course{Pits: []Pit{
		{X0: 10, X1: 20},
		{X0: 30, X1: 38},
	}}

	tests := []struct {
		x      float64
		want   int
		wantOK bool
	}{
		{5, -1, false},
		{10, -1, false},
		{10.01, 0, true},
		{15, 0, true},
		{20, -1, false},
		{25, -1, false},
		{37.9, 1, true},
		{100, -1, false},
	}
	for _, tc := range tests {
		got, ok := c.PitAt(tc.x)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("PitAt(%v) = %d, %v; expected %d, %v", tc.x, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := r2.Vec{X: 1}, r2.Vec{X: 3}
	tests := []struct {
		name string
		p    r2.Vec
		want float64
	}{
		{"before start", r2.Vec{}, 1},
		{"beside middle", r2.Vec{X: 2, Y: 1}, 1},
		{"past end", r2.Vec{X: 4}, 1},
		{"on segment", r2.Vec{X: 2.5}, 0},
		{"diagonal from end", r2.Vec{X: 6, Y: 4}, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := segmentDistance(tc.p, a, b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("segmentDistance = %v, expected %v", got, tc.want)
			}
		})
	}

	if got := segmentDistance(r2.Vec{X: 3, Y: 4}, r2.Vec{}, r2.Vec{}); got != 5 {
		t.Errorf("degenerate segment distance = %v, expected 5", got)
	}
}

func TestFreeRopeKeepsAmplitude(t *testing.T) {
	p := Pit{Length: 8, Theta: 0.8}
	lo, hi := 0.0, 0.0
	for i := 0; i < 60*20; i++ {
		swingRope(&p, 60, 1.0/60)
		lo, hi = min(lo, p.Theta), max(hi, p.Theta)
	}
	if hi > 0.82 || lo < -0.82 {
		t.Errorf("free rope gained energy: swing range [%v, %v]", lo, hi)
	}
	if hi < 0.78 || lo > -0.78 {
		t.Errorf("free rope lost energy: swing range [%v, %v]", lo, hi)
	}
}
