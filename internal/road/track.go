// Package road implements a pseudo-3D road projector: a looping track of
// curved segments, the perspective projection of those segments into screen
// space, the look-ahead renderer that turns them into quads, and the player
// update that drives speed and lateral drift.
//
// Everything here is pure arithmetic with no terminal or platform dependency,
// so the racer game and its tests share exactly the same code.
package road

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned for degenerate track, projector or player
// parameters that would otherwise divide by zero or index an empty track.
var ErrInvalidConfig = errors.New("road: invalid configuration")

// Segment is a fixed-length slice of track at longitudinal position Z.
type Segment struct {
	Index int     // Position in the track sequence
	Z     float64 // Longitudinal world position
	Curve float64 // Signed bend strength (negative = left)
}

// Bend assigns a constant curvature to the segment range [Start, End).
type Bend struct {
	Start int     `yaml:"start"`
	End   int     `yaml:"end"`
	Curve float64 `yaml:"curve"`
}

// CurvePlan is an ordered list of bends. Later bends win where ranges overlap.
type CurvePlan []Bend

// curveAt returns the curvature the plan assigns to segment i.
func (p CurvePlan) curveAt(i int) float64 {
	curve := 0.0
	for _, b := range p {
		if i >= b.Start && i < b.End {
			curve = b.Curve
		}
	}
	return curve
}

// DefaultPlan returns the classic two-bend layout (a right-hander followed by a
// longer left-hander) scaled to a track of count segments. Bends that would
// be empty on a very short track are left out.
func DefaultPlan(count int) CurvePlan {
	at := func(frac float64) int {
		return int(frac * float64(count))
	}
	var plan CurvePlan
	for _, b := range []Bend{
		{Start: at(0.15) + 1, End: at(0.25), Curve: 1.0},
		{Start: at(0.40) + 1, End: at(0.60), Curve: -1.0},
	} {
		if b.Start < b.End {
			plan = append(plan, b)
		}
	}
	return plan
}

// Track is an immutable, cyclically indexed sequence of segments.
type Track struct {
	segments      []Segment
	segmentLength float64
}

// Generate builds a track of count segments spaced segmentLength apart, with
// curvature assigned by plan. Identical inputs always produce identical tracks.
func Generate(count int, segmentLength float64, plan CurvePlan) (*Track, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: segment count %d", ErrInvalidConfig, count)
	}
	if segmentLength <= 0 || math.IsNaN(segmentLength) || math.IsInf(segmentLength, 0) {
		return nil, fmt.Errorf("%w: segment length %v", ErrInvalidConfig, segmentLength)
	}
	for _, b := range plan {
		if b.Start >= b.End {
			return nil, fmt.Errorf("%w: bend [%d, %d) is empty", ErrInvalidConfig, b.Start, b.End)
		}
	}

	segments := make([]Segment, count)
	for i := range segments {
		segments[i] = Segment{
			Index: i,
			Z:     float64(i) * segmentLength,
			Curve: plan.curveAt(i),
		}
	}

	return &Track{
		segments:      segments,
		segmentLength: segmentLength,
	}, nil
}

// Len returns the number of segments in one lap.
func (t *Track) Len() int {
	return len(t.segments)
}

// SegmentLength returns the longitudinal spacing between segments.
func (t *Track) SegmentLength() float64 {
	return t.segmentLength
}

// Length returns the longitudinal length of one lap.
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * t.segmentLength
}

// At returns segment i modulo the track length. Negative indices wrap.
func (t *Track) At(i int) Segment {
	n := len(t.segments)
	i %= n
	if i < 0 {
		i += n
	}
	return t.segments[i]
}

// absIndex returns floor(z / segmentLength) without wrapping.
func (t *Track) absIndex(z float64) int {
	return int(math.Floor(z / t.segmentLength))
}

// BaseIndex returns the index of the segment containing longitudinal position z.
func (t *Track) BaseIndex(z float64) int {
	return t.At(t.absIndex(z)).Index
}

// SegmentAt returns the segment under longitudinal position z.
func (t *Track) SegmentAt(z float64) Segment {
	return t.At(t.absIndex(z))
}

// Segments returns a copy of the segment sequence.
func (t *Track) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}
