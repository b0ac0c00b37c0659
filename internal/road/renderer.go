package road

import "fmt"

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Tone selects the fill shade of a quad. Tones alternate by look-ahead
// index so consecutive strips are distinguishable.
type Tone int

const (
	ToneLight Tone = iota
	ToneDark
)

// Quad is one road strip between two consecutive projected segments.
// Points run prev-left, prev-right, cur-right, cur-left.
type Quad struct {
	Points  [4]Point
	Tone    Tone
	Segment int // Track index of the far segment
}

// Top returns the smallest screen Y of the quad (the far edge).
func (q Quad) Top() int {
	return min(q.Points[2].Y, q.Points[3].Y)
}

// Bottom returns the largest screen Y of the quad (the near edge).
func (q Quad) Bottom() int {
	return max(q.Points[0].Y, q.Points[1].Y)
}

// Sink receives the quads of a frame, nearest first.
type Sink interface {
	DrawQuad(q Quad)
}

// QuadCollector is a Sink that keeps every quad in memory.
type QuadCollector struct {
	Quads []Quad
}

// DrawQuad appends q.
func (c *QuadCollector) DrawQuad(q Quad) {
	c.Quads = append(c.Quads, q)
}

// Reset empties the collector, keeping its capacity.
func (c *QuadCollector) Reset() {
	c.Quads = c.Quads[:0]
}

// RendererOptions configures the look-ahead renderer.
type RendererOptions struct {
	LookAhead     int     // Segments projected per frame
	RoadHalfWidth float64 // Half the road width in world units
	CurveOffset   float64 // Lateral drift added per unit of curvature per segment
}

// Renderer turns a camera position into a sequence of road quads.
type Renderer struct {
	track     *Track
	projector *Projector
	opts      RendererOptions
}

// NewRenderer creates a renderer over track using projector.
func NewRenderer(track *Track, projector *Projector, opts RendererOptions) (*Renderer, error) {
	if track == nil || track.Len() == 0 {
		return nil, fmt.Errorf("%w: empty track", ErrInvalidConfig)
	}
	if projector == nil {
		return nil, fmt.Errorf("%w: nil projector", ErrInvalidConfig)
	}
	if opts.LookAhead < 2 {
		return nil, fmt.Errorf("%w: look-ahead %d", ErrInvalidConfig, opts.LookAhead)
	}
	if opts.RoadHalfWidth <= 0 {
		return nil, fmt.Errorf("%w: road half width %v", ErrInvalidConfig, opts.RoadHalfWidth)
	}
	return &Renderer{track: track, projector: projector, opts: opts}, nil
}

// Track returns the track being rendered.
func (r *Renderer) Track() *Track {
	return r.track
}

// Projector returns the projector used for rendering.
func (r *Renderer) Projector() *Projector {
	return r.projector
}

// Render projects the look-ahead window in front of cam and sends one quad per
// pair of consecutive visible segments to sink. It returns the number of quads
// emitted. Segments at or behind the camera are skipped; the walk continues
// with the next index.
func (r *Renderer) Render(cam Camera, sink Sink) int {
	base := r.track.absIndex(cam.Z)
	segLen := r.track.SegmentLength()
	half := r.opts.RoadHalfWidth

	var (
		prev    ProjectedSegment
		prevX   float64
		prevOK  bool
		x, dx   float64
		emitted int
	)

	for i := 0; i < r.opts.LookAhead; i++ {
		abs := base + i
		seg := r.track.At(abs)
		// Project at the looped depth so the road keeps going after a lap.
		seg.Z = float64(abs) * segLen

		cur, ok := r.projector.Project(seg, x, cam)
		curX := x
		x += dx
		dx += seg.Curve * r.opts.CurveOffset

		if !ok {
			prevOK = false
			continue
		}

		if prevOK {
			relPrev := prevX - cam.X
			relCur := curX - cam.X
			q := Quad{
				Points: [4]Point{
					{X: r.projector.EdgeX(prev.Scale, relPrev-half), Y: prev.ScreenY},
					{X: r.projector.EdgeX(prev.Scale, relPrev+half), Y: prev.ScreenY},
					{X: r.projector.EdgeX(cur.Scale, relCur+half), Y: cur.ScreenY},
					{X: r.projector.EdgeX(cur.Scale, relCur-half), Y: cur.ScreenY},
				},
				Tone:    Tone(i % 2),
				Segment: seg.Index,
			}
			sink.DrawQuad(q)
			emitted++
		}

		prev, prevX, prevOK = cur, curX, true
	}

	return emitted
}
