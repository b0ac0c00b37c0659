package road

import (
	"fmt"
	"math"
)

// Camera is the viewpoint for one frame. It is derived from the player every
// tick and never stored on its own.
type Camera struct {
	Z      float64 // Longitudinal position (total forward travel)
	X      float64 // Lateral position
	Height float64 // Height above the (flat) road surface
}

// CameraFor derives the camera for a player: it rides at the player's
// odometer and lateral offset, height units above the road.
func CameraFor(p Player, height float64) Camera {
	return Camera{Z: p.Distance, X: p.Lateral, Height: height}
}

// ProjectedSegment is the screen-space result of projecting one segment.
// Values are only meaningful for the frame that produced them.
type ProjectedSegment struct {
	Scale   float64
	ScreenX int // Road centre
	ScreenY int
}

// Projector maps world positions to screen positions with a perspective divide.
type Projector struct {
	depth   float64
	screenW int
	screenH int
}

// DepthForFOV returns the camera depth constant 1/tan(fov/2) for a field of
// view in degrees.
func DepthForFOV(fovDegrees float64) float64 {
	return 1 / math.Tan(fovDegrees/2*math.Pi/180)
}

// NewProjector creates a projector with the given depth constant and screen size.
func NewProjector(depth float64, screenW, screenH int) (*Projector, error) {
	if depth <= 0 || math.IsNaN(depth) || math.IsInf(depth, 0) {
		return nil, fmt.Errorf("%w: camera depth %v", ErrInvalidConfig, depth)
	}
	if screenW <= 0 || screenH <= 0 {
		return nil, fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, screenW, screenH)
	}
	return &Projector{depth: depth, screenW: screenW, screenH: screenH}, nil
}

// NewProjectorFOV creates a projector from a field of view in degrees.
func NewProjectorFOV(fovDegrees float64, screenW, screenH int) (*Projector, error) {
	if !(fovDegrees > 0 && fovDegrees < 180) {
		return nil, fmt.Errorf("%w: field of view %v", ErrInvalidConfig, fovDegrees)
	}
	return NewProjector(DepthForFOV(fovDegrees), screenW, screenH)
}

// Depth returns the camera depth constant.
func (p *Projector) Depth() float64 {
	return p.depth
}

// Size returns the screen dimensions the projector targets.
func (p *Projector) Size() (int, int) {
	return p.screenW, p.screenH
}

// Project projects seg, whose lateral centre is offsetX, as seen from cam.
// It returns false when the segment is at or behind the camera.
func (p *Projector) Project(seg Segment, offsetX float64, cam Camera) (ProjectedSegment, bool) {
	worldZ := seg.Z - cam.Z
	if worldZ <= 0 {
		return ProjectedSegment{}, false
	}

	const worldY = 0.0 // flat track
	scale := p.depth / worldZ

	return ProjectedSegment{
		Scale:   scale,
		ScreenX: p.EdgeX(scale, offsetX-cam.X),
		ScreenY: int(math.Round((1 - scale*(worldY-cam.Height)) * float64(p.screenH) / 2)),
	}, true
}

// EdgeX maps a camera-relative lateral position at the given scale to a
// screen column.
func (p *Projector) EdgeX(scale, worldX float64) int {
	half := float64(p.screenW) / 2
	return int(math.Round(half + scale*worldX*half))
}
