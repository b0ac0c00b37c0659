package road

import (
	"fmt"
	"math"
)

// Player is the car state advanced once per simulation tick.
type Player struct {
	Lateral  float64 // Offset from the road centre
	Speed    float64 // Forward speed, always within [0, MaxSpeed]
	Distance float64 // Total forward travel; the camera rides here
}

// Input is the polled control state for exactly one Step.
type Input struct {
	Left       bool
	Right      bool
	Accelerate bool
	Brake      bool
}

// steer returns -1, 0 or +1. Holding both directions cancels out.
func (in Input) steer() float64 {
	s := 0.0
	if in.Left {
		s--
	}
	if in.Right {
		s++
	}
	return s
}

// Params are the handling constants of the car. Accelerations are in world
// units per second squared; decelerations are negative.
type Params struct {
	MaxSpeed      float64 `yaml:"max_speed"`
	Accel         float64 `yaml:"accel"`
	Braking       float64 `yaml:"braking"`
	Decel         float64 `yaml:"decel"` // applied when neither pedal is held
	OffRoadDecel  float64 `yaml:"off_road_decel"`
	TurnRate      float64 `yaml:"turn_rate"`
	CurveFactor   float64 `yaml:"curve_factor"`
	RoadHalfWidth float64 `yaml:"-"`
}

// Validate reports parameters that make the update meaningless. Accel is a
// push and the three decelerations are drags, so their signs are fixed.
func (p Params) Validate() error {
	switch {
	case !(p.MaxSpeed >= 0) || math.IsInf(p.MaxSpeed, 0):
		return fmt.Errorf("%w: max speed %v", ErrInvalidConfig, p.MaxSpeed)
	case !(p.TurnRate >= 0):
		return fmt.Errorf("%w: turn rate %v", ErrInvalidConfig, p.TurnRate)
	case !(p.RoadHalfWidth > 0):
		return fmt.Errorf("%w: road half width %v", ErrInvalidConfig, p.RoadHalfWidth)
	case !(p.Accel >= 0):
		return fmt.Errorf("%w: accel %v must not be negative", ErrInvalidConfig, p.Accel)
	case !(p.Braking <= 0):
		return fmt.Errorf("%w: braking %v must not be positive", ErrInvalidConfig, p.Braking)
	case !(p.Decel <= 0):
		return fmt.Errorf("%w: decel %v must not be positive", ErrInvalidConfig, p.Decel)
	case !(p.OffRoadDecel <= 0):
		return fmt.Errorf("%w: off-road decel %v must not be positive", ErrInvalidConfig, p.OffRoadDecel)
	}
	return nil
}

// OffTrack reports whether lateral lies beyond the road edge.
func (p Params) OffTrack(lateral float64) bool {
	return math.Abs(lateral) > p.RoadHalfWidth
}

// Step advances p by dt seconds. The order is fixed:
//
//  1. the off-track test uses the lateral offset at the start of the tick
//  2. steering moves laterally in proportion to the start-of-tick speed
//  3. the selected pedal (brake beats throttle, neither means coasting) and,
//     when off track, the off-road drag change the speed, which is then clamped
//  4. the curve under the car drifts it sideways at the new speed
//  5. the odometer advances
func Step(p Player, track *Track, in Input, params Params, dt float64) Player {
	offTrack := params.OffTrack(p.Lateral)

	p.Lateral += in.steer() * params.TurnRate * p.Speed * dt

	accel := params.Decel
	switch {
	case in.Brake:
		accel = params.Braking
	case in.Accelerate:
		accel = params.Accel
	}
	p.Speed += accel * dt
	if offTrack {
		p.Speed += params.OffRoadDecel * dt
	}
	p.Speed = math.Max(0, math.Min(p.Speed, params.MaxSpeed))

	seg := track.SegmentAt(p.Distance)
	p.Lateral += seg.Curve * p.Speed * dt * params.CurveFactor

	p.Distance += p.Speed * dt
	return p
}
