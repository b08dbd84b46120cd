package components

import (
	"github.com/automoto/gauntlet/course"
	"github.com/automoto/gauntlet/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Pose is the renderable state of an obstacle at a point in time:
// position, orientation, scale and solidity/visibility.
type Pose struct {
	X, Y    float64
	Angle   float64 // radians, [0, 2π)
	Scale   float64
	Visible bool
	Solid   bool
}

// ObstacleData holds the static parameters of one obstacle. The pose at
// any moment is computed from these parameters and elapsed time alone,
// so the same elapsed time always yields the same pose.
type ObstacleData struct {
	Kind   course.ObstacleKind
	Origin Vector
	Width  float64
	Height float64

	// Spinning
	SpinRate     float64 // radians per second
	InitialAngle float64

	// Moving
	MoveTarget Vector
	MovePeriod float64 // seconds for one full there-and-back cycle

	// Scaling
	ScaleTo     float64
	ScalePeriod float64

	// Disappearing
	DisappearTime float64 // seconds per phase
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// CurrentPose is the last pose computed for an obstacle, refreshed each
// frame tick and consumed by the host binding.
var CurrentPose = donburi.NewComponentType[Pose]()

// PoseAt computes the obstacle's pose after elapsed seconds.
func (o *ObstacleData) PoseAt(elapsed float64) Pose {
	pose := Pose{
		X:       o.Origin.X,
		Y:       o.Origin.Y,
		Scale:   1,
		Visible: true,
		Solid:   true,
	}

	switch o.Kind {
	case course.Spinning:
		pose.Angle = gamemath.WrapAngle(o.InitialAngle + o.SpinRate*elapsed)

	case course.Moving:
		// Ping-pong between origin and target, linear ramp with
		// reversal at each half-period. The wave argument is in
		// half-periods so one full cycle takes MovePeriod seconds.
		t := gamemath.TriangleWave(elapsed / (o.MovePeriod / 2))
		pose.X = gamemath.Lerp(o.Origin.X, o.MoveTarget.X, t)
		pose.Y = gamemath.Lerp(o.Origin.Y, o.MoveTarget.Y, t)

	case course.Scaling:
		t := gamemath.TriangleWave(elapsed / (o.ScalePeriod / 2))
		pose.Scale = 1 + (o.ScaleTo-1)*gamemath.Smooth(t)

	case course.Disappearing:
		if gamemath.TogglePhase(elapsed, o.DisappearTime) == 1 {
			pose.Visible = false
			pose.Solid = false
		}
	}

	return pose
}
