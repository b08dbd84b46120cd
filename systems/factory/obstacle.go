package factory

import (
	"github.com/automoto/gauntlet/archetypes"
	"github.com/automoto/gauntlet/components"
	"github.com/automoto/gauntlet/course"
	"github.com/automoto/gauntlet/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns an obstacle entity from its spec and registers
// its body in the collision space. The spec must already be validated.
func CreateObstacle(ecs *ecs.ECS, spec course.ObstacleSpec) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(spec.X, spec.Y, spec.W, spec.H, tags.ResolvObstacle, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, spec.W, spec.H))
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	data := components.ObstacleData{
		Kind:   spec.Kind,
		Origin: components.Vector{X: spec.X, Y: spec.Y},
		Width:  spec.W,
		Height: spec.H,

		SpinRate:     spec.SpinRate,
		InitialAngle: spec.InitialAngle,

		MoveTarget: components.Vector{X: spec.TargetX, Y: spec.TargetY},
		MovePeriod: spec.MovePeriod,

		ScaleTo:     spec.ScaleTo,
		ScalePeriod: spec.ScalePeriod,

		DisappearTime: spec.DisappearTime,
	}
	components.Obstacle.SetValue(obstacle, data)
	components.CurrentPose.SetValue(obstacle, data.PoseAt(0))

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obstacle
}
