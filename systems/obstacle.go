package systems

import (
	"github.com/automoto/gauntlet/components"
	"github.com/automoto/gauntlet/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles recomputes every obstacle's pose for the given elapsed
// time and mirrors solidity into the collision space. Poses are pure
// functions of elapsed seconds, so updates are order-insensitive across
// obstacles and repeatable for the same elapsed value.
func UpdateObstacles(ecs *ecs.ECS, elapsed float64) {
	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		pose := obstacle.PoseAt(elapsed)
		components.CurrentPose.SetValue(e, pose)

		obj := components.Object.Get(e)
		if obj == nil || obj.Object == nil {
			return
		}

		// Keep the resolv body in step with the pose so contact
		// queries see the current phase and position.
		obj.X = pose.X
		obj.Y = pose.Y
		solid := obj.HasTags(tags.ResolvSolid)
		if pose.Solid && !solid {
			obj.AddTags(tags.ResolvSolid)
		} else if !pose.Solid && solid {
			obj.RemoveTags(tags.ResolvSolid)
		}
		obj.Update()
	})
}
