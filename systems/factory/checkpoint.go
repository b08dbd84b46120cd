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

// CreateCheckpoint creates a checkpoint entity with a circular contact
// volume in the collision space.
func CreateCheckpoint(ecs *ecs.ECS, spec course.CheckpointSpec) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	d := spec.Radius * 2
	obj := resolv.NewObject(spec.X-spec.Radius, spec.Y-spec.Radius, d, d, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewCircle(spec.Radius, spec.Radius, spec.Radius))
	obj.Data = checkpoint
	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Index:  spec.Index,
		SpawnX: spec.X,
		SpawnY: spec.Y,
		Radius: spec.Radius,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return checkpoint
}
