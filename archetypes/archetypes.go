package archetypes

import (
	"github.com/automoto/gauntlet/components"
	cfg "github.com/automoto/gauntlet/config"
	"github.com/automoto/gauntlet/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.CurrentPose,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Progress,
	)
	Space = newArchetype(
		components.Space,
	)
	Course = newArchetype(
		components.Course,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
