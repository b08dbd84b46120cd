package factory

import (
	"github.com/automoto/gauntlet/archetypes"
	"github.com/automoto/gauntlet/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player's progress entity at the course start
// with zero points.
func CreatePlayer(ecs *ecs.ECS, id string, startX, startY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Progress.SetValue(player, components.ProgressData{
		PlayerID:   id,
		Checkpoint: components.Vector{X: startX, Y: startY},
		Points:     0,
	})

	return player
}
