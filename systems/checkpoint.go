package systems

import (
	"github.com/automoto/gauntlet/components"
	cfg "github.com/automoto/gauntlet/config"
	"github.com/automoto/gauntlet/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TouchCheckpoint applies a contact between a tracked player and a
// checkpoint sequence index. Points are awarded when the player's stored
// checkpoint position differs from the touched checkpoint's position;
// re-touching the stored checkpoint is an idempotent no-op. The
// comparison is by position, not index, so touching any other
// checkpoint - including an earlier one - re-awards.
//
// Contacts from untracked ids are ignored: an untracked actor is not an
// error, merely something the course does not score.
func TouchCheckpoint(ecs *ecs.ECS, roster *Roster, playerID string, index int) (awarded bool) {
	playerEntry, ok := roster.Entry(ecs.World, playerID)
	if !ok {
		return false
	}

	courseEntry, ok := components.Course.First(ecs.World)
	if !ok {
		return false
	}
	entity, ok := components.Course.Get(courseEntry).CheckpointEntity(index)
	if !ok || !ecs.World.Valid(entity) {
		return false
	}
	checkpoint := components.Checkpoint.Get(ecs.World.Entry(entity))

	progress := components.Progress.Get(playerEntry)
	if progress.Checkpoint.X == checkpoint.SpawnX && progress.Checkpoint.Y == checkpoint.SpawnY {
		return false
	}

	progress.Checkpoint = components.Vector{X: checkpoint.SpawnX, Y: checkpoint.SpawnY}
	progress.Points += cfg.Course.CheckpointPoints
	return true
}

// CheckpointAt resolves which checkpoint volume, if any, contains the
// given point. Used by hosts that report raw contact positions instead
// of checkpoint indices.
func CheckpointAt(ecs *ecs.ECS, x, y float64) (*components.CheckpointData, bool) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return nil, false
	}
	objs := check.ObjectsByTags(tags.ResolvCheckpoint)
	if len(objs) == 0 {
		return nil, false
	}

	entry, ok := objs[0].Data.(*donburi.Entry)
	if !ok || entry == nil {
		return nil, false
	}
	return components.Checkpoint.Get(entry), true
}
