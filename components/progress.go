package components

import "github.com/yohamta/donburi"

// ProgressData tracks one player's run: the checkpoint position they
// respawn at and the points they have collected. Points only change when
// the player touches a checkpoint at a different position than the one
// stored, so re-touching the current checkpoint never re-awards.
type ProgressData struct {
	PlayerID   string
	Checkpoint Vector
	Points     int
}

var Progress = donburi.NewComponentType[ProgressData]()
