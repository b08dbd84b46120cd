package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
)

// Resolv tags for the collision space
const (
	ResolvSolid      = "solid"
	ResolvObstacle   = "obstacle"
	ResolvCheckpoint = "checkpoint"
	ResolvPlayer     = "Player"
)
