package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	Index  int // 1..N, strictly increasing along the course
	SpawnX float64
	SpawnY float64
	Radius float64
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
