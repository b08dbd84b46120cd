package netcomponents

import "github.com/yohamta/donburi"

type NetProgressData struct {
	PlayerID    string
	Points      int
	CheckpointX float64
	CheckpointY float64
}

var NetProgress = donburi.NewComponentType[NetProgressData]()
