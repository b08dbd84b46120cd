package course

import "math"

// Default returns the built-in four-section track: a spinner bar, a
// ping-pong platform, a pulsing platform and a blinking platform, each
// followed by a checkpoint. Positions and rates are fixed configuration
// data; the layout never branches at runtime.
func Default() *Course {
	return &Course{
		Name:   "gauntlet",
		StartX: 32,
		StartY: 256,
		Sections: []Section{
			{
				Obstacle: ObstacleSpec{
					Kind: Spinning,
					X:    256, Y: 256,
					W: 160, H: 16,
					SpinRate: math.Pi / 2, // quarter turn per second
				},
				Checkpoint: &CheckpointSpec{Index: 1, X: 416, Y: 256, Radius: 24},
			},
			{
				Obstacle: ObstacleSpec{
					Kind: Moving,
					X:    512, Y: 256,
					W: 96, H: 16,
					TargetX: 512, TargetY: 128,
					MovePeriod: 4,
				},
				Checkpoint: &CheckpointSpec{Index: 2, X: 704, Y: 128, Radius: 24},
			},
			{
				Obstacle: ObstacleSpec{
					Kind: Scaling,
					X:    896, Y: 128,
					W: 64, H: 64,
					ScaleTo:     2.5,
					ScalePeriod: 6,
				},
				Checkpoint: &CheckpointSpec{Index: 3, X: 1088, Y: 128, Radius: 24},
			},
			{
				Obstacle: ObstacleSpec{
					Kind: Disappearing,
					X:    1280, Y: 128,
					W: 96, H: 16,
					DisappearTime: 2,
				},
				Checkpoint: &CheckpointSpec{Index: 4, X: 1472, Y: 128, Radius: 24},
			},
		},
	}
}
