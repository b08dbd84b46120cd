package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all entities are created on.
const Default ecs.LayerID = 0

// CourseConfig contains course and scoring configuration values.
type CourseConfig struct {
	CheckpointPoints int     // Points awarded per distinct checkpoint
	CheckpointRadius float64 // Default checkpoint contact radius

	// Collision space dimensions
	SpaceWidth  int
	SpaceHeight int
	CellSize    int
}

// SessionConfig contains session timing configuration values.
type SessionConfig struct {
	DurationSeconds int     // Countdown length
	TickRate        int     // Obstacle animation ticks per second
	RespawnDelay    float64 // Seconds between character spawn and move-to-checkpoint
}

var (
	Course = CourseConfig{
		CheckpointPoints: 10,
		CheckpointRadius: 24,

		SpaceWidth:  2048,
		SpaceHeight: 512,
		CellSize:    16,
	}

	Session = SessionConfig{
		DurationSeconds: 120,
		TickRate:        60,
		RespawnDelay:    3,
	}
)
