package factory

import (
	"github.com/automoto/gauntlet/archetypes"
	"github.com/automoto/gauntlet/components"
	cfg "github.com/automoto/gauntlet/config"
	"github.com/automoto/gauntlet/course"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildCourse validates the layout and instantiates the collision space,
// every obstacle and checkpoint, and the course singleton. The checkpoint
// list on the singleton is read-only from here on.
func BuildCourse(ecs *ecs.ECS, c *course.Course) (*donburi.Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	CreateSpace(ecs, cfg.Course.SpaceWidth, cfg.Course.SpaceHeight, cfg.Course.CellSize, cfg.Course.CellSize)

	data := components.CourseData{
		StartX:      c.StartX,
		StartY:      c.StartY,
		Checkpoints: make(map[int]donburi.Entity),
	}

	for _, sec := range c.Sections {
		ob := CreateObstacle(ecs, sec.Obstacle)
		data.Obstacles = append(data.Obstacles, ob.Entity())

		if sec.Checkpoint != nil {
			cp := CreateCheckpoint(ecs, *sec.Checkpoint)
			data.Checkpoints[sec.Checkpoint.Index] = cp.Entity()
		}
	}

	entry := archetypes.Course.Spawn(ecs)
	components.Course.Set(entry, &data)
	return entry, nil
}

// CreateClock spawns the session clock singleton.
func CreateClock(ecs *ecs.ECS, durationSeconds int) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		Duration:  durationSeconds,
		Remaining: durationSeconds,
	})
	return clock
}
