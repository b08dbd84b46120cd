package components

import "github.com/yohamta/donburi"

// CourseData is the singleton built by the course factory. Checkpoints
// maps sequence index to the checkpoint entity; both containers are
// read-only once the course is built.
type CourseData struct {
	StartX, StartY float64
	Checkpoints    map[int]donburi.Entity
	Obstacles      []donburi.Entity
}

var Course = donburi.NewComponentType[CourseData]()

// CheckpointEntity returns the entity for a checkpoint sequence index.
func (c *CourseData) CheckpointEntity(index int) (donburi.Entity, bool) {
	e, ok := c.Checkpoints[index]
	return e, ok
}
