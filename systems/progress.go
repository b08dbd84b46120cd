package systems

import (
	"sync"

	"github.com/automoto/gauntlet/components"
	"github.com/automoto/gauntlet/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Roster owns the player-id to progress-entity mapping. Each progress
// record is written only through the roster, which serializes updates
// per player; reads from other goroutines take the read lock.
type Roster struct {
	mu      sync.RWMutex
	players map[string]donburi.Entity
}

func NewRoster() *Roster {
	return &Roster{
		players: make(map[string]donburi.Entity),
	}
}

// Join creates a progress record at the course start with zero points.
// Joining twice with the same id keeps the existing record.
func (r *Roster) Join(ecs *ecs.ECS, id string) *donburi.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entity, ok := r.players[id]; ok && ecs.World.Valid(entity) {
		return ecs.World.Entry(entity)
	}

	startX, startY := 0.0, 0.0
	if courseEntry, ok := components.Course.First(ecs.World); ok {
		c := components.Course.Get(courseEntry)
		startX, startY = c.StartX, c.StartY
	}

	entry := factory.CreatePlayer(ecs, id, startX, startY)
	r.players[id] = entry.Entity()
	return entry
}

// Leave evicts a player's progress record.
func (r *Roster) Leave(ecs *ecs.ECS, id string) {
	r.mu.Lock()
	entity, ok := r.players[id]
	if ok {
		delete(r.players, id)
	}
	r.mu.Unlock()

	if ok && ecs.World.Valid(entity) {
		ecs.World.Remove(entity)
	}
}

// Entry returns the progress entry for a player id, if tracked.
func (r *Roster) Entry(world donburi.World, id string) (*donburi.Entry, bool) {
	r.mu.RLock()
	entity, ok := r.players[id]
	r.mu.RUnlock()

	if !ok || !world.Valid(entity) {
		return nil, false
	}
	return world.Entry(entity), true
}

// Count returns the number of tracked players.
func (r *Roster) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// Leader returns the id with the most points ("" for none or tie),
// consulted when the session reports its end-of-run summary.
func (r *Roster) Leader(world donburi.World) (id string, points int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := -1
	tied := false
	for pid, entity := range r.players {
		if !world.Valid(entity) {
			continue
		}
		p := components.Progress.Get(world.Entry(entity))
		if p.Points > best {
			best = p.Points
			id = pid
			tied = false
		} else if p.Points == best {
			tied = true
		}
	}
	if tied || best < 0 {
		return "", 0
	}
	return id, best
}
