package session

import (
	"log"

	"github.com/automoto/gauntlet/components"
	"github.com/automoto/gauntlet/systems"
)

// OnPlayerJoin creates the player's progress record at the course start.
func (s *Session) OnPlayerJoin(id string) {
	s.enqueue(func() {
		s.roster.Join(s.ecs, id)
		log.Printf("[session] player %s joined (%d tracked)", id, s.roster.Count())
	})
}

// OnPlayerLeave evicts the player's progress record.
func (s *Session) OnPlayerLeave(id string) {
	s.enqueue(func() {
		s.roster.Leave(s.ecs, id)
		log.Printf("[session] player %s left (%d tracked)", id, s.roster.Count())
	})
}

// OnContact resolves a host contact notification against the checkpoint
// registry. Contacts from entities that are not players, or players the
// session does not track, are ignored.
func (s *Session) OnContact(entity any, checkpointIndex int) {
	if s.resolve == nil {
		return
	}
	id, ok := s.resolve(entity)
	if !ok {
		return
	}
	s.enqueue(func() {
		if systems.TouchCheckpoint(s.ecs, s.roster, id, checkpointIndex) {
			entry, _ := s.roster.Entry(s.ecs.World, id)
			log.Printf("[session] player %s reached checkpoint %d (%d points)",
				id, checkpointIndex, components.Progress.Get(entry).Points)
		}
	})
}

// OnCharacterSpawned schedules the player's embodiment to be moved to
// their stored checkpoint after the respawn delay. The checkpoint is
// read when the timer fires, so a checkpoint reached during the delay
// wins.
func (s *Session) OnCharacterSpawned(id string) {
	s.sched.After(s.respawnDelay, func() {
		s.enqueue(func() {
			entry, ok := s.roster.Entry(s.ecs.World, id)
			if !ok {
				return
			}
			cp := components.Progress.Get(entry).Checkpoint
			s.host.MoveCharacter(id, cp.X, cp.Y)
		})
	})
}
