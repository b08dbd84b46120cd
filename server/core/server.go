// Package core hosts a game session over websockets: connecting clients
// become players, checkpoint contacts arrive as router messages and the
// world state is mirrored to clients through necs entity sync.
package core

import (
	"log"
	"sync"

	"github.com/automoto/gauntlet/components"
	"github.com/automoto/gauntlet/session"
	"github.com/automoto/gauntlet/shared/messages"
	"github.com/automoto/gauntlet/shared/netcomponents"
	"github.com/automoto/gauntlet/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server binds a session to the network transport.
type Server struct {
	session   *session.Session
	transport *transports.WsServerTransport

	// Track which network client owns which player id and net entity
	clientIDs  map[*router.NetworkClient]string
	netPlayers map[string]donburi.Entity
	mu         sync.RWMutex

	clockEntity donburi.Entity
}

// NewServer wires router callbacks and the net mirror into the session.
func NewServer(s *session.Session) *Server {
	srv := &Server{
		session:    s,
		clientIDs:  make(map[*router.NetworkClient]string),
		netPlayers: make(map[string]donburi.Entity),
	}

	world := s.ECS().World
	srvsync.UseEsync(world)
	srv.setupNetEntities()
	srv.setupRouterCallbacks()

	return srv
}

// ResolvePlayer maps a contact entity (a network client) to its player
// id. Pass this as session Config.ResolvePlayer.
func (s *Server) ResolvePlayer(entity any) (string, bool) {
	client, ok := entity.(*router.NetworkClient)
	if !ok {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.clientIDs[client]
	return id, ok
}

// Start begins serving on the given port. Blocks like the underlying
// transport.
func (s *Server) Start(port uint) error {
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// PlayerCount returns the number of connected players.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientIDs)
}

// Sync mirrors session state into net components and pushes a sync
// frame to all clients. Called from the session loop.
func (s *Server) Sync() {
	s.mirror()
	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}

// setupNetEntities marks obstacle and clock entities for network sync.
// Obstacles already carry poses in the world; the net components are
// refreshed from them each sync tick.
func (s *Server) setupNetEntities() {
	world := s.session.ECS().World

	// Collect first: adding components while iterating mutates the
	// underlying archetype storage.
	var obstacles []donburi.Entity
	components.Obstacle.Each(world, func(e *donburi.Entry) {
		obstacles = append(obstacles, e.Entity())
	})
	for _, entity := range obstacles {
		donburi.Add(world.Entry(entity), netcomponents.NetPose, &netcomponents.NetPoseData{})
		if err := srvsync.NetworkSync(world, &entity,
			srvsync.WithInterp(netcomponents.NetPose),
		); err != nil {
			log.Printf("[server] obstacle sync setup: %v", err)
		}
	}

	clock := world.Create(netcomponents.NetClock)
	s.clockEntity = clock
	if err := srvsync.NetworkSync(world, &clock, netcomponents.NetClock); err != nil {
		log.Printf("[server] clock sync setup: %v", err)
	}
}

func (s *Server) mirror() {
	world := s.session.ECS().World

	components.Obstacle.Each(world, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		pose := components.CurrentPose.Get(e)
		netcomponents.NetPose.SetValue(e, netcomponents.NetPoseData{
			X:       pose.X,
			Y:       pose.Y,
			Angle:   pose.Angle,
			Scale:   pose.Scale,
			Visible: pose.Visible,
			Solid:   pose.Solid,
			Kind:    obstacle.Kind.String(),
		})
	})

	if world.Valid(s.clockEntity) {
		if clockEntry, ok := components.Clock.First(world); ok {
			clock := components.Clock.Get(clockEntry)
			netcomponents.NetClock.SetValue(world.Entry(s.clockEntity), netcomponents.NetClockData{
				Remaining: clock.Remaining,
				Expired:   clock.Expired,
				Text:      systems.TimerText(clock),
			})
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, entity := range s.netPlayers {
		if !world.Valid(entity) {
			continue
		}
		entry, ok := s.session.Roster().Entry(world, id)
		if !ok {
			continue
		}
		progress := components.Progress.Get(entry)
		netcomponents.NetProgress.SetValue(world.Entry(entity), netcomponents.NetProgressData{
			PlayerID:    id,
			Points:      progress.Points,
			CheckpointX: progress.Checkpoint.X,
			CheckpointY: progress.Checkpoint.Y,
		})
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, report messages.ContactReport) {
		s.session.OnContact(client, report.CheckpointIndex)
	})

	router.On(func(client *router.NetworkClient, _ messages.SpawnReport) {
		if id, ok := s.ResolvePlayer(client); ok {
			s.session.OnCharacterSpawned(id)
		}
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	id := client.Id()
	log.Printf("[server] client connected: %s", id)

	s.mu.Lock()
	s.clientIDs[client] = id
	s.mu.Unlock()

	s.session.OnPlayerJoin(id)

	// Create the player's net entity on the session loop so world
	// mutations stay serialized.
	s.session.Do(func() {
		world := s.session.ECS().World
		entity := world.Create(netcomponents.NetProgress)
		if err := srvsync.NetworkSync(world, &entity, netcomponents.NetProgress); err != nil {
			log.Printf("[server] player sync setup: %v", err)
			return
		}
		s.mu.Lock()
		s.netPlayers[id] = entity
		s.mu.Unlock()
	})
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	id, exists := s.clientIDs[client]
	if exists {
		delete(s.clientIDs, client)
	}
	entity, hasNet := s.netPlayers[id]
	if hasNet {
		delete(s.netPlayers, id)
	}
	s.mu.Unlock()

	if !exists {
		return
	}

	s.session.OnPlayerLeave(id)
	s.session.Do(func() {
		world := s.session.ECS().World
		if hasNet && world.Valid(entity) {
			world.Remove(entity)
		}
	})
}
