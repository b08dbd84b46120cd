// Package session runs one obstacle-course game: it builds the course,
// starts the countdown, animates obstacles every frame and resolves
// player events until the clock expires or the session is stopped.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/gauntlet/components"
	cfg "github.com/automoto/gauntlet/config"
	"github.com/automoto/gauntlet/course"
	"github.com/automoto/gauntlet/host"
	"github.com/automoto/gauntlet/systems"
	"github.com/automoto/gauntlet/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Config assembles a session's collaborators. Zero-value fields fall
// back to package config defaults, a NopHost and the system clock.
type Config struct {
	Course          *course.Course
	DurationSeconds int
	TickRate        int
	RespawnDelay    time.Duration
	Host            host.Host
	Scheduler       host.Scheduler

	// ResolvePlayer maps a host contact entity to a player id.
	// Entities it cannot resolve are not players and their contacts
	// are ignored.
	ResolvePlayer func(entity any) (string, bool)
}

// Session is the game session controller. A session runs once; a new
// run needs a new Session.
type Session struct {
	ecs    *ecs.ECS
	roster *systems.Roster

	host         host.Host
	sched        host.Scheduler
	resolve      func(any) (string, bool)
	respawnDelay time.Duration
	tickRate     int

	bodies map[donburi.Entity]host.BodyID

	start    time.Time
	commands chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	expired  chan struct{}
}

// New builds the course into a fresh world and spawns obstacle bodies on
// the host. A course that fails validation aborts the build.
func New(c Config) (*Session, error) {
	if c.Course == nil {
		c.Course = course.Default()
	}
	if c.DurationSeconds <= 0 {
		c.DurationSeconds = cfg.Session.DurationSeconds
	}
	if c.TickRate <= 0 {
		c.TickRate = cfg.Session.TickRate
	}
	if c.RespawnDelay <= 0 {
		c.RespawnDelay = time.Duration(cfg.Session.RespawnDelay * float64(time.Second))
	}
	if c.Host == nil {
		c.Host = host.NopHost{}
	}
	if c.Scheduler == nil {
		c.Scheduler = host.SystemScheduler{}
	}

	e := ecs.NewECS(donburi.NewWorld())

	if _, err := factory.BuildCourse(e, c.Course); err != nil {
		return nil, err
	}
	factory.CreateClock(e, c.DurationSeconds)

	s := &Session{
		ecs:          e,
		roster:       systems.NewRoster(),
		host:         c.Host,
		sched:        c.Scheduler,
		resolve:      c.ResolvePlayer,
		respawnDelay: c.RespawnDelay,
		tickRate:     c.TickRate,
		bodies:       make(map[donburi.Entity]host.BodyID),
		commands:     make(chan func(), 256),
		stopCh:       make(chan struct{}),
		expired:      make(chan struct{}),
	}

	s.spawnBodies()
	return s, nil
}

// ECS exposes the session's world to host bindings.
func (s *Session) ECS() *ecs.ECS { return s.ecs }

// Roster exposes the player progress tracker.
func (s *Session) Roster() *systems.Roster { return s.roster }

func (s *Session) spawnBodies() {
	components.Obstacle.Each(s.ecs.World, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		pose := components.CurrentPose.Get(e)
		id := s.host.SpawnObstacleBody(obstacle.Kind.String(), *pose, obstacle.Width, obstacle.Height)
		s.bodies[e.Entity()] = id
	})
}

// Run blocks until the countdown expires or Stop is called. Obstacle
// animation stops as soon as either happens; an in-flight respawn delay
// is not preempted.
func (s *Session) Run() {
	s.start = s.sched.Now()

	if clockEntry, ok := components.Clock.First(s.ecs.World); ok {
		s.host.DisplayTimerText(systems.TimerText(components.Clock.Get(clockEntry)))
	}

	frame := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer frame.Stop()
	countdown := time.NewTicker(time.Second)
	defer countdown.Stop()

	log.Printf("[session] started: %d obstacles, tick rate %d/s", len(s.bodies), s.tickRate)

	for {
		select {
		case <-s.stopCh:
			log.Println("[session] stopped")
			return

		case <-frame.C:
			s.drainCommands()
			s.step(s.sched.Now().Sub(s.start).Seconds())

		case <-countdown.C:
			if s.tickCountdown() {
				s.report()
				return
			}
		}
	}
}

// Stop ends the session early. Safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Expired is closed exactly once, when the countdown reaches zero.
func (s *Session) Expired() <-chan struct{} { return s.expired }

// Do runs fn on the session loop, serialized with event handling and
// obstacle animation.
func (s *Session) Do(fn func()) { s.enqueue(fn) }

// step advances obstacle animation to the given elapsed seconds and
// pushes the resulting poses to the host.
func (s *Session) step(elapsed float64) {
	systems.UpdateObstacles(s.ecs, elapsed)

	components.Obstacle.Each(s.ecs.World, func(e *donburi.Entry) {
		id, ok := s.bodies[e.Entity()]
		if !ok {
			return
		}
		s.host.UpdateObstacleBody(id, *components.CurrentPose.Get(e))
	})
}

// tickCountdown advances the clock one second and reports true when the
// terminal transition fires. Expiry also closes the stop channel so that
// later events are dropped instead of piling into the queue.
func (s *Session) tickCountdown() bool {
	_, justExpired := systems.TickClock(s.ecs)

	clockEntry, ok := components.Clock.First(s.ecs.World)
	if !ok {
		return false
	}
	s.host.DisplayTimerText(systems.TimerText(components.Clock.Get(clockEntry)))

	if justExpired {
		close(s.expired)
		s.Stop()
	}
	return justExpired
}

func (s *Session) drainCommands() {
	for {
		select {
		case fn := <-s.commands:
			fn()
		default:
			return
		}
	}
}

// enqueue hands an event to the loop goroutine. Events from one source
// stay in order; once the session has stopped or expired the event is
// dropped.
func (s *Session) enqueue(fn func()) {
	select {
	case <-s.stopCh:
		return
	default:
	}
	select {
	case s.commands <- fn:
	case <-s.stopCh:
	}
}

func (s *Session) report() {
	id, points := s.roster.Leader(s.ecs.World)
	if id == "" {
		log.Printf("[session] time's up, %d players, no single leader", s.roster.Count())
		return
	}
	log.Printf("[session] time's up, leader %s with %d points", id, points)
}
