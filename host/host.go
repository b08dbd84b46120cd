// Package host defines the narrow interfaces the engine calls into. The
// embodiment of obstacles and characters, timer display and scheduling
// primitives are all provided by the surrounding environment; the engine
// treats every call as fire-and-forget and stays consistent whether or
// not the host honored it.
package host

import (
	"time"

	"github.com/automoto/gauntlet/components"
)

// BodyID identifies a spawned obstacle body on the host side.
type BodyID int

// Host is implemented by the environment embedding the engine.
type Host interface {
	// SpawnObstacleBody creates the physical/visual embodiment of an
	// obstacle and returns a handle for later pose updates.
	SpawnObstacleBody(kind string, pose components.Pose, w, h float64) BodyID

	// UpdateObstacleBody pushes a new pose to a spawned body.
	UpdateObstacleBody(id BodyID, pose components.Pose)

	// MoveCharacter teleports a player's embodiment to a point.
	MoveCharacter(playerID string, x, y float64)

	// DisplayTimerText renders the formatted countdown string.
	DisplayTimerText(text string)
}

// Scheduler abstracts the host clock so sessions can be driven by fake
// time in tests.
type Scheduler interface {
	Now() time.Time
	// After runs fn once d has elapsed and returns a cancel func.
	After(d time.Duration, fn func()) (cancel func())
}

// SystemScheduler is the production Scheduler backed by the runtime timers.
type SystemScheduler struct{}

func (SystemScheduler) Now() time.Time { return time.Now() }

func (SystemScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// NopHost discards every call. Useful for headless sessions and tests.
type NopHost struct{}

func (NopHost) SpawnObstacleBody(string, components.Pose, float64, float64) BodyID { return 0 }
func (NopHost) UpdateObstacleBody(BodyID, components.Pose)                         {}
func (NopHost) MoveCharacter(string, float64, float64)                             {}
func (NopHost) DisplayTimerText(string)                                            {}
