// Package messages defines the client-to-server message types carried
// over the necs router.
package messages

// ContactReport tells the server a client's character touched a
// checkpoint volume.
type ContactReport struct {
	CheckpointIndex int
}

// SpawnReport tells the server a client's character (re)spawned and
// should be moved to its stored checkpoint after the respawn delay.
type SpawnReport struct{}
