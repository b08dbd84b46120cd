package protocol

import (
	"github.com/automoto/gauntlet/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPose     uint = 10
	SyncIDNetProgress uint = 11
	SyncIDNetClock    uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPose uint8 = 10
)

// RegisterComponents registers all network components with necs for
// serialization. Must be called by both server and client before any
// network operations.
func RegisterComponents() error {
	// Poses interpolate for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetPose,
		netcomponents.NetPoseData{},
		netcomponents.NetPose,
		esync.WithInterpFn(InterpIDNetPose, netcomponents.LerpNetPose),
	); err != nil {
		return err
	}

	// Progress and clock are discrete state - no interpolation
	if err := esync.RegisterComponent(
		SyncIDNetProgress,
		netcomponents.NetProgressData{},
		netcomponents.NetProgress,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetClock,
		netcomponents.NetClockData{},
		netcomponents.NetClock,
	); err != nil {
		return err
	}

	return nil
}
