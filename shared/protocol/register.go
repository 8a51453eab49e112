package protocol

import (
	"github.com/automoto/kamatayan/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetTransform   uint = 10
	SyncIDNetVelocity    uint = 11
	SyncIDNetPlayerState uint = 12
	SyncIDNetLighting    uint = 13
	SyncIDNetEnemy       uint = 14
	SyncIDNetGameState   uint = 15
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetTransform uint8 = 10
	InterpIDNetVelocity  uint8 = 11
	InterpIDNetLighting  uint8 = 13
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Register with interpolation for smooth client-side movement
	if err := esync.RegisterComponent(
		SyncIDNetTransform,
		netcomponents.NetTransformData{},
		netcomponents.NetTransform,
		esync.WithInterpFn(InterpIDNetTransform, netcomponents.LerpNetTransform),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// PlayerState: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetPlayerState,
		netcomponents.NetPlayerStateData{},
		netcomponents.NetPlayerState,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetLighting,
		netcomponents.NetLightingData{},
		netcomponents.NetLighting,
		esync.WithInterpFn(InterpIDNetLighting, netcomponents.LerpNetLighting),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetEnemy,
		netcomponents.NetEnemyData{},
		netcomponents.NetEnemy,
	); err != nil {
		return err
	}

	// GameState: no interpolation (discrete state)
	if err := esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	); err != nil {
		return err
	}

	return nil
}
