package config

import "github.com/automoto/kamatayan/shared/netconfig"

// Type aliases so simulation code can keep using config.StateID.
type StateID = netconfig.StateID
type SessionStateID = netconfig.SessionStateID

// Re-export session state constants.
const (
	SessionPlaying    = netconfig.SessionPlaying
	SessionRestarting = netconfig.SessionRestarting
	SessionGameOver   = netconfig.SessionGameOver
	SessionFinished   = netconfig.SessionFinished
)

// Re-export character state constants.
const (
	StateNone = netconfig.StateNone

	Idle       = netconfig.Idle
	Walk       = netconfig.Walk
	Sprint     = netconfig.Sprint
	Crouch     = netconfig.Crouch
	CrouchWalk = netconfig.CrouchWalk
	Dead       = netconfig.Dead

	StateSearching = netconfig.StateSearching
	StateWaiting   = netconfig.StateWaiting
	StateHunting   = netconfig.StateHunting
	StateAttacking = netconfig.StateAttacking
)
