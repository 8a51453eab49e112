// Package netconfig defines lightweight types shared between the simulation,
// the server and network clients. It has no dependencies so every binary can
// import it.
package netconfig

// StateID identifies a character state for logic and the wire.
type StateID int

// SessionStateID represents the current state of a hunt session.
type SessionStateID int

const (
	SessionPlaying    SessionStateID = iota // Player alive and moving
	SessionRestarting                       // Life lost, level resetting this tick
	SessionGameOver                         // Out of lives, counting down to the menu
	SessionFinished                         // Countdown done, back at the menu
)

func (s SessionStateID) String() string {
	switch s {
	case SessionPlaying:
		return "playing"
	case SessionRestarting:
		return "restarting"
	case SessionGameOver:
		return "gameover"
	case SessionFinished:
		return "finished"
	}
	return "unknown"
}

const (
	StateNone StateID = -1

	// Player movement states
	Idle StateID = iota
	Walk
	Sprint
	Crouch
	CrouchWalk
	Dead

	// Enemy AI states
	StateSearching
	StateWaiting
	StateHunting
	StateAttacking
)

// StateNames maps StateID to a short name used in logs and snapshots.
var StateNames = map[StateID]string{
	Idle:       "idle",
	Walk:       "walk",
	Sprint:     "sprint",
	Crouch:     "crouch",
	CrouchWalk: "crouchwalk",
	Dead:       "dead",

	StateSearching: "searching",
	StateWaiting:   "waiting",
	StateHunting:   "hunting",
	StateAttacking: "attacking",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// HuntEventKind identifies a broadcast gameplay event.
type HuntEventKind uint8

const (
	EventDetected HuntEventKind = iota // An enemy started hunting
	EventLost                          // An enemy lost the player
	EventLifeLost
	EventGameOver
	EventRestart
)

func (k HuntEventKind) String() string {
	switch k {
	case EventDetected:
		return "detected"
	case EventLost:
		return "lost"
	case EventLifeLost:
		return "lifelost"
	case EventGameOver:
		return "gameover"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}
