package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version    string
	PlayerName string
	Spectate   bool // Watch only, even when nobody controls the player
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// NetworkID is the player entity; Controller tells whether this client
// drives it.
type JoinAccepted struct {
	NetworkID  esync.NetworkId
	Controller bool
	ServerName string
	TickRate   int
	Level      string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
