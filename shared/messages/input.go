package messages

// PlayerInput is sent from client to server each frame with the player's
// movement intent. The server applies the latest one at the start of a tick.
type PlayerInput struct {
	Sequence  uint32  // Incrementing ID, echoed back in NetPlayerState
	MoveX     float64 // -1 left, 1 right
	MoveZ     float64 // -1 back, 1 forward
	Sprint    bool
	Crouch    bool  // Held; the server toggles on the press
	Timestamp int64 // Client timestamp (Unix ms)
}
