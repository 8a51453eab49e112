package components

import "github.com/yohamta/donburi"

// PlayerInputData stores the movement intent for the current and previous
// tick. Crouch is a toggle, so only its rising edge matters.
type PlayerInputData struct {
	MoveX, MoveZ   float64 // Each in [-1, 1]
	Sprint         bool
	Crouch         bool
	PreviousCrouch bool
	Sequence       uint32 // Last applied network input sequence
}

// CrouchJustPressed reports a rising edge of the crouch button.
func (i *PlayerInputData) CrouchJustPressed() bool {
	return i.Crouch && !i.PreviousCrouch
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
