package netcomponents

import (
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetPlayerStateData struct {
	StateID      netconfig.StateID
	Lives        int
	MaxLives     int
	Stamina      float64
	MaxStamina   float64
	CanSprint    bool
	Crouching    bool
	LastSequence uint32 // Last input sequence processed by the server
	IsLocal      bool   // Client-side only, not synced
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
