package components

import (
	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Spawn     gamemath.Vec3
	Crouching bool
	Sprinting bool
	Disabled  bool // Movement off once the run is lost
}

var Player = donburi.NewComponentType[PlayerData]()

// StaminaData tracks sprint time, all values in seconds.
type StaminaData struct {
	Current      float64
	Max          float64
	RechargeTime float64
	Recharge     float64 // Time spent recharging after depletion
	CanSprint    bool
	Sprinting    bool
}

// RechargeProgress returns how far the post-depletion recharge has run, 0..1.
func (s *StaminaData) RechargeProgress() float64 {
	if s.RechargeTime <= 0 {
		return 1
	}
	return s.Recharge / s.RechargeTime
}

var Stamina = donburi.NewComponentType[StaminaData]()
