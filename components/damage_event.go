package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on the victim and consumed by the combat system.
type DamageEventData struct {
	Amount   float64
	Attacker donburi.Entity
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
