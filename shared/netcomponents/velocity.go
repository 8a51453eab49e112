package netcomponents

import "github.com/yohamta/donburi"

// NetVelocityData is the player's ground velocity on the XZ plane.
type NetVelocityData struct {
	SpeedX, SpeedZ float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

// LerpNetVelocity interpolates between two velocities
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		SpeedX: from.SpeedX + (to.SpeedX-from.SpeedX)*t,
		SpeedZ: from.SpeedZ + (to.SpeedZ-from.SpeedZ)*t,
	}
}
