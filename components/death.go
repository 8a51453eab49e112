package components

import "github.com/yohamta/donburi"

// DeathData marks a player that ran out of lives. Timer counts down in
// seconds; when it reaches 0 the session returns to the menu.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
