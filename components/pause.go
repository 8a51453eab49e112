package components

import "github.com/yohamta/donburi"

// PauseData freezes gameplay systems while set. The server pauses the hunt
// while nobody controls the player.
type PauseData struct {
	IsPaused bool
	Reason   string
}

var Pause = donburi.NewComponentType[PauseData]()
