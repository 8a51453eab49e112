package systems

import (
	"github.com/automoto/kamatayan/components"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi"
)

// ApplyPlayerInput replaces the player's movement intent for the coming tick.
// The crouch edge is tracked against what the player saw last tick.
func ApplyPlayerInput(w donburi.World, in components.PlayerInputData) {
	entry, ok := tags.Player.First(w)
	if !ok || entry.HasComponent(components.Bot) {
		return
	}
	cur := components.PlayerInput.Get(entry)
	in.PreviousCrouch = cur.PreviousCrouch
	*cur = in
}
