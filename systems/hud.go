package systems

import (
	"fmt"
	"math"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi/ecs"
)

func flashDamage(ecs *ecs.ECS) {
	if entry, ok := components.HUD.First(ecs.World); ok {
		components.HUD.Get(entry).DamageFlash = cfg.Session.DamageFlashTime
	}
}

// UpdateHUD refreshes the text a client shows for the run.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)

	if hud.DamageFlash > 0 {
		hud.DamageFlash = math.Max(0, hud.DamageFlash-deltaTime(ecs))
	}

	if player, ok := tags.Player.First(ecs.World); ok {
		lives := components.Lives.Get(player)
		hud.LivesText = fmt.Sprintf("Lives: %d/%d", lives.Lives, lives.MaxLives)
		hud.AttemptsText = fmt.Sprintf("Attempts: %d/%d", min(lives.Attempt(), lives.MaxLives), lives.MaxLives)

		stamina := components.Stamina.Get(player)
		hud.StaminaText = fmt.Sprintf("Stamina: %.0f/%.0f", math.Round(stamina.Current), stamina.Max)
	}

	hud.GameOverText = ""
	if s := session(ecs); s != nil && (s.State == cfg.SessionGameOver || s.State == cfg.SessionFinished) {
		hud.GameOverText = cfg.Session.GameOverText
	}
}
