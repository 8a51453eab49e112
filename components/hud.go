package components

import "github.com/yohamta/donburi"

type HUDData struct {
	LivesText    string
	AttemptsText string
	StaminaText  string
	GameOverText string
	DamageFlash  float64 // Seconds left on the damage flash
}

var HUD = donburi.NewComponentType[HUDData]()
