package netcomponents

import (
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetGameStateData struct {
	Session  netconfig.SessionStateID
	Elapsed  float64 // Seconds survived this run
	Restarts int
	Enemies  int
	Engaged  int // Enemies hunting or attacking

	LivesText    string
	AttemptsText string
	StaminaText  string
	GameOverText string
	DamageFlash  float64
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()

// NetLightingData is the main light and ambient color.
type NetLightingData struct {
	Preset           string
	R, G, B          float64
	Intensity        float64
	AmbR, AmbG, AmbB float64
}

var NetLighting = donburi.NewComponentType[NetLightingData]()

// LerpNetLighting blends two lighting states. The preset name switches at the
// target.
func LerpNetLighting(from, to NetLightingData, t float64) *NetLightingData {
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return &NetLightingData{
		Preset:    to.Preset,
		R:         lerp(from.R, to.R),
		G:         lerp(from.G, to.G),
		B:         lerp(from.B, to.B),
		Intensity: lerp(from.Intensity, to.Intensity),
		AmbR:      lerp(from.AmbR, to.AmbR),
		AmbG:      lerp(from.AmbG, to.AmbG),
		AmbB:      lerp(from.AmbB, to.AmbB),
	}
}
