package components

import (
	"github.com/automoto/kamatayan/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type LightingData struct {
	Preset    string
	Color     config.Color
	Intensity float64
	Ambient   config.Color

	Transition *LightTransition
}

// LightTransition blends from one lighting state to a preset.
type LightTransition struct {
	Target      string
	FromColor   config.Color
	FromLevel   float64
	FromAmbient config.Color
	To          config.LightingPreset
	Tween       *gween.Tween
}

var Lighting = donburi.NewComponentType[LightingData]()
