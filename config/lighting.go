package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned when a lighting preset name is not registered.
var ErrUnknownPreset = errors.New("unknown lighting preset")

// Lighting preset names
const (
	PresetNormal = "normal"
	PresetEerie  = "eerie"
	PresetScary  = "scary"
	PresetCreepy = "creepy"
)

// Color is a linear RGB triple in [0,1]
type Color struct {
	R, G, B float64
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Lerp blends c towards to, t in [0,1].
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
	}
}

// LightingPreset is one atmosphere the main light can be set to
type LightingPreset struct {
	Color         Color
	Intensity     float64
	AmbientFactor float64 // Ambient light is Color scaled by this
}

// Ambient returns the ambient color the preset produces.
func (p LightingPreset) Ambient() Color {
	return p.Color.Scale(p.AmbientFactor)
}

// LightingConfig contains lighting controller settings
type LightingConfig struct {
	InitialPreset      string  `yaml:"initialPreset"`
	CalmPreset         string  `yaml:"calmPreset"`   // Used while no enemy is engaged
	ThreatPreset       string  `yaml:"threatPreset"` // Used while any enemy hunts or attacks
	TransitionDuration float64 `yaml:"transitionDuration"`
	ThreatFeedback     bool    `yaml:"threatFeedback"`

	Presets map[string]LightingPreset `yaml:"-"`
}

// Preset looks up a preset by name.
func (c LightingConfig) Preset(name string) (LightingPreset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return LightingPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames returns the registered preset names in sorted order.
func (c LightingConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var Lighting LightingConfig

func init() {
	Lighting = LightingConfig{
		InitialPreset:      PresetNormal,
		CalmPreset:         PresetEerie,
		ThreatPreset:       PresetScary,
		TransitionDuration: 0.5,
		ThreatFeedback:     true,
		Presets: map[string]LightingPreset{
			PresetNormal: {Color: Color{R: 1, G: 1, B: 1}, Intensity: 1.0, AmbientFactor: 1.0},
			PresetEerie:  {Color: Color{R: 0.8, G: 0.6, B: 0.4}, Intensity: 0.6, AmbientFactor: 0.5},
			PresetScary:  {Color: Color{R: 0.6, G: 0.2, B: 0.2}, Intensity: 0.3, AmbientFactor: 0.3},
			PresetCreepy: {Color: Color{R: 0.4, G: 0.2, B: 0.6}, Intensity: 0.1, AmbientFactor: 0.2},
		},
	}
}
