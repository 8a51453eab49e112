package factory

import (
	"log"
	"math/rand"

	"github.com/automoto/kamatayan/archetypes"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton holding run state, the spawner, the
// lighting controller and the HUD.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(entry, components.SessionData{
		State: cfg.SessionPlaying,
		Seed:  seed,
	})
	components.Spawner.SetValue(entry, components.SpawnerData{
		Rand: rand.New(rand.NewSource(seed)),
	})

	name := cfg.Lighting.InitialPreset
	preset, err := cfg.Lighting.Preset(name)
	if err != nil {
		log.Printf("[lighting] %v, falling back to %s", err, cfg.PresetNormal)
		name = cfg.PresetNormal
		preset = cfg.Lighting.Presets[name]
	}
	components.Lighting.SetValue(entry, components.LightingData{
		Preset:    name,
		Color:     preset.Color,
		Intensity: preset.Intensity,
		Ambient:   preset.Ambient(),
	})

	return entry
}
