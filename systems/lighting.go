package systems

import (
	"log"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func lighting(ecs *ecs.ECS) *components.LightingData {
	entry, ok := components.Lighting.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Lighting.Get(entry)
}

// SetLightingPreset switches the light to a preset immediately, dropping any
// running transition.
func SetLightingPreset(ecs *ecs.ECS, name string) error {
	preset, err := cfg.Lighting.Preset(name)
	if err != nil {
		return err
	}
	l := lighting(ecs)
	if l == nil {
		return nil
	}
	applyPreset(l, name, preset)
	log.Printf("[lighting] set to %s", name)
	return nil
}

func applyPreset(l *components.LightingData, name string, p cfg.LightingPreset) {
	l.Preset = name
	l.Color = p.Color
	l.Intensity = p.Intensity
	l.Ambient = p.Ambient()
	l.Transition = nil
}

// TransitionLighting blends from the current light to a preset over the
// configured transition duration.
func TransitionLighting(ecs *ecs.ECS, name string) error {
	preset, err := cfg.Lighting.Preset(name)
	if err != nil {
		return err
	}
	l := lighting(ecs)
	if l == nil {
		return nil
	}

	d := cfg.Lighting.TransitionDuration
	if d <= 0 {
		applyPreset(l, name, preset)
		return nil
	}
	l.Transition = &components.LightTransition{
		Target:      name,
		FromColor:   l.Color,
		FromLevel:   l.Intensity,
		FromAmbient: l.Ambient,
		To:          preset,
		Tween:       gween.New(0, 1, float32(d), ease.InOutQuad),
	}
	return nil
}

// UpdateLighting steps the running transition. With threat feedback on it
// also picks the threat preset while any enemy is engaged and the calm one
// otherwise.
func UpdateLighting(ecs *ecs.ECS) {
	l := lighting(ecs)
	if l == nil {
		return
	}

	if cfg.Lighting.ThreatFeedback {
		want := cfg.Lighting.CalmPreset
		if EngagedEnemies(ecs.World) > 0 {
			want = cfg.Lighting.ThreatPreset
		}
		if want != lightingTarget(l) {
			if err := TransitionLighting(ecs, want); err != nil {
				log.Printf("[lighting] %v", err)
			}
		}
	}

	t := l.Transition
	if t == nil {
		return
	}
	progress, finished := t.Tween.Update(float32(deltaTime(ecs)))
	if finished {
		applyPreset(l, t.Target, t.To)
		return
	}
	p := float64(progress)
	l.Color = t.FromColor.Lerp(t.To.Color, p)
	l.Intensity = t.FromLevel + (t.To.Intensity-t.FromLevel)*p
	l.Ambient = t.FromAmbient.Lerp(t.To.Ambient(), p)
}

func lightingTarget(l *components.LightingData) string {
	if l.Transition != nil {
		return l.Transition.Target
	}
	return l.Preset
}
