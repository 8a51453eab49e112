package systems

import (
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// SetPaused pauses or resumes gameplay.
func SetPaused(ecs *ecs.ECS, paused bool, reason string) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = paused
	pause.Reason = reason
	if !paused {
		pause.Reason = ""
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithSessionCheck wraps a system to skip execution once the session has
// returned to the menu.
func WithSessionCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if s := session(e); s != nil && s.State == cfg.SessionFinished {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system with the pause and session checks.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithSessionCheck(system))
}
