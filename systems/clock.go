package systems

import (
	"github.com/automoto/kamatayan/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Advance sets the delta for the coming update.
func Advance(w donburi.World, dt float64) {
	if entry, ok := components.Time.First(w); ok {
		t := components.Time.Get(entry)
		t.Delta = dt
		t.Ticks++
	}
}

func deltaTime(ecs *ecs.ECS) float64 {
	entry, ok := components.Time.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Time.Get(entry).Delta
}

func session(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}
