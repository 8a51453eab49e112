package archetypes

import (
	"github.com/automoto/kamatayan/components"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only layer the headless world uses.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Velocity,
		components.Object,
		components.State,
		components.Stamina,
		components.Lives,
		components.PlayerInput,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.State,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Session,
		components.Time,
		components.Spawner,
		components.Lighting,
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
