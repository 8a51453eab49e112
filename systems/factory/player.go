package factory

import (
	"github.com/automoto/kamatayan/archetypes"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/automoto/kamatayan/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on spawn.
func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := ToSpace(cfg.Player.CollisionSize)
	obj := resolv.NewObject(ToSpace(spawn.X)-size/2, ToSpace(spawn.Z)-size/2, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{Spawn: spawn})
	components.Transform.SetValue(player, components.TransformData{
		Position: spawn,
		Facing:   gamemath.Forward,
		Height:   cfg.Player.StandingHeight,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Stamina.SetValue(player, NewStamina())
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.MaxLives,
		MaxLives: cfg.Player.MaxLives,
	})

	return player
}

// NewStamina returns a full sprint meter.
func NewStamina() components.StaminaData {
	return components.StaminaData{
		Current:      cfg.Player.MaxSprintTime,
		Max:          cfg.Player.MaxSprintTime,
		RechargeTime: cfg.Player.SprintRechargeTime,
		CanSprint:    true,
	}
}
