package systems

import (
	"math"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/automoto/kamatayan/systems/factory"
	"github.com/automoto/kamatayan/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(e, dt)
	})
}

func updateSinglePlayer(e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	input := components.PlayerInput.Get(e)
	state := components.State.Get(e)
	velocity := components.Velocity.Get(e)
	state.StateTimer += dt

	defer func() { input.PreviousCrouch = input.Crouch }()

	if player.Disabled {
		player.Sprinting = false
		components.Stamina.Get(e).Sprinting = false
		*velocity = components.VelocityData{}
		state.Set(cfg.Dead)
		return
	}

	stamina := components.Stamina.Get(e)
	transform := components.Transform.Get(e)
	obj := components.Object.Get(e).Object

	move := gamemath.V3(gamemath.Clamp(input.MoveX, -1, 1), 0, gamemath.Clamp(input.MoveZ, -1, 1))
	if move.Length() > 1 {
		move = move.Normalized()
	}
	moving := !move.IsZero()

	speed, sprinting := movementSpeed(player, input, stamina, moving)
	player.Sprinting = sprinting
	stamina.Sprinting = sprinting

	dx, dz := moveAndCollide(obj, move.X*speed*dt, move.Z*speed*dt)
	transform.Position.X = factory.FromSpace(obj.X + obj.W/2)
	transform.Position.Z = factory.FromSpace(obj.Y + obj.H/2)
	if dt > 0 {
		velocity.X, velocity.Z = dx/dt, dz/dt
	}
	if moving {
		transform.Facing = move.Normalized()
	}

	if input.CrouchJustPressed() {
		player.Crouching = !player.Crouching
		if player.Crouching {
			transform.Height = cfg.Player.CrouchHeight
		} else {
			transform.Height = cfg.Player.StandingHeight
		}
	}

	state.Set(playerState(player, moving))
}

// movementSpeed picks sprint, crouch or walk speed in that priority.
func movementSpeed(player *components.PlayerData, input *components.PlayerInputData, stamina *components.StaminaData, moving bool) (float64, bool) {
	switch {
	case moving && input.Sprint && !player.Crouching && stamina.CanSprint && stamina.Current > 0:
		return cfg.Player.SprintSpeed, true
	case player.Crouching:
		return cfg.Player.CrouchSpeed, false
	}
	return cfg.Player.WalkSpeed, false
}

func playerState(player *components.PlayerData, moving bool) cfg.StateID {
	switch {
	case player.Crouching && moving:
		return cfg.CrouchWalk
	case player.Crouching:
		return cfg.Crouch
	case player.Sprinting:
		return cfg.Sprint
	case moving:
		return cfg.Walk
	}
	return cfg.Idle
}

// moveAndCollide moves obj by dx/dz world units, stopping at solid objects
// one axis at a time. It returns the displacement actually applied.
func moveAndCollide(obj *resolv.Object, dx, dz float64) (float64, float64) {
	px, pz := factory.ToSpace(dx), factory.ToSpace(dz)

	if px != 0 {
		if check := obj.Check(px, 0, tags.ResolvSolid); check != nil {
			for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
				if overlaps(obj.Y, obj.H, solid.Y, solid.H) {
					px = limitStep(px, check.ContactWithObject(solid).X())
				}
			}
		}
		obj.X += px
	}

	if pz != 0 {
		if check := obj.Check(0, pz, tags.ResolvSolid); check != nil {
			for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
				if overlaps(obj.X, obj.W, solid.X, solid.W) {
					pz = limitStep(pz, check.ContactWithObject(solid).Y())
				}
			}
		}
		obj.Y += pz
	}

	obj.Update()
	return factory.FromSpace(px), factory.FromSpace(pz)
}

// limitStep shortens step to the contact distance when the contact lies
// ahead of the mover and closer than the step. Solids that only share a
// cell, or that the mover already overlaps, do not stop it.
func limitStep(step, contact float64) float64 {
	if contact*step >= 0 && math.Abs(contact) < math.Abs(step) {
		return contact
	}
	return step
}

// overlaps reports whether two spans share more than an edge.
func overlaps(a, aLen, b, bLen float64) bool {
	return a < b+bLen && b < a+aLen
}

// PlacePlayer moves the player's body and transform to pos.
func PlacePlayer(e *donburi.Entry, pos gamemath.Vec3) {
	obj := components.Object.Get(e).Object
	obj.X = factory.ToSpace(pos.X) - obj.W/2
	obj.Y = factory.ToSpace(pos.Z) - obj.H/2
	obj.Update()

	transform := components.Transform.Get(e)
	transform.Position = pos
	transform.Facing = gamemath.Forward
	transform.Height = cfg.Player.StandingHeight
}

func UpdateStamina(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	components.Stamina.Each(ecs.World, func(e *donburi.Entry) {
		StepStamina(components.Stamina.Get(e), dt)
	})
}

// StepStamina drains stamina while sprinting, runs the recharge after a
// depletion, and otherwise refills it.
func StepStamina(s *components.StaminaData, dt float64) {
	switch {
	case s.Sprinting && s.Current > 0:
		s.Current -= dt
		if s.Current <= 0 {
			s.Current = 0
			s.CanSprint = false
			s.Sprinting = false
			s.Recharge = 0
		}
	case !s.CanSprint:
		s.Recharge += dt
		if s.Recharge >= s.RechargeTime {
			s.CanSprint = true
			s.Current = s.Max
			s.Recharge = 0
		}
	case !s.Sprinting && s.Current < s.Max:
		s.Current = math.Min(s.Current+dt, s.Max)
	}
}
