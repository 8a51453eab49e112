package systems

import (
	"log"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/automoto/kamatayan/systems/factory"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession tracks survival time and carries out pending restarts.
func UpdateSession(ecs *ecs.ECS) {
	s := session(ecs)
	if s == nil {
		return
	}

	switch s.State {
	case cfg.SessionPlaying:
		s.Elapsed += deltaTime(ecs)
	case cfg.SessionRestarting:
		if s.RestartPending {
			RestartLevel(ecs)
		}
	}
}

// RestartLevel puts the level back to its starting layout: enemies are
// removed and respawned, and the player returns to the spawn with a full
// sprint meter. Lives carry over.
func RestartLevel(ecs *ecs.ECS) {
	RemoveEnemies(ecs)

	lives := 0
	if player, ok := tags.Player.First(ecs.World); ok {
		resetPlayer(player)
		lives = components.Lives.Get(player).Lives
	}

	if sp := spawner(ecs); sp != nil {
		sp.Timer = 0
		sp.Spawned = 0
	}
	PopulateEnemies(ecs)

	if s := session(ecs); s != nil {
		s.Restarts++
		s.RestartPending = false
		s.State = cfg.SessionPlaying
	}
	log.Printf("Restarting level... Lives left: %d", lives)
	publish(ecs.World, HuntEvent{Kind: netconfig.EventRestart, Lives: lives})
}

func resetPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	PlacePlayer(e, player.Spawn)
	player.Crouching = false
	player.Sprinting = false

	components.Stamina.SetValue(e, factory.NewStamina())
	components.Velocity.SetValue(e, components.VelocityData{})
	components.State.Get(e).Set(cfg.Idle)
}

// RemoveEnemies deletes every enemy from the world.
func RemoveEnemies(ecs *ecs.ECS) {
	var enemies []donburi.Entity
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e.Entity())
	})
	for _, e := range enemies {
		ecs.World.Remove(e)
	}
}

// IsSessionFinished reports whether the game over countdown has run out.
func IsSessionFinished(ecs *ecs.ECS) bool {
	s := session(ecs)
	return s != nil && s.State == cfg.SessionFinished
}

// StartNewRun begins a fresh run in the same world with full lives.
func StartNewRun(ecs *ecs.ECS) {
	if player, ok := tags.Player.First(ecs.World); ok {
		if player.HasComponent(components.Death) {
			donburi.Remove[components.DeathData](player, components.Death)
		}
		lives := components.Lives.Get(player)
		lives.Lives = lives.MaxLives
		components.Player.Get(player).Disabled = false
	}

	RestartLevel(ecs)

	if s := session(ecs); s != nil {
		s.Elapsed = 0
		s.Restarts = 0
		s.Recorded = false
	}
	log.Println("Starting a new run")
}
