package systems

import (
	"log"

	"github.com/automoto/kamatayan/ai"
	"github.com/automoto/kamatayan/assets"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/automoto/kamatayan/systems/factory"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerTarget hands agents the player's position. A player that has run
// out of lives is no longer a target.
type playerTarget struct {
	world donburi.World
}

func (t playerTarget) TargetPosition() (gamemath.Vec3, bool) {
	entry, ok := tags.Player.First(t.world)
	if !ok || entry.HasComponent(components.Death) {
		return gamemath.Vec3{}, false
	}
	return components.Transform.Get(entry).Position, true
}

// enemyStrike queues a strike on the player for UpdateCombat. Only the first
// strike in a tick is kept.
type enemyStrike struct {
	world    donburi.World
	attacker donburi.Entity
}

func (s enemyStrike) ApplyDamage(amount float64) {
	entry, ok := tags.Player.First(s.world)
	if !ok || entry.HasComponent(components.DamageEvent) {
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Amount:   amount,
		Attacker: s.attacker,
	})
}

// SpawnEnemy creates the enemy for a level spawn and binds it to the player.
func SpawnEnemy(ecs *ecs.ECS, level *assets.Level, spawnIndex int) (*donburi.Entry, error) {
	e, err := factory.CreateEnemy(ecs, level, spawnIndex)
	if err != nil {
		return nil, err
	}
	components.Enemy.Get(e).Agent.Attach(
		playerTarget{world: ecs.World},
		enemyStrike{world: ecs.World, attacker: e.Entity()},
	)
	return e, nil
}

func UpdateEnemies(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		agent := enemy.Agent
		agent.Update(dt)

		transform := components.Transform.Get(e)
		transform.Position = agent.Position()
		transform.Facing = agent.Facing()

		state := components.State.Get(e)
		state.StateTimer += dt
		state.Set(StateID(agent.State()))

		reportTransition(ecs, e, enemy)
	})
}

// StateID maps an agent state onto the shared state IDs.
func StateID(s ai.State) cfg.StateID {
	switch s {
	case ai.Waiting:
		return cfg.StateWaiting
	case ai.Hunting:
		return cfg.StateHunting
	case ai.Attacking:
		return cfg.StateAttacking
	}
	return cfg.StateSearching
}

func reportTransition(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData) {
	prev, cur := enemy.LastState, enemy.Agent.State()
	enemy.LastState = cur
	enemy.LastSearchIndex = enemy.Agent.SearchIndex()
	if prev == cur {
		return
	}

	switch {
	case cur.Engaged() && !prev.Engaged():
		log.Println("Kamatayan found the player!")
		publish(ecs.World, enemyEvent(ecs.World, netconfig.EventDetected, e.Entity()))
	case !cur.Engaged() && prev.Engaged():
		log.Println("Kamatayan lost the player")
		publish(ecs.World, enemyEvent(ecs.World, netconfig.EventLost, e.Entity()))
	}

	switch cur {
	case ai.Hunting:
		log.Println("Kamatayan is chasing the player!")
	case ai.Attacking:
		log.Println("Kamatayan attacked the player!")
	case ai.Waiting:
		log.Printf("Kamatayan is searching at point %d", enemy.Agent.SearchIndex()+1)
	}
}

// EngagedEnemies counts enemies currently hunting or attacking.
func EngagedEnemies(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Agent.State().Engaged() {
			n++
		}
	})
	return n
}
