package systems

import (
	"log"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves queued strikes. Any strike costs the player exactly
// one life; the last life ends the run, any other restarts the level.
func UpdateCombat(ecs *ecs.ECS) {
	var hit []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit = append(hit, e)
	})

	for _, e := range hit {
		applyStrike(ecs, e)
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func applyStrike(ecs *ecs.ECS, e *donburi.Entry) {
	dmg := components.DamageEvent.Get(e)
	if dmg.Amount <= 0 || !e.HasComponent(components.Lives) || e.HasComponent(components.Death) {
		return
	}
	s := session(ecs)
	if s != nil && (s.State != cfg.SessionPlaying || s.RestartPending) {
		return
	}

	lives := components.Lives.Get(e)
	if lives.Dead() {
		return
	}
	lives.Lives--
	log.Printf("Player hit! Lives remaining: %d", lives.Lives)
	flashDamage(ecs)
	lost := enemyEvent(ecs.World, netconfig.EventLifeLost, dmg.Attacker)
	lost.Lives = lives.Lives
	publish(ecs.World, lost)

	if lives.Dead() {
		log.Printf("Game Over! All %d attempts used!", lives.MaxLives)
		if e.HasComponent(components.Player) {
			components.Player.Get(e).Disabled = true
		}
		donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Session.GameOverDelay})
		if s != nil {
			s.State = cfg.SessionGameOver
		}
		publish(ecs.World, HuntEvent{Kind: netconfig.EventGameOver})
		RecordRun(ecs)
		return
	}

	if s != nil {
		s.State = cfg.SessionRestarting
		s.RestartPending = true
	}
}
