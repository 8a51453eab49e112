package core

import (
	"log"

	"github.com/automoto/kamatayan/components"
	"github.com/automoto/kamatayan/shared/netcomponents"
	"github.com/automoto/kamatayan/systems"
	"github.com/automoto/kamatayan/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// syncNetState mirrors the simulation onto the network components DoSync
// sends. Entities are registered with esync the first time they are seen;
// enemies recreated by a restart get new network IDs.
func (s *Server) syncNetState() {
	if player, ok := tags.Player.First(s.world); ok {
		s.syncPlayer(player)
	}

	var enemies []*donburi.Entry
	tags.Enemy.Each(s.world, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		s.syncEnemy(e)
	}

	if session, ok := components.Session.First(s.world); ok {
		s.syncSession(session, len(enemies))
	}
}

func (s *Server) syncPlayer(e *donburi.Entry) {
	if !e.HasComponent(netcomponents.NetTransform) {
		donburi.Add(e, netcomponents.NetTransform, &netcomponents.NetTransformData{})
		donburi.Add(e, netcomponents.NetVelocity, &netcomponents.NetVelocityData{})
		donburi.Add(e, netcomponents.NetPlayerState, &netcomponents.NetPlayerStateData{})

		entity := e.Entity()
		if err := srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetTransform, netcomponents.NetVelocity),
			netcomponents.NetPlayerState,
		); err != nil {
			log.Printf("Failed to setup network sync for player: %v", err)
		}
	}

	netcomponents.NetTransform.SetValue(e, netTransform(components.Transform.Get(e)))
	vel := components.Velocity.Get(e)
	netcomponents.NetVelocity.SetValue(e, netcomponents.NetVelocityData{SpeedX: vel.X, SpeedZ: vel.Z})
	netcomponents.NetPlayerState.SetValue(e, netPlayerState(e))
}

func (s *Server) syncEnemy(e *donburi.Entry) {
	if !e.HasComponent(netcomponents.NetTransform) {
		donburi.Add(e, netcomponents.NetTransform, &netcomponents.NetTransformData{})
		donburi.Add(e, netcomponents.NetEnemy, &netcomponents.NetEnemyData{})

		entity := e.Entity()
		if err := srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetTransform),
			netcomponents.NetEnemy,
		); err != nil {
			log.Printf("Failed to setup network sync for enemy: %v", err)
		}
	}

	netcomponents.NetTransform.SetValue(e, netTransform(components.Transform.Get(e)))
	netcomponents.NetEnemy.SetValue(e, netEnemy(components.Enemy.Get(e)))
}

func (s *Server) syncSession(e *donburi.Entry, enemies int) {
	if !e.HasComponent(netcomponents.NetGameState) {
		donburi.Add(e, netcomponents.NetGameState, &netcomponents.NetGameStateData{})
		donburi.Add(e, netcomponents.NetLighting, &netcomponents.NetLightingData{})

		entity := e.Entity()
		if err := srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetLighting),
			netcomponents.NetGameState,
		); err != nil {
			log.Printf("Failed to setup network sync for session: %v", err)
		}
	}

	netcomponents.NetGameState.SetValue(e, netGameState(
		components.Session.Get(e),
		components.HUD.Get(e),
		enemies,
		systems.EngagedEnemies(s.world),
	))
	netcomponents.NetLighting.SetValue(e, netLighting(components.Lighting.Get(e)))
}

func netTransform(t *components.TransformData) netcomponents.NetTransformData {
	return netcomponents.NetTransformData{
		X:      t.Position.X,
		Y:      t.Position.Y,
		Z:      t.Position.Z,
		Yaw:    t.Facing.Yaw(),
		Height: t.Height,
	}
}

func netEnemy(enemy *components.EnemyData) netcomponents.NetEnemyData {
	agent := enemy.Agent
	return netcomponents.NetEnemyData{
		State:         systems.StateID(agent.State()),
		SearchIndex:   agent.SearchIndex(),
		SearchPath:    enemy.SearchPath,
		TargetVisible: agent.TargetVisible(),
		WaitTimer:     agent.WaitTimer(),
	}
}

func netPlayerState(e *donburi.Entry) netcomponents.NetPlayerStateData {
	lives := components.Lives.Get(e)
	stamina := components.Stamina.Get(e)
	return netcomponents.NetPlayerStateData{
		StateID:      components.State.Get(e).CurrentState,
		Lives:        lives.Lives,
		MaxLives:     lives.MaxLives,
		Stamina:      stamina.Current,
		MaxStamina:   stamina.Max,
		CanSprint:    stamina.CanSprint,
		Crouching:    components.Player.Get(e).Crouching,
		LastSequence: components.PlayerInput.Get(e).Sequence,
	}
}

func netGameState(s *components.SessionData, hud *components.HUDData, enemies, engaged int) netcomponents.NetGameStateData {
	return netcomponents.NetGameStateData{
		Session:      s.State,
		Elapsed:      s.Elapsed,
		Restarts:     s.Restarts,
		Enemies:      enemies,
		Engaged:      engaged,
		LivesText:    hud.LivesText,
		AttemptsText: hud.AttemptsText,
		StaminaText:  hud.StaminaText,
		GameOverText: hud.GameOverText,
		DamageFlash:  hud.DamageFlash,
	}
}

func netLighting(l *components.LightingData) netcomponents.NetLightingData {
	return netcomponents.NetLightingData{
		Preset:    l.Preset,
		R:         l.Color.R,
		G:         l.Color.G,
		B:         l.Color.B,
		Intensity: l.Intensity,
		AmbR:      l.Ambient.R,
		AmbG:      l.Ambient.G,
		AmbB:      l.Ambient.B,
	}
}
