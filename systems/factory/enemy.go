package factory

import (
	"github.com/automoto/kamatayan/ai"
	"github.com/automoto/kamatayan/archetypes"
	"github.com/automoto/kamatayan/assets"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AgentConfig converts enemy tuning into agent configuration.
func AgentConfig(c cfg.EnemyConfig) ai.Config {
	return ai.Config{
		SearchRange:  c.SearchRange,
		AttackRange:  c.AttackRange,
		MoveSpeed:    c.MoveSpeed,
		SearchSpeed:  c.SearchSpeed,
		WaitAtPoint:  c.WaitAtPoint,
		AttackDamage: c.AttackDamage,
		FieldOfView:  c.FieldOfView,
	}
}

// CreateEnemy spawns an enemy for one of the level's enemy spawns, using the
// enemy tuning current at the time of the call. The agent starts on its first
// search point, or on the spawn when it has none.
func CreateEnemy(ecs *ecs.ECS, level *assets.Level, spawnIndex int, opts ...ai.Option) (*donburi.Entry, error) {
	spawn := level.EnemySpawns[spawnIndex]
	points, err := level.SearchPointsFor(spawn)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		opts = append([]ai.Option{ai.WithPosition(leveldata.World(spawn.Position, 0))}, opts...)
	}
	agent := ai.New(AgentConfig(cfg.Enemy), points, opts...)

	enemy := archetypes.Enemy.Spawn(ecs)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Agent:           agent,
		SearchPath:      spawn.SearchPath,
		SpawnIndex:      spawnIndex,
		LastState:       agent.State(),
		LastSearchIndex: agent.SearchIndex(),
	})
	components.Transform.SetValue(enemy, components.TransformData{
		Position: agent.Position(),
		Facing:   agent.Facing(),
		Height:   2,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateSearching,
		PreviousState: cfg.StateNone,
	})

	return enemy, nil
}
