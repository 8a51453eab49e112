package factory

import (
	"github.com/automoto/kamatayan/archetypes"
	"github.com/automoto/kamatayan/assets"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity, its collision space and walls.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Name:         level.Name,
	})

	CreateSpace(ecs, level.Width, level.Depth, cfg.Level.CellSize)

	for _, w := range level.Walls {
		CreateWall(ecs, w.X, w.Z, w.Width, w.Depth)
	}

	return entry
}
