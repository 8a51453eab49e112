package core

import (
	"fmt"
	"log"

	"github.com/automoto/kamatayan/assets"
)

// LoadLevel loads the named hunt level. An empty dir reads the levels built
// into the binary.
func LoadLevel(dir, name string) (*assets.Level, error) {
	loader := assets.NewLevelLoader()
	if dir != "" {
		loader = assets.NewDirLevelLoader(dir)
	}

	level, err := loader.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	log.Printf("Loaded level %s: %d walls, %d enemy spawns, %d search paths, %.0fx%.0f map",
		level.Name, len(level.Walls), len(level.EnemySpawns), len(level.SearchPaths), level.Width, level.Depth)

	return level, nil
}
