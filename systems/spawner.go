package systems

import (
	"log"

	"github.com/automoto/kamatayan/assets"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PopulateEnemies fills the level's enemy spawns in random order, up to the
// enemy cap.
func PopulateEnemies(ecs *ecs.ECS) {
	level, sp := currentLevel(ecs), spawner(ecs)
	if level == nil || sp == nil || len(level.EnemySpawns) == 0 {
		return
	}

	n := min(cfg.Spawner.MaxEnemies, len(level.EnemySpawns))
	for _, idx := range sp.Rand.Perm(len(level.EnemySpawns))[:n] {
		spawnAt(ecs, level, sp, idx)
	}
	sp.Timer = 0
}

// UpdateSpawner tops the level up with an enemy at a random spawn every
// SpawnDelay seconds while below the cap.
func UpdateSpawner(ecs *ecs.ECS) {
	if s := session(ecs); s == nil || s.State != cfg.SessionPlaying {
		return
	}
	level, sp := currentLevel(ecs), spawner(ecs)
	if level == nil || sp == nil || len(level.EnemySpawns) == 0 {
		return
	}
	if EnemyCount(ecs.World) >= cfg.Spawner.MaxEnemies {
		sp.Timer = 0
		return
	}

	sp.Timer += deltaTime(ecs)
	if sp.Timer < cfg.Spawner.SpawnDelay {
		return
	}
	sp.Timer = 0
	spawnAt(ecs, level, sp, sp.Rand.Intn(len(level.EnemySpawns)))
}

func spawnAt(ecs *ecs.ECS, level *assets.Level, sp *components.SpawnerData, idx int) {
	if _, err := SpawnEnemy(ecs, level, idx); err != nil {
		log.Printf("[spawner] spawn %d: %v", idx, err)
		return
	}
	sp.Spawned++
	log.Printf("Spawned Kamatayan at spawn point %d", idx)
}

// EnemyCount returns the number of live enemies.
func EnemyCount(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func spawner(ecs *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Spawner.Get(entry)
}

func currentLevel(ecs *ecs.ECS) *assets.Level {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).CurrentLevel
}
