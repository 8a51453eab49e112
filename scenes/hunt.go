package scenes

import (
	"sync"

	"github.com/automoto/kamatayan/assets"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/systems"
	"github.com/automoto/kamatayan/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HuntOptions selects what a hunt is played on.
type HuntOptions struct {
	Level *assets.Level
	Seed  int64
	Bot   *cfg.BotDifficulty // Nil leaves the player to its input
}

type HuntScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         HuntOptions
	once         sync.Once
}

func NewHuntScene(sc SceneChanger, opts HuntOptions) *HuntScene {
	return &HuntScene{sceneChanger: sc, opts: opts}
}

func (hs *HuntScene) Update(dt float64) {
	hs.once.Do(hs.configure)
	systems.Advance(hs.ecs.World, dt)
	hs.ecs.Update()

	// Game over countdown ran out - back to the menu
	if systems.IsSessionFinished(hs.ecs) && hs.sceneChanger != nil {
		hs.sceneChanger.ChangeScene(NewMenuScene(hs.sceneChanger))
	}
}

// ECS returns the scene's world, building it on first use.
func (hs *HuntScene) ECS() *ecs.ECS {
	hs.once.Do(hs.configure)
	return hs.ecs
}

func (hs *HuntScene) configure() {
	hs.ecs = NewHuntECS(hs.opts.Level, hs.opts.Seed)
	if hs.opts.Bot != nil {
		systems.AddBot(hs.ecs, *hs.opts.Bot, hs.opts.Seed)
	}
}

// NewHuntECS builds a hunt world on level: systems in tick order, then the
// session, the level geometry, the player and the first enemies.
func NewHuntECS(level *assets.Level, seed int64) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Intent first, so movement sees this tick's input
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBots))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStamina))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSession))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLighting))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))

	// Events are delivered even while paused
	ecs.AddSystem(systems.ProcessEvents)

	factory.CreateSession(ecs, seed)
	factory.CreateLevel(ecs, level)
	factory.CreatePlayer(ecs, level.PlayerSpawn())
	systems.PopulateEnemies(ecs)

	// Nil unless persistence was opened
	record, _ := systems.LoadRunRecord()
	systems.RestorePreset(ecs, record)

	return ecs
}
