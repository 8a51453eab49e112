package systems

import (
	"testing"

	"github.com/automoto/kamatayan/assets"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/leveldata"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/automoto/kamatayan/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// huntLevel is a 40x40 room. The player spawns at (5, 5); the single enemy
// walks a loop far from it.
func huntLevel() *assets.Level {
	return &assets.Level{
		Name:         "test",
		Width:        40,
		Depth:        40,
		PlayerSpawns: []math.Vec2{{X: 5, Y: 5}},
		EnemySpawns: []leveldata.EnemySpawn{
			{Position: math.Vec2{X: 30, Y: 30}, SearchPath: "loop"},
		},
		SearchPaths: map[string]leveldata.SearchPath{
			"loop": {Name: "loop", Points: []math.Vec2{{X: 30, Y: 30}, {X: 30, Y: 36}}},
		},
	}
}

// ambushLevel puts guards with no search path right next to the player's
// spawn, so every life is lost on the first tick after a restart.
func ambushLevel(guards int) *assets.Level {
	level := &assets.Level{
		Name:         "ambush",
		Width:        40,
		Depth:        40,
		PlayerSpawns: []math.Vec2{{X: 5, Y: 5}},
		SearchPaths:  map[string]leveldata.SearchPath{},
	}
	for i := 0; i < guards; i++ {
		level.EnemySpawns = append(level.EnemySpawns, leveldata.EnemySpawn{
			Position: math.Vec2{X: 6, Y: 5 + float64(i)*0.5},
		})
	}
	return level
}

// emptyLevel has a player and no enemy spawns.
func emptyLevel(walls ...leveldata.Wall) *assets.Level {
	return &assets.Level{
		Name:         "empty",
		Width:        40,
		Depth:        40,
		Walls:        walls,
		PlayerSpawns: []math.Vec2{{X: 5, Y: 5}},
		SearchPaths:  map[string]leveldata.SearchPath{},
	}
}

// keepConfig restores the tuning globals when the test ends.
func keepConfig(t *testing.T) {
	t.Helper()
	saved := cfg.Current()
	t.Cleanup(func() { cfg.Apply(saved) })
}

func newHunt(t *testing.T, level *assets.Level) *ecs.ECS {
	t.Helper()
	keepConfig(t)

	e := ecs.NewECS(donburi.NewWorld())
	for _, s := range []ecs.System{
		UpdateBots,
		UpdatePlayer,
		UpdateStamina,
		UpdateEnemies,
		UpdateCombat,
		UpdateSession,
		UpdateSpawner,
		UpdateDeaths,
		UpdateLighting,
		UpdateHUD,
	} {
		e.AddSystem(WithGameplayChecks(s))
	}
	e.AddSystem(ProcessEvents)

	factory.CreateSession(e, 1)
	factory.CreateLevel(e, level)
	factory.CreatePlayer(e, level.PlayerSpawn())
	PopulateEnemies(e)
	return e
}

func step(e *ecs.ECS, dt float64, n int) {
	for i := 0; i < n; i++ {
		Advance(e.World, dt)
		e.Update()
	}
}

func recordEvents(e *ecs.ECS) *[]netconfig.HuntEventKind {
	var got []netconfig.HuntEventKind
	HuntEvents.Subscribe(e.World, func(_ donburi.World, ev HuntEvent) {
		got = append(got, ev.Kind)
	})
	return &got
}
