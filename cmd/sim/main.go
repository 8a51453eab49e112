// Command sim runs a hunt headless at a fixed time step and logs how it
// plays out.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/automoto/kamatayan/assets"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/scenes"
	"github.com/automoto/kamatayan/systems"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi/ecs"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func main() {
	ticks := flag.Int("ticks", cfg.Sim.Ticks, "Ticks to simulate")
	dt := flag.Float64("dt", cfg.Sim.DeltaTime, "Seconds per tick")
	tuningPath := flag.String("tuning", "", "Tuning YAML file")
	watch := flag.Bool("watch", false, "Reload -tuning when the file changes")
	seed := flag.Int64("seed", cfg.Sim.Seed, "Spawner and bot random seed")
	wander := flag.String("wander", "", "Let a bot of this difficulty (easy, normal, hard) drive the player")
	persist := flag.Bool("persist", false, "Record the run on disk")
	levelName := flag.String("level", cfg.Level.Default, "Level to hunt in")
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = built in)")
	flag.Parse()

	if err := checkStep(*dt); err != nil {
		log.Fatalf("Bad -dt: %v", err)
	}

	if *tuningPath != "" {
		tuning, err := cfg.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		cfg.Apply(tuning)
	}

	var watcher *cfg.Watcher
	if *watch && *tuningPath != "" {
		w, err := cfg.NewWatcher(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer w.Close()
		watcher = w
	}

	if *persist {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("[persistence] run records disabled")
		}
	}

	loader := assets.NewLevelLoader()
	if *levelsDir != "" {
		loader = assets.NewDirLevelLoader(*levelsDir)
	}
	level, err := loader.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	opts := scenes.HuntOptions{Level: level, Seed: *seed}
	if *wander != "" {
		difficulty, err := cfg.ParseBotDifficulty(*wander)
		if err != nil {
			log.Fatalf("Bad -wander: %v", err)
		}
		opts.Bot = &difficulty
	}

	game := &Game{}
	hunt := scenes.NewHuntScene(game, opts)
	game.scene = hunt
	script := newScript(level.PlayerSpawn())

	log.Printf("Simulating %d ticks of %.4fs on %s (seed %d)", *ticks, *dt, level.Name, *seed)
	reportEvery := max(1, int(1 / *dt))

	for tick := 0; tick < *ticks; tick++ {
		if watcher != nil {
			watcher.Poll()
		}

		if opts.Bot == nil {
			systems.ApplyPlayerInput(hunt.ECS().World, script.input(float64(tick) * *dt))
		}
		game.scene.Update(*dt)

		if menu, ok := game.scene.(*scenes.MenuScene); ok {
			log.Printf("Run ended after %d ticks", tick+1)
			if r := menu.Record(); r != nil {
				log.Printf("Best survival %.1fs over %d runs", r.BestSurvival, r.Runs)
			}
			return
		}
		if (tick+1)%reportEvery == 0 {
			report(hunt.ECS())
		}
	}
	report(hunt.ECS())
}

// checkStep rejects time steps that would stall or rewind the hunt.
func checkStep(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return fmt.Errorf("time step %v must be a positive number of seconds", dt)
	}
	return nil
}

func report(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Transform.Get(player).Position
	lives := components.Lives.Get(player)
	state := components.State.Get(player).CurrentState

	elapsed, preset := 0.0, ""
	if entry, ok := components.Session.First(e.World); ok {
		elapsed = components.Session.Get(entry).Elapsed
		preset = components.Lighting.Get(entry).Preset
	}

	log.Printf("t=%.1fs player=(%.1f, %.1f) %s lives=%d/%d enemies=%d engaged=%d light=%s",
		elapsed, pos.X, pos.Z, state, lives.Lives, lives.MaxLives,
		systems.EnemyCount(e.World), systems.EngagedEnemies(e.World), preset)
}
