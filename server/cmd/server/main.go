package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/server/core"
	"github.com/automoto/kamatayan/shared/protocol"
	"github.com/automoto/kamatayan/systems"
)

func main() {
	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", "Kamatayan Server", "Server display name")
	tuningPath := flag.String("tuning", "", "Tuning YAML file, reloaded on change")
	levelName := flag.String("level", cfg.Level.Default, "Level to hunt in")
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = built in)")
	seed := flag.Int64("seed", cfg.Sim.Seed, "Spawner random seed")
	flag.Parse()

	if *tuningPath != "" {
		tuning, err := cfg.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		cfg.Apply(tuning)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	level, err := core.LoadLevel(*levelsDir, *levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("[persistence] run records disabled")
	}

	server := core.NewServer(core.Options{
		Name:     *name,
		TickRate: *tickRate,
		Level:    level,
		Seed:     *seed,
	})
	if *tuningPath != "" {
		if err := server.WatchTuning(*tuningPath); err != nil {
			log.Printf("[tuning] not watching %s: %v", *tuningPath, err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Kamatayan server %q on port %d (tick rate: %d/s, level: %s)",
		*name, *port, *tickRate, level.Name)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
