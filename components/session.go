package components

import (
	"math/rand"

	"github.com/automoto/kamatayan/config"
	"github.com/yohamta/donburi"
)

type SessionData struct {
	State    config.SessionStateID
	Elapsed  float64 // Seconds survived this run
	Restarts int
	Seed     int64

	// Set by the combat system, consumed by the session system
	RestartPending bool
	Recorded       bool
}

var Session = donburi.NewComponentType[SessionData]()

type SpawnerData struct {
	Timer   float64
	Spawned int
	Rand    *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// TimeData is the simulation clock, advanced once per tick before the
// systems run.
type TimeData struct {
	Delta float64
	Ticks uint64
}

var Time = donburi.NewComponentType[TimeData]()
