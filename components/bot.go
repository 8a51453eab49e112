package components

import (
	"math/rand"

	"github.com/automoto/kamatayan/config"
	"github.com/yohamta/donburi"
)

// BotData drives the player from code instead of a client.
type BotData struct {
	Difficulty    config.BotDifficulty
	DecisionTimer float64 // Seconds until the next decision
	HeadingX      float64
	HeadingZ      float64
	Fleeing       bool
	Sprint        bool
	Rand          *rand.Rand
}

var Bot = donburi.NewComponentType[BotData]()
