package components

import (
	"github.com/automoto/kamatayan/ai"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Agent      *ai.Agent
	SearchPath string // Name of the level search path (if any)
	SpawnIndex int    // Index into the level's enemy spawns

	// Last observed AI state, used to detect transitions
	LastState       ai.State
	LastSearchIndex int
}

var Enemy = donburi.NewComponentType[EnemyData]()
