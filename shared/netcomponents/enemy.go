package netcomponents

import (
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetEnemyData is what clients see of an enemy's AI. Position travels in
// NetTransform.
type NetEnemyData struct {
	State         netconfig.StateID
	SearchIndex   int
	SearchPath    string
	TargetVisible bool
	WaitTimer     float64
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()
