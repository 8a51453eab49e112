package components

import (
	"github.com/automoto/kamatayan/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Name         string
}

var Level = donburi.NewComponentType[LevelData]()
