package systems

import (
	"log"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down the game over screen and then finishes the
// session.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer <= 0 {
			return
		}
		death.Timer -= dt
		if death.Timer > 0 {
			return
		}
		death.Timer = 0
		if s := session(ecs); s != nil && s.State != cfg.SessionFinished {
			s.State = cfg.SessionFinished
			log.Println("Returning to menu")
		}
	})
}
