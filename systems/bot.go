package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/automoto/kamatayan/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddBot hands the player to a bot. The seed keeps runs reproducible.
func AddBot(ecs *ecs.ECS, difficulty cfg.BotDifficulty, seed int64) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	donburi.Add(player, components.Bot, &components.BotData{
		Difficulty: difficulty,
		Rand:       rand.New(rand.NewSource(seed)),
	})
}

// UpdateBots generates input for bot-controlled players.
// Must run BEFORE UpdatePlayer.
func UpdateBots(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	components.Bot.Each(ecs.World, func(e *donburi.Entry) {
		updateBot(ecs.World, e, dt)
	})
}

func updateBot(w donburi.World, e *donburi.Entry, dt float64) {
	bot := components.Bot.Get(e)
	input := components.PlayerInput.Get(e)
	difficulty := cfg.Bot.Difficulties[bot.Difficulty]

	bot.DecisionTimer -= dt
	if bot.DecisionTimer <= 0 {
		pos := components.Transform.Get(e).Position
		threat, dist, found := nearestEnemy(w, pos)

		switch {
		case found && dist < difficulty.FleeRange:
			away := pos.Sub(threat)
			away.Y = 0
			if away.IsZero() {
				away = gamemath.Forward
			}
			away = away.Normalized()
			bot.HeadingX, bot.HeadingZ = away.X, away.Z
			bot.Fleeing = true
			bot.Sprint = dist < difficulty.SprintRange
			bot.DecisionTimer = difficulty.ReactionDelay
		default:
			angle := bot.Rand.Float64() * 2 * math.Pi
			bot.HeadingX, bot.HeadingZ = math.Cos(angle), math.Sin(angle)
			bot.Fleeing = false
			bot.Sprint = false
			bot.DecisionTimer = difficulty.WanderInterval
		}
	}

	input.MoveX = bot.HeadingX
	input.MoveZ = bot.HeadingZ
	input.Sprint = bot.Sprint
	input.Crouch = false
}

func nearestEnemy(w donburi.World, from gamemath.Vec3) (gamemath.Vec3, float64, bool) {
	var best gamemath.Vec3
	bestDist := math.Inf(1)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		if d := gamemath.Distance(from, pos); d < bestDist {
			best, bestDist = pos, d
		}
	})
	return best, bestDist, !math.IsInf(bestDist, 1)
}
