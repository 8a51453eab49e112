package config

import (
	"fmt"
	"strings"
)

// BotDifficulty affects how early and how hard a bot runs from enemies
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseBotDifficulty reads a difficulty name as used on the command line.
func ParseBotDifficulty(s string) (BotDifficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return BotDifficultyEasy, nil
	case "normal", "":
		return BotDifficultyNormal, nil
	case "hard":
		return BotDifficultyHard, nil
	}
	return BotDifficultyNormal, fmt.Errorf("unknown bot difficulty %q", s)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay  float64 // Seconds between decisions while fleeing
	WanderInterval float64 // Seconds before picking a new wander heading
	FleeRange      float64 // Distance at which the bot runs from an enemy
	SprintRange    float64 // Distance at which it sprints while running
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:  0.5,
				WanderInterval: 2,
				FleeRange:      8,
				SprintRange:    4,
			},
			BotDifficultyNormal: {
				ReactionDelay:  0.25,
				WanderInterval: 1.5,
				FleeRange:      12,
				SprintRange:    6,
			},
			BotDifficultyHard: {
				ReactionDelay:  0.1,
				WanderInterval: 1,
				FleeRange:      16, // Beyond search range, so it runs before being seen
				SprintRange:    10,
			},
		},
	}
}
