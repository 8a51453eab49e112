package scenes

import (
	"testing"

	"github.com/automoto/kamatayan/assets"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/leveldata"
	"github.com/automoto/kamatayan/systems"
	"github.com/automoto/kamatayan/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

type recordingChanger struct {
	scenes []interface{}
}

func (c *recordingChanger) ChangeScene(scene interface{}) {
	c.scenes = append(c.scenes, scene)
}

func TestHuntOnCrypt(t *testing.T) {
	level := assets.NewLevelLoader().MustLoadLevel("crypt")
	hs := NewHuntScene(nil, HuntOptions{Level: level, Seed: 3})

	for i := 0; i < 60; i++ {
		hs.Update(1.0 / 30)
	}

	e := hs.ECS()
	assert.Equal(t, len(level.EnemySpawns), systems.EnemyCount(e.World))
	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	assert.NotNil(t, player)
	assert.False(t, systems.IsSessionFinished(e))
}

func TestFinishedHuntReturnsToMenu(t *testing.T) {
	level := &assets.Level{
		Name:         "ambush",
		Width:        40,
		Depth:        40,
		PlayerSpawns: []math.Vec2{{X: 5, Y: 5}},
		EnemySpawns:  []leveldata.EnemySpawn{{Position: math.Vec2{X: 6, Y: 5}}},
		SearchPaths:  map[string]leveldata.SearchPath{},
	}
	changer := &recordingChanger{}
	hs := NewHuntScene(changer, HuntOptions{Level: level, Seed: 1})

	for i := 0; i < 5; i++ {
		hs.Update(0.5)
	}
	assert.Empty(t, changer.scenes, "game over screen is still up")

	hs.Update(0.5)
	require.Len(t, changer.scenes, 1)
	menu, ok := changer.scenes[0].(*MenuScene)
	require.True(t, ok)
	assert.Nil(t, menu.Record(), "nothing stored without persistence")
}

func TestHuntWithBot(t *testing.T) {
	level := assets.NewLevelLoader().MustLoadLevel("crypt")
	easy := cfg.BotDifficultyEasy
	hs := NewHuntScene(nil, HuntOptions{Level: level, Seed: 9, Bot: &easy})

	hs.Update(0.1)
	player, ok := tags.Player.First(hs.ECS().World)
	require.True(t, ok)
	assert.True(t, player.HasComponent(components.Bot))
}
