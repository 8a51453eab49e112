package systems

import (
	"testing"

	"github.com/automoto/kamatayan/ai"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/automoto/kamatayan/shared/leveldata"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/automoto/kamatayan/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestStateID(t *testing.T) {
	assert.Equal(t, cfg.StateSearching, StateID(ai.Searching))
	assert.Equal(t, cfg.StateWaiting, StateID(ai.Waiting))
	assert.Equal(t, cfg.StateHunting, StateID(ai.Hunting))
	assert.Equal(t, cfg.StateAttacking, StateID(ai.Attacking))
}

func TestEnemyDetectsAndLosesPlayer(t *testing.T) {
	level := emptyLevel()
	level.EnemySpawns = []leveldata.EnemySpawn{{Position: math.Vec2{X: 15, Y: 5}}}
	e := newHunt(t, level)
	events := recordEvents(e)

	step(e, 0.1, 1)
	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	assert.Equal(t, []netconfig.HuntEventKind{netconfig.EventDetected}, *events)
	assert.Equal(t, cfg.StateHunting, components.State.Get(enemy).CurrentState)
	assert.InDelta(t, 14.6, components.Transform.Get(enemy).Position.X, 1e-9)
	assert.Equal(t, 1, EngagedEnemies(e.World))

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	PlacePlayer(player, gamemath.V3(38, 0, 38))

	step(e, 0.1, 1)
	assert.Equal(t, []netconfig.HuntEventKind{netconfig.EventDetected, netconfig.EventLost}, *events)
	assert.Equal(t, cfg.StateSearching, components.State.Get(enemy).CurrentState)
	assert.Equal(t, 0, EngagedEnemies(e.World))
}

func TestEnemyWalksItsSearchPath(t *testing.T) {
	e := newHunt(t, huntLevel())
	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	data := components.Enemy.Get(enemy)
	assert.Equal(t, "loop", data.SearchPath)

	step(e, 0.5, 1)
	assert.Equal(t, cfg.StateWaiting, components.State.Get(enemy).CurrentState)

	// Three seconds at the first point, then on to the second.
	step(e, 0.5, 7)
	assert.Equal(t, 1, data.Agent.SearchIndex())
	assert.Equal(t, 1, data.LastSearchIndex)
	assert.Equal(t, data.Agent.Position(), components.Transform.Get(enemy).Position)
	assert.Equal(t, 0, EngagedEnemies(e.World))
}
