package network

import (
	"testing"

	"github.com/automoto/kamatayan/shared/netcomponents"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCollectsComponents(t *testing.T) {
	sum := SnapshotSummary{Entities: 4, Enemies: make(map[netconfig.StateID]int)}
	sum.add(netcomponents.NetEnemyData{State: netconfig.StateHunting})
	sum.add(netcomponents.NetEnemyData{State: netconfig.StateSearching})
	sum.add(netcomponents.NetEnemyData{State: netconfig.StateSearching})
	sum.add(netcomponents.NetPlayerStateData{StateID: netconfig.Sprint, Lives: 2, MaxLives: 3, Stamina: 1.5})
	sum.add(netcomponents.NetGameStateData{Session: netconfig.SessionPlaying, Elapsed: 4})
	sum.add(netcomponents.NetLightingData{Preset: "scary"})
	sum.add(netcomponents.NetTransformData{X: 1})

	assert.Equal(t, 2, sum.Enemies[netconfig.StateSearching])
	assert.Equal(t, 1, sum.Enemies[netconfig.StateHunting])
	require.NotNil(t, sum.Player)
	assert.Equal(t, 2, sum.Player.Lives)
	require.NotNil(t, sum.Game)
	require.NotNil(t, sum.Lighting)

	s := sum.String()
	assert.Contains(t, s, "entities=4")
	assert.Contains(t, s, "lives=2/3")
	assert.Contains(t, s, "light=scary")
	assert.Contains(t, s, netconfig.StateHunting.String()+"=1")
}
