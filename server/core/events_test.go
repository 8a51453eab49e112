package core

import (
	"testing"
	"time"

	"github.com/automoto/kamatayan/components"
	"github.com/automoto/kamatayan/shared/netconfig"
	"github.com/automoto/kamatayan/systems"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestHuntEventMessageUsesRaisedNetworkID(t *testing.T) {
	w := donburi.NewWorld()
	session := w.Entry(w.Create(components.Session))
	components.Session.SetValue(session, components.SessionData{Elapsed: 12.5})

	// The attacker is already gone when the event is delivered.
	gone := w.Create(components.Session)
	w.Remove(gone)

	msg := huntEventMessage(w, systems.HuntEvent{
		Kind:       netconfig.EventLifeLost,
		Enemy:      gone,
		EnemyNetID: 9,
		Lives:      2,
	}, time.UnixMilli(1500))

	assert.Equal(t, netconfig.EventLifeLost, msg.Kind)
	assert.Equal(t, uint(9), msg.EnemyID)
	assert.Equal(t, 2, msg.Lives)
	assert.Equal(t, 12.5, msg.Elapsed)
	assert.Equal(t, int64(1500), msg.Timestamp)
}

func TestHuntEventMessageForPlayerEvents(t *testing.T) {
	msg := huntEventMessage(donburi.NewWorld(), systems.HuntEvent{Kind: netconfig.EventGameOver}, time.UnixMilli(0))
	assert.Zero(t, msg.EnemyID)
	assert.Zero(t, msg.Elapsed)
}
