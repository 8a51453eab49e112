package systems

import (
	"testing"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/stretchr/testify/assert"
)

func TestHUDText(t *testing.T) {
	e := newHunt(t, emptyLevel())
	step(e, 0.1, 1)

	h := hud(t, e)
	assert.Equal(t, "Lives: 3/3", h.LivesText)
	assert.Equal(t, "Attempts: 1/3", h.AttemptsText)
	assert.Equal(t, "Stamina: 3/3", h.StaminaText)
	assert.Empty(t, h.GameOverText)

	ApplyPlayerInput(e.World, components.PlayerInputData{MoveX: 1, Sprint: true})
	step(e, 0.1, 10)
	assert.Equal(t, "Stamina: 2/3", h.StaminaText)
}

func TestHUDGameOverText(t *testing.T) {
	e := newHunt(t, emptyLevel())
	sessionOf(t, e).State = cfg.SessionGameOver
	step(e, 0.1, 1)
	assert.Equal(t, cfg.Session.GameOverText, hud(t, e).GameOverText)
}

func TestSessionClock(t *testing.T) {
	e := newHunt(t, emptyLevel())
	step(e, 0.25, 4)
	assert.InDelta(t, 1.0, sessionOf(t, e).Elapsed, 1e-9)

	SetPaused(e, true, "test")
	step(e, 0.25, 4)
	assert.InDelta(t, 1.0, sessionOf(t, e).Elapsed, 1e-9)
	assert.Equal(t, "test", GetOrCreatePause(e).Reason)

	SetPaused(e, false, "")
	step(e, 0.25, 1)
	assert.InDelta(t, 1.25, sessionOf(t, e).Elapsed, 1e-9)
}
