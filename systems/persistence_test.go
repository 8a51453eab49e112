package systems

import (
	"testing"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRun(t *testing.T) {
	first := MergeRun(nil, components.SessionData{Elapsed: 42, Restarts: 2}, "scary")
	assert.Equal(t, RunRecord{
		Runs:          1,
		BestSurvival:  42,
		LastSurvival:  42,
		TotalRestarts: 2,
		LastPreset:    "scary",
	}, first)

	second := MergeRun(&first, components.SessionData{Elapsed: 10, Restarts: 1}, "eerie")
	assert.Equal(t, 2, second.Runs)
	assert.Equal(t, 42.0, second.BestSurvival)
	assert.Equal(t, 10.0, second.LastSurvival)
	assert.Equal(t, 3, second.TotalRestarts)
	assert.Equal(t, "eerie", second.LastPreset)
	assert.Equal(t, 1, first.Runs, "previous record is not modified")
}

func TestRunRecordWithoutStore(t *testing.T) {
	record, err := LoadRunRecord()
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, SaveRunRecord(&RunRecord{Runs: 1}))
}

func TestRecordRunOnce(t *testing.T) {
	e := newHunt(t, emptyLevel())
	RecordRun(e)
	assert.True(t, sessionOf(t, e).Recorded)
	RecordRun(e)
	assert.True(t, sessionOf(t, e).Recorded)
}

func TestRestorePreset(t *testing.T) {
	e := newHunt(t, emptyLevel())

	RestorePreset(e, nil)
	assert.Equal(t, cfg.PresetNormal, lighting(e).Preset)

	RestorePreset(e, &RunRecord{Runs: 2, LastPreset: "dusk"})
	assert.Equal(t, cfg.PresetNormal, lighting(e).Preset, "unknown presets are ignored")

	RestorePreset(e, &RunRecord{Runs: 2, LastPreset: cfg.PresetScary})
	assert.Equal(t, cfg.PresetScary, lighting(e).Preset)
	assert.Equal(t, 0.3, lighting(e).Intensity)
}
