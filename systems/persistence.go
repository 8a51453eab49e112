package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// RunRecord is the run history stored on disk.
type RunRecord struct {
	Runs          int     `json:"runs"`
	BestSurvival  float64 `json:"bestSurvival"`  // Seconds
	LastSurvival  float64 `json:"lastSurvival"`  // Seconds
	TotalRestarts int     `json:"totalRestarts"`
	LastPreset    string  `json:"lastPreset"`
}

const runRecordKey = "runs"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the run history store. Failure only disables
// recording.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Session.PersistenceAppKey,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRunRecord returns the stored run history, or nil when there is none.
func LoadRunRecord() (*RunRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(runRecordKey)
	if err != nil {
		log.Printf("Warning: Could not load run record: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var record RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse run record: %v", err)
		return nil, err
	}
	return &record, nil
}

func SaveRunRecord(r *RunRecord) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize run record: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(runRecordKey, data); err != nil {
		log.Printf("Warning: Could not save run record: %v", err)
		return err
	}
	return nil
}

// MergeRun folds a finished run into the history.
func MergeRun(prev *RunRecord, s components.SessionData, preset string) RunRecord {
	var r RunRecord
	if prev != nil {
		r = *prev
	}
	r.Runs++
	r.LastSurvival = s.Elapsed
	r.BestSurvival = max(r.BestSurvival, s.Elapsed)
	r.TotalRestarts += s.Restarts
	r.LastPreset = preset
	return r
}

// RecordRun stores the current session once, when the run ends.
func RecordRun(ecs *ecs.ECS) {
	s := session(ecs)
	if s == nil || s.Recorded {
		return
	}
	s.Recorded = true

	preset := ""
	if l := lighting(ecs); l != nil {
		preset = lightingTarget(l)
	}

	prev, _ := LoadRunRecord()
	record := MergeRun(prev, *s, preset)
	log.Printf("Run over after %.1fs (best %.1fs over %d runs)", s.Elapsed, record.BestSurvival, record.Runs)
	_ = SaveRunRecord(&record)
}

// RestorePreset starts the light on the preset the last run ended with.
func RestorePreset(ecs *ecs.ECS, r *RunRecord) {
	if r == nil || r.LastPreset == "" {
		return
	}
	if err := SetLightingPreset(ecs, r.LastPreset); err != nil {
		log.Printf("Warning: Could not restore lighting: %v", err)
	}
}
