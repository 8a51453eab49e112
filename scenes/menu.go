package scenes

import (
	"log"
	"sync"

	"github.com/automoto/kamatayan/systems"
)

// MenuScene is where a finished hunt lands. It loads the run history and
// waits for the owner to start another hunt.
type MenuScene struct {
	sceneChanger SceneChanger
	once         sync.Once
	record       *systems.RunRecord
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update(dt float64) {
	ms.once.Do(ms.configure)
}

func (ms *MenuScene) configure() {
	record, err := systems.LoadRunRecord()
	if err != nil {
		return
	}
	ms.record = record
	if record != nil {
		log.Printf("Runs: %d, best survival %.1fs", record.Runs, record.BestSurvival)
	}
}

// Record returns the stored run history, nil when there is none.
func (ms *MenuScene) Record() *systems.RunRecord {
	ms.once.Do(ms.configure)
	return ms.record
}

// Start begins a new hunt.
func (ms *MenuScene) Start(opts HuntOptions) {
	ms.sceneChanger.ChangeScene(NewHuntScene(ms.sceneChanger, opts))
}
