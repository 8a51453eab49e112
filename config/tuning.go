package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file parses but holds values
// the simulation cannot run with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the subset of configuration a YAML file may override.
type Tuning struct {
	Enemy    EnemyConfig    `yaml:"enemy"`
	Player   PlayerConfig   `yaml:"player"`
	Lighting LightingConfig `yaml:"lighting"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
	Session  SessionConfig  `yaml:"session"`
}

// Current snapshots the package-level configuration.
func Current() Tuning {
	return Tuning{
		Enemy:    Enemy,
		Player:   Player,
		Lighting: Lighting,
		Spawner:  Spawner,
		Session:  Session,
	}
}

// Apply replaces the package-level configuration. Callers must only do this
// from the goroutine that owns the simulation.
func Apply(t Tuning) {
	Enemy = t.Enemy
	Player = t.Player
	Lighting = t.Lighting
	Spawner = t.Spawner
	Session = t.Session
}

// ParseTuning decodes data on top of base. Keys absent from data keep the
// base value; unknown keys are rejected.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning file layered over the current configuration.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, Current())
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning: %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the values the simulation depends on.
func (t Tuning) Validate() error {
	e := t.Enemy
	switch {
	case e.SearchRange < 0, e.AttackRange < 0:
		return fmt.Errorf("%w: enemy ranges must not be negative", ErrInvalidTuning)
	case e.MoveSpeed < 0, e.SearchSpeed < 0:
		return fmt.Errorf("%w: enemy speeds must not be negative", ErrInvalidTuning)
	case e.WaitAtPoint < 0:
		return fmt.Errorf("%w: enemy waitAtPoint must not be negative", ErrInvalidTuning)
	}

	p := t.Player
	switch {
	case p.MaxLives <= 0:
		return fmt.Errorf("%w: player maxLives must be positive", ErrInvalidTuning)
	case p.MaxSprintTime <= 0, p.SprintRechargeTime < 0:
		return fmt.Errorf("%w: player stamina times out of range", ErrInvalidTuning)
	}

	if t.Spawner.MaxEnemies < 0 || t.Spawner.SpawnDelay < 0 {
		return fmt.Errorf("%w: spawner values must not be negative", ErrInvalidTuning)
	}
	if t.Lighting.TransitionDuration < 0 {
		return fmt.Errorf("%w: lighting transitionDuration must not be negative", ErrInvalidTuning)
	}

	for _, name := range []string{t.Lighting.InitialPreset, t.Lighting.CalmPreset, t.Lighting.ThreatPreset} {
		if _, err := t.Lighting.Preset(name); err != nil {
			return err
		}
	}
	return nil
}
