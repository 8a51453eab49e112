package config

// EnemyConfig contains the hunting enemy's tuning values
type EnemyConfig struct {
	SearchRange  float64 `yaml:"searchRange"`  // Distance at which Kamatayan sees the player
	AttackRange  float64 `yaml:"attackRange"`  // Distance at which Kamatayan strikes
	MoveSpeed    float64 `yaml:"moveSpeed"`    // Units/s while hunting
	SearchSpeed  float64 `yaml:"searchSpeed"`  // Units/s while searching
	WaitAtPoint  float64 `yaml:"waitAtPoint"`  // Seconds spent at each search point
	AttackDamage float64 `yaml:"attackDamage"` // Amount per strike
	FieldOfView  float64 `yaml:"fieldOfView"`  // Degrees, carried but unused by detection

	// Collision footprint on the XZ plane
	CollisionSize float64 `yaml:"collisionSize"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (units/s)
	WalkSpeed   float64 `yaml:"walkSpeed"`
	SprintSpeed float64 `yaml:"sprintSpeed"`
	CrouchSpeed float64 `yaml:"crouchSpeed"`

	// Crouch
	StandingHeight float64 `yaml:"standingHeight"`
	CrouchHeight   float64 `yaml:"crouchHeight"`

	// Sprint stamina (seconds)
	MaxSprintTime      float64 `yaml:"maxSprintTime"`
	SprintRechargeTime float64 `yaml:"sprintRechargeTime"`

	// Lives
	MaxLives int `yaml:"maxLives"`

	// Collision footprint on the XZ plane
	CollisionSize float64 `yaml:"collisionSize"`
}

// SpawnerConfig controls how many enemies a level keeps alive
type SpawnerConfig struct {
	MaxEnemies int     `yaml:"maxEnemies"`
	SpawnDelay float64 `yaml:"spawnDelay"` // Seconds between top-up spawns
}

// SessionConfig contains run-level timing
type SessionConfig struct {
	GameOverDelay     float64 `yaml:"gameOverDelay"`     // Seconds before returning to the menu
	DamageFlashTime   float64 `yaml:"damageFlashTime"`   // Seconds the HUD damage flash stays up
	GameOverText      string  `yaml:"gameOverText"`
	PersistenceAppKey string  `yaml:"persistenceAppKey"` // gdata application name
}

// ServerConfig contains dedicated server defaults
type ServerConfig struct {
	Port          uint
	TickRate      int
	MaxSpectators int
}

// SimConfig holds defaults for the headless simulation runner
type SimConfig struct {
	Ticks     int
	DeltaTime float64
	Seed      int64
}

// LevelConfig controls how Tiled maps become world space
type LevelConfig struct {
	PixelsPerUnit float64 // Tiled pixels per world unit
	CellSize      float64 // resolv cell size in world units
	Default       string  // Level loaded when none is named
}

// Global configuration instances
var Enemy EnemyConfig
var Player PlayerConfig
var Spawner SpawnerConfig
var Session SessionConfig
var Server ServerConfig
var Sim SimConfig
var Level LevelConfig

func init() {
	// Enemy Config
	Enemy = EnemyConfig{
		SearchRange:   15.0,
		AttackRange:   2.0,
		MoveSpeed:     4.0,
		SearchSpeed:   2.0,
		WaitAtPoint:   3.0,
		AttackDamage:  10.0,
		FieldOfView:   120.0,
		CollisionSize: 1.0,
	}

	// Player Config
	Player = PlayerConfig{
		WalkSpeed:   5.0,
		SprintSpeed: 10.0,
		CrouchSpeed: 2.0,

		StandingHeight: 2.0,
		CrouchHeight:   1.0,

		MaxSprintTime:      3.0,
		SprintRechargeTime: 3.0,

		MaxLives: 3,

		CollisionSize: 1.0,
	}

	Spawner = SpawnerConfig{
		MaxEnemies: 5,
		SpawnDelay: 5.0,
	}

	Session = SessionConfig{
		GameOverDelay:     2.0,
		DamageFlashTime:   0.2,
		GameOverText:      "GAME OVER\nYou have been defeated!",
		PersistenceAppKey: "kamatayan",
	}

	Server = ServerConfig{
		Port:          7373,
		TickRate:      30,
		MaxSpectators: 8,
	}

	Sim = SimConfig{
		Ticks:     1800, // 30s at 60 ticks/s
		DeltaTime: 1.0 / 60.0,
		Seed:      1,
	}

	Level = LevelConfig{
		PixelsPerUnit: 8.0,
		CellSize:      2,
		Default:       "crypt",
	}
}
