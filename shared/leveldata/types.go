// Package leveldata provides TMX level parsing shared between the simulation
// runner and the server. Levels are top-down: Tiled's X/Y map onto the
// world's X/Z plane and every position is converted to world units.
package leveldata

import (
	"errors"

	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

var (
	// ErrNoLevels is returned when a directory holds no .tmx files.
	ErrNoLevels = errors.New("no levels found")
	// ErrUnknownSearchPath is returned when an enemy spawn names a search
	// path the level does not define.
	ErrUnknownSearchPath = errors.New("unknown search path")
)

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Name         string
	Width        float64 // world units along X
	Depth        float64 // world units along Z
	Walls        []Wall
	PlayerSpawns []math.Vec2
	EnemySpawns  []EnemySpawn
	SearchPaths  map[string]SearchPath
}

// Wall is an axis-aligned solid rectangle on the XZ plane.
type Wall struct {
	X, Z, Width, Depth float64
}

// EnemySpawn is a place an enemy may appear.
type EnemySpawn struct {
	Position   math.Vec2
	SearchPath string // empty means the enemy stands guard at its spawn
}

// SearchPath is a named loop of search points.
type SearchPath struct {
	Name   string
	Points []math.Vec2
	Height float64
}

// World converts an XZ point to a world position at height y.
func World(p math.Vec2, y float64) gamemath.Vec3 {
	return gamemath.V3(p.X, y, p.Y)
}

// WorldPoints returns the path as world positions.
func (p SearchPath) WorldPoints() []gamemath.Vec3 {
	out := make([]gamemath.Vec3, len(p.Points))
	for i, pt := range p.Points {
		out[i] = World(pt, p.Height)
	}
	return out
}

// SearchPointsFor resolves the search loop of a spawn.
func (l *Level) SearchPointsFor(spawn EnemySpawn) ([]gamemath.Vec3, error) {
	if spawn.SearchPath == "" {
		return nil, nil
	}
	path, ok := l.SearchPaths[spawn.SearchPath]
	if !ok {
		return nil, ErrUnknownSearchPath
	}
	return path.WorldPoints(), nil
}

// PlayerSpawn returns the first player spawn, or the level center when the
// map defines none.
func (l *Level) PlayerSpawn() gamemath.Vec3 {
	if len(l.PlayerSpawns) == 0 {
		return gamemath.V3(l.Width/2, 0, l.Depth/2)
	}
	return World(l.PlayerSpawns[0], 0)
}
