package factory

import (
	"math"

	"github.com/automoto/kamatayan/archetypes"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The collision space works in level pixels; resolv's cell maths assumes
// whole pixels. Everything outside it is in world units.

// ToSpace converts world units to collision space pixels.
func ToSpace(units float64) float64 {
	return units * spaceScale()
}

// FromSpace converts collision space pixels to world units.
func FromSpace(px float64) float64 {
	return px / spaceScale()
}

func spaceScale() float64 {
	if cfg.Level.PixelsPerUnit <= 0 {
		return 1
	}
	return cfg.Level.PixelsPerUnit
}

// CreateSpace creates the collision space for a width x depth area in world
// units, with square cells of cellSize units.
func CreateSpace(ecs *ecs.ECS, width, depth, cellSize float64) *donburi.Entry {
	if cellSize <= 0 {
		cellSize = 1
	}
	cell := int(math.Max(1, math.Round(ToSpace(cellSize))))

	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(math.Ceil(ToSpace(width))),
		int(math.Ceil(ToSpace(depth))),
		cell, cell,
	)
	components.Space.Set(space, spaceData)
	return space
}
