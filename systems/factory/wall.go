package factory

import (
	"github.com/automoto/kamatayan/archetypes"
	"github.com/automoto/kamatayan/components"
	"github.com/automoto/kamatayan/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid block. x/z are the world X/Z of its corner.
func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	pw, pd := ToSpace(w), ToSpace(d)
	obj := resolv.NewObject(ToSpace(x), ToSpace(z), pw, pd, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, pw, pd))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
