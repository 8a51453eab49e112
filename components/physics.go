package components

import (
	"github.com/automoto/kamatayan/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's place in the world.
type TransformData struct {
	Position gamemath.Vec3
	Facing   gamemath.Vec3
	Height   float64
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is the displacement applied on the last tick, in units/s.
type VelocityData struct {
	X, Z float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
