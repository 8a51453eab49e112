package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

// NetTransformData is a world position plus the yaw the entity faces, in
// radians around +Y.
type NetTransformData struct {
	X, Y, Z float64
	Yaw     float64
	Height  float64
}

var NetTransform = donburi.NewComponentType[NetTransformData]()

// LerpNetTransform interpolates between two transforms, turning the short
// way round.
func LerpNetTransform(from, to NetTransformData, t float64) *NetTransformData {
	return &NetTransformData{
		X:      from.X + (to.X-from.X)*t,
		Y:      from.Y + (to.Y-from.Y)*t,
		Z:      from.Z + (to.Z-from.Z)*t,
		Yaw:    from.Yaw + shortestArc(from.Yaw, to.Yaw)*t,
		Height: from.Height + (to.Height-from.Height)*t,
	}
}

func shortestArc(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
