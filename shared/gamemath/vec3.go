// Package gamemath holds the small amount of vector math shared by the
// simulation, the server and the tests. World space is Y-up; the level
// floor is the XZ plane.
package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// epsilon below which a direction is treated as zero length.
const epsilon = 1e-9

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Forward is the default facing of a freshly created entity.
var Forward = Vec3{Z: 1}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func fromVector(v vector.Vector) Vec3 {
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Vector converts to a kvartborg vector for the heavier operations.
func (v Vec3) Vector() vector.Vector {
	return vector.Vector{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Length() float64 {
	return v.Vector().Magnitude()
}

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v has no meaningful length.
func (v Vec3) Normalized() Vec3 {
	if v.Length() < epsilon {
		return Vec3{}
	}
	return fromVector(v.Vector().Unit())
}

// IsZero reports whether v has no meaningful length.
func (v Vec3) IsZero() bool {
	return v.Length() < epsilon
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Vec3) float64 {
	return b.Sub(a).Length()
}

// Direction returns the unit vector pointing from a to b.
func Direction(a, b Vec3) Vec3 {
	return b.Sub(a).Normalized()
}

// StepToward moves from by at most maxStep along the straight line to to.
// The step is capped at the remaining distance so the result never
// overshoots the destination.
func StepToward(from, to Vec3, maxStep float64) Vec3 {
	if maxStep <= 0 {
		return from
	}
	delta := to.Sub(from)
	dist := delta.Length()
	if dist <= maxStep || dist < epsilon {
		return to
	}
	return from.Add(delta.Scale(maxStep / dist))
}

// LookAt returns the facing from eye toward target. If the two points
// coincide the previous facing is kept.
func LookAt(eye, target, previous Vec3) Vec3 {
	dir := Direction(eye, target)
	if dir.IsZero() {
		return previous
	}
	return dir
}

// Yaw is the heading of a facing vector around the Y axis in radians,
// zero along +Z and increasing toward +X.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}
