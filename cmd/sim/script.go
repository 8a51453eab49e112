package main

import (
	"math"

	"github.com/automoto/kamatayan/components"
	"github.com/automoto/kamatayan/shared/gamemath"
)

// leg is one straight stretch of the scripted walk.
type leg struct {
	moveX, moveZ float64
	seconds      float64
	sprint       bool
	tapCrouch    bool // Press crouch briefly as the leg starts
}

const tapSeconds = 0.1

// script walks the player round a square from the spawn: a sprint out, a
// walk across, a crouched walk back and a walk home.
type script struct {
	legs  []leg
	total float64
}

func newScript(spawn gamemath.Vec3) *script {
	// Head into the level, whichever corner the spawn is in
	dirX, dirZ := 1.0, 1.0
	if spawn.X > 20 {
		dirX = -1
	}
	if spawn.Z > 20 {
		dirZ = -1
	}

	s := &script{legs: []leg{
		{moveX: dirX, seconds: 1.5, sprint: true},
		{moveZ: dirZ, seconds: 3},
		{moveX: -dirX, seconds: 4, tapCrouch: true},
		{moveZ: -dirZ, seconds: 3, tapCrouch: true},
	}}
	for _, l := range s.legs {
		s.total += l.seconds
	}
	return s
}

// input returns the intent at time t, looping over the legs.
func (s *script) input(t float64) components.PlayerInputData {
	if s.total <= 0 {
		return components.PlayerInputData{}
	}
	t = math.Mod(t, s.total)
	for _, l := range s.legs {
		if t < l.seconds {
			return components.PlayerInputData{
				MoveX:  l.moveX,
				MoveZ:  l.moveZ,
				Sprint: l.sprint,
				Crouch: l.tapCrouch && t < tapSeconds,
			}
		}
		t -= l.seconds
	}
	return components.PlayerInputData{}
}
