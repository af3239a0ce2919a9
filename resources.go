package kerbee

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Resources is the state shared between systems. Each field has a single writer per frame.
type Resources struct {
	Config   Config
	Input    *InputState
	Commands *Commands
	Events   *EventQueue
	Rand     *rand.Rand

	// Attack is the strategy the fire system uses. Written by the powerup system.
	Attack Attack
	// MousePos is the cursor in world space offset by the player. Written by the mouse system.
	MousePos mgl32.Vec3
	// MouseDelta accumulates cursor movement. Written by the mouse system.
	MouseDelta mgl32.Vec2
	// HP is the player's remaining health. Written by the health system.
	HP int

	player  *Player
	reticle *Reticle
}
