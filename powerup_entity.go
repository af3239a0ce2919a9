package kerbee

import (
	"math/rand"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// Powerup carries an attack that replaces the player's current one on pickup.
type Powerup struct {
	ecs.BasicEntity
	Transform
	Hitbox
	Sprite

	Attack Attack
}

func NewPowerup(cfg Config, pos mgl32.Vec3, attack Attack) *Powerup {
	t := NewTransform(pos)
	t.Scale = mgl32.Vec3{0.5, 0.5, 0.5}
	return &Powerup{
		BasicEntity: ecs.NewBasic(),
		Transform:   t,
		Hitbox:      Hitbox{Size: mgl32.Vec2{cfg.Powerup.Size, cfg.Powerup.Size}},
		Sprite:      Sprite{Texture: cfg.Assets.Enemy, Frames: 1, Tint: powerupRed},
		Attack:      attack,
	}
}

// randomPoint picks a point uniformly inside the playfield.
func randomPoint(rng *rand.Rand, half mgl32.Vec2) mgl32.Vec3 {
	x := (rng.Float32()*2 - 1) * half[0]
	y := (rng.Float32()*2 - 1) * half[1]
	return mgl32.Vec3{x, y, 0}
}

// Heart is one HUD health icon. Frame 0 is full, frame 1 is empty.
type Heart struct {
	ecs.BasicEntity
	Transform
	Sprite

	Index int
}

func NewHeart(cfg Config, i int) *Heart {
	half := cfg.HalfExtent()
	t := NewTransform(mgl32.Vec3{
		-half[0] + cfg.Hearts.Spacing*float32(i) + cfg.Hearts.Inset,
		half[1] - cfg.Hearts.Inset,
		0,
	})
	t.Scale = mgl32.Vec3{cfg.Hearts.Scale, cfg.Hearts.Scale, cfg.Hearts.Scale}
	return &Heart{
		BasicEntity: ecs.NewBasic(),
		Transform:   t,
		Sprite:      Sprite{Texture: cfg.Assets.Heart, Frames: 2, Tint: white},
		Index:       i,
	}
}
