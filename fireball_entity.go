package kerbee

import (
	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// Fireball keeps the origin and target it was fired with. Its direction is fixed at creation.
type Fireball struct {
	ecs.BasicEntity
	Transform
	Hitbox
	Sprite
	Collider

	Origin    mgl32.Vec3
	Target    mgl32.Vec3
	Direction mgl32.Vec3
}

func NewFireball(cfg Config, shot Shot) *Fireball {
	return &Fireball{
		BasicEntity: ecs.NewBasic(),
		Transform:   NewTransform(shot.Origin),
		Hitbox:      Hitbox{Size: mgl32.Vec2{cfg.Fireball.Size, cfg.Fireball.Size}},
		Sprite:      Sprite{Texture: cfg.Assets.Fireball, Frames: 1, Tint: white},
		Collider:    ColliderProjectile,
		Origin:      shot.Origin,
		Target:      shot.Target,
		Direction:   normalize(shot.Target.Sub(shot.Origin)),
	}
}

// Update spins the fireball and moves it along its direction.
func (f *Fireball) Update(dt, speed, spin float32) {
	f.Rotate(mgl32.QuatRotate(spin, zAxis))
	f.Translation = f.Translation.Add(f.Direction.Mul(speed * dt))
}

// OutOfBounds reports whether the fireball has left the playfield plus margin on either axis.
func (f *Fireball) OutOfBounds(half mgl32.Vec2, margin float32) bool {
	p := f.Translation
	return p[0] >= half[0]+margin || p[0] <= -half[0]-margin ||
		p[1] >= half[1]+margin || p[1] <= -half[1]-margin
}
