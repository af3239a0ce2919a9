package kerbee

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// Collider decides how an entity reacts to a collision. It says nothing about shape.
type Collider int

const (
	ColliderNone Collider = iota
	ColliderSolid
	ColliderEnemy
	ColliderProjectile
)

func (c Collider) String() string {
	switch c {
	case ColliderSolid:
		return "Solid"
	case ColliderEnemy:
		return "Enemy"
	case ColliderProjectile:
		return "Projectile"
	}
	return "None"
}

// Tag returns the collider tag. It is promoted onto every entity embedding a Collider.
func (c Collider) Tag() Collider { return c }

type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

func NewTransform(pos mgl32.Vec3) Transform {
	return Transform{Translation: pos, Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

func (t *Transform) GetTransform() *Transform { return t }

// Rotate applies rot on top of the current rotation.
func (t *Transform) Rotate(rot mgl32.Quat) {
	t.Rotation = rot.Mul(t.Rotation).Normalize()
}

// Angle is the rotation about z in radians.
func (t *Transform) Angle() float32 {
	q := t.Rotation
	return float32(2 * math.Atan2(float64(q.V[2]), float64(q.W)))
}

// Hitbox is the full width and height used for AABB tests.
type Hitbox struct {
	Size mgl32.Vec2
}

func (h *Hitbox) GetHitbox() *Hitbox { return h }

// Sprite is an opaque asset handle plus the frame of its sheet to show.
type Sprite struct {
	Texture string
	Frame   int
	Frames  int
	Tint    color.RGBA
}

func (s *Sprite) GetSprite() *Sprite { return s }

// Advance moves to the next frame of the sheet, wrapping around.
func (s *Sprite) Advance() {
	if s.Frames <= 0 {
		return
	}
	s.Frame = (s.Frame + 1) % s.Frames
}

type Renderable interface {
	GetBasicEntity() *ecs.BasicEntity
	GetTransform() *Transform
	GetSprite() *Sprite
}

type Collidable interface {
	GetBasicEntity() *ecs.BasicEntity
	GetTransform() *Transform
	GetHitbox() *Hitbox
	Tag() Collider
}

var (
	white      = color.RGBA{255, 255, 255, 255}
	aliceBlue  = color.RGBA{240, 248, 255, 255}
	powerupRed = color.RGBA{255, 0, 0, 255}
)
