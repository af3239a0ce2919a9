package kerbee

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

type Enemy struct {
	ecs.BasicEntity
	Transform
	Hitbox
	Sprite
	Collider

	Speed float32
}

// NewEnemy creates an enemy on top of the spawner at pos.
func NewEnemy(cfg Config, pos mgl32.Vec3) *Enemy {
	t := NewTransform(pos)
	t.Scale = mgl32.Vec3{cfg.Enemy.Scale, cfg.Enemy.Scale, cfg.Enemy.Scale}
	size := cfg.Enemy.Size * cfg.Enemy.Scale
	return &Enemy{
		BasicEntity: ecs.NewBasic(),
		Transform:   t,
		Hitbox:      Hitbox{Size: mgl32.Vec2{size, size}},
		Sprite:      Sprite{Texture: cfg.Assets.Enemy, Frames: 1, Tint: aliceBlue},
		Collider:    ColliderEnemy,
		Speed:       cfg.Enemy.Speed,
	}
}

// Chase moves the enemy toward target. An enemy sitting on the target stays put.
func (e *Enemy) Chase(target mgl32.Vec3, dt float32) {
	dir := normalize(target.Sub(e.Translation))
	e.Translation[0] += dir[0] * e.Speed * dt
	e.Translation[1] += dir[1] * e.Speed * dt
}

// Spawner is a fixed solid that produces enemies on its own timer.
type Spawner struct {
	ecs.BasicEntity
	Transform
	Hitbox
	Sprite
	Collider

	EnemyTimer *Timer
	AnimTimer  *Timer
}

func NewSpawner(cfg Config, pos mgl32.Vec3) *Spawner {
	t := NewTransform(pos)
	t.Scale = mgl32.Vec3{cfg.Spawner.Scale, cfg.Spawner.Scale, cfg.Spawner.Scale}
	size := cfg.Spawner.Size * cfg.Spawner.Scale
	return &Spawner{
		BasicEntity: ecs.NewBasic(),
		Transform:   t,
		Hitbox:      Hitbox{Size: mgl32.Vec2{size, size}},
		Sprite:      Sprite{Texture: cfg.Assets.Spawner, Frames: cfg.Spawner.Frames, Tint: white},
		Collider:    ColliderSolid,
		EnemyTimer:  NewTimer(cfg.Spawner.Interval, true),
		AnimTimer:   NewTimer(cfg.Spawner.AnimInterval, true),
	}
}

// Harder shortens the spawn interval by step unless it is already at or below min.
// It reports whether the interval changed.
func (s *Spawner) Harder(step, min time.Duration) bool {
	d := s.EnemyTimer.Duration()
	if d <= min {
		return false
	}
	d -= step
	if d < min {
		d = min
	}
	s.EnemyTimer.SetDuration(d)
	return true
}
