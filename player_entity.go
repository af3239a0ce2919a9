package kerbee

import (
	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

type Player struct {
	ecs.BasicEntity
	Transform
	Hitbox
	Sprite

	Speed float32
	// ModX and ModY bias the direction the player moves in, on top of the keys held.
	ModX float32
	ModY float32
}

func NewPlayer(cfg Config) *Player {
	size := cfg.Player.HalfSize * 2
	return &Player{
		BasicEntity: ecs.NewBasic(),
		Transform:   NewTransform(mgl32.Vec3{}),
		Hitbox:      Hitbox{Size: mgl32.Vec2{size, size}},
		Sprite:      Sprite{Texture: cfg.Assets.Player, Frames: 1, Tint: white},
		Speed:       cfg.Player.Speed,
	}
}

// Move integrates one frame of movement and keeps the player inside bounds.
// Diagonal input is not normalized, so diagonals are faster than straight lines.
func (p *Player) Move(in *InputState, dt float32, sprint float32, bounds mgl32.Vec2) {
	var xDir, yDir float32
	mult := float32(1)

	if in.Pressed(KeyA) {
		xDir -= 1
	}
	if in.Pressed(KeyD) {
		xDir += 1
	}
	if in.Pressed(KeyW) {
		yDir += 1
	}
	if in.Pressed(KeyS) {
		yDir -= 1
	}
	if in.Pressed(KeyShift) {
		mult = sprint
	}

	pos := p.Translation
	pos[0] += dt * p.Speed * (xDir + p.ModX) * mult
	pos[1] += dt * p.Speed * (yDir + p.ModY) * mult
	p.Translation = clampToBounds(pos, bounds)
}

type Reticle struct {
	ecs.BasicEntity
	Transform
	Hitbox
	Sprite
}

func NewReticle(cfg Config) *Reticle {
	return &Reticle{
		BasicEntity: ecs.NewBasic(),
		Transform:   NewTransform(mgl32.Vec3{cfg.Reticle.Start[0], cfg.Reticle.Start[1], 0}),
		Hitbox:      Hitbox{Size: mgl32.Vec2{cfg.Reticle.Size, cfg.Reticle.Size}},
		Sprite:      Sprite{Texture: cfg.Assets.Reticle, Frames: 1, Tint: white},
	}
}

// Follow snaps the reticle to one of the four offsets around the player, or onto the
// player when no aim key is held on an axis.
func (r *Reticle) Follow(in *InputState, player mgl32.Vec3, offset float32) {
	var pos mgl32.Vec3

	if in.Pressed(KeyUp) {
		pos[1] = offset
	} else if in.Pressed(KeyDown) {
		pos[1] = -offset
	}

	if in.Pressed(KeyLeft) {
		pos[0] = -offset
	} else if in.Pressed(KeyRight) {
		pos[0] = offset
	}

	pos[0] += player[0]
	pos[1] += player[1]
	pos[2] = r.Translation[2]
	r.Translation = pos
}
