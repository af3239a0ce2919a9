package kerbee

import "github.com/EngoEngine/ecs"

// MovementSystem moves the player from the held keys and snaps the reticle around it.
type MovementSystem struct {
	Res *Resources
}

func (*MovementSystem) Priority() int          { return 90 }
func (*MovementSystem) Remove(ecs.BasicEntity) {}
func (ms *MovementSystem) Update(dt float32) {
	p, r := ms.Res.player, ms.Res.reticle
	if p == nil {
		return
	}
	cfg := ms.Res.Config

	p.Move(ms.Res.Input, dt, cfg.Player.Sprint, cfg.PlayerBounds())
	if r != nil {
		r.Follow(ms.Res.Input, p.Translation, cfg.Reticle.Offset)
	}
}
