package kerbee

import "github.com/EngoEngine/ecs"

// MouseSystem turns cursor events into the world space mouse position.
type MouseSystem struct {
	Res *Resources
}

func (*MouseSystem) Priority() int          { return 100 }
func (*MouseSystem) Remove(ecs.BasicEntity) {}
func (ms *MouseSystem) Update(dt float32) {
	events := ms.Res.Input.CursorEvents()
	if len(events) == 0 || ms.Res.player == nil {
		return
	}

	window := ms.Res.Input.Window
	start := ms.Res.MousePos
	player := ms.Res.player.Translation

	for _, ev := range events {
		p := ev.Position.Sub(window.Mul(0.5))

		ms.Res.MousePos[0] = p[0] + player[0]
		ms.Res.MousePos[1] = p[1] + player[1]

		res := ms.Res.MousePos.Sub(start)
		ms.Res.MouseDelta = ms.Res.MouseDelta.Add(res.Vec2())
	}
}
