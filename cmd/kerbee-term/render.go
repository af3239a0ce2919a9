package main

import (
	"fmt"

	"github.com/ScottBrooks/kerbee"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	playerStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	reticleStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	fireballStyle = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	enemyStyle    = tcell.StyleDefault.Foreground(tcell.ColorAliceBlue)
	spawnerStyle  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	powerupStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	heartStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)

	spawnerFrames = []rune{'#', '%', '&'}
	heartFrames   = []rune{'♥', '♡'}
)

// Draw renders the playfield below a one line HUD.
func (t *Terminal) Draw() {
	s := t.Screen
	s.Clear()

	t.Game.Each(func(r kerbee.Renderable) {
		if h, ok := r.(*kerbee.Heart); ok {
			s.SetContent(2+h.Index*2, 0, frame(heartFrames, h.Frame), nil, heartStyle)
			return
		}
		glyph, style := glyphFor(r)
		x, y := t.toCell(r.GetTransform().Translation)
		s.SetContent(x, y, glyph, nil, style)
	})

	status := fmt.Sprintf("attack: %s", t.Game.Attack().Name())
	switch {
	case t.Game.HP() <= 0:
		status = "GAME OVER  esc to quit"
	case t.paused:
		status += "  PAUSED"
	}
	drawText(s, 10, 0, hudStyle, status)
	s.Show()
}

func glyphFor(r kerbee.Renderable) (rune, tcell.Style) {
	switch e := r.(type) {
	case *kerbee.Player:
		return '@', playerStyle
	case *kerbee.Reticle:
		return '+', reticleStyle
	case *kerbee.Fireball:
		return '*', fireballStyle
	case *kerbee.Enemy:
		return 'e', enemyStyle
	case *kerbee.Spawner:
		return frame(spawnerFrames, e.Frame), spawnerStyle
	case *kerbee.Powerup:
		return 'P', powerupStyle
	}
	return '?', tcell.StyleDefault
}

func frame(frames []rune, i int) rune {
	if i < 0 || i >= len(frames) {
		return frames[0]
	}
	return frames[i]
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// toCell maps a game position, centered with y up, onto the screen below the HUD line.
func (t *Terminal) toCell(p mgl32.Vec3) (int, int) {
	w, h := t.Screen.Size()
	half := t.Game.Res.Config.HalfExtent()
	rows := h - 1

	x := int((p[0] + half[0]) / (2 * half[0]) * float32(w))
	y := int((half[1]-p[1])/(2*half[1])*float32(rows)) + 1
	return clampInt(x, 0, w-1), clampInt(y, 1, h-1)
}

// toWindow maps a screen cell back into window pixels, origin bottom left.
func (t *Terminal) toWindow(x, y int) mgl32.Vec2 {
	w, h := t.Screen.Size()
	win := t.Game.Input().Window
	rows := h - 1
	if w <= 0 || rows <= 0 {
		return mgl32.Vec2{}
	}
	px := (float32(x) + 0.5) / float32(w) * win[0]
	py := (float32(y-1) + 0.5) / float32(rows) * win[1]
	return mgl32.Vec2{px, win[1] - py}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
