package kerbee

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := DefaultConfig()
	bounds := cfg.PlayerBounds()
	rng := rand.New(rand.NewSource(7))
	keys := []Key{KeyW, KeyA, KeyS, KeyD, KeyShift}

	for i := 0; i < 50; i++ {
		p := NewPlayer(cfg)
		p.Translation = randomPoint(rng, cfg.HalfExtent())
		in := NewInputState(mgl32.Vec2{cfg.Window.Width, cfg.Window.Height})
		for _, k := range keys {
			in.Set(k, rng.Intn(2) == 0)
		}
		dt := rng.Float32() * 5

		t.Run(fmt.Sprintf("step %d dt %.2f", i, dt), func(t *testing.T) {
			p.Move(in, dt, cfg.Player.Sprint, bounds)
			pos := p.Translation
			if pos[0] < -bounds[0] || pos[0] > bounds[0] || pos[1] < -bounds[1] || pos[1] > bounds[1] {
				t.Errorf("player at %v outside %v", pos, bounds)
			}
		})
	}
}

func TestPlayerMove(t *testing.T) {
	cfg := DefaultConfig()

	var tests = []struct {
		keys []Key
		want mgl32.Vec3
	}{
		{nil, mgl32.Vec3{0, 0, 0}},
		{[]Key{KeyD}, mgl32.Vec3{20, 0, 0}},
		{[]Key{KeyW}, mgl32.Vec3{0, 20, 0}},
		{[]Key{KeyW, KeyS}, mgl32.Vec3{0, 0, 0}},
		{[]Key{KeyW, KeyD}, mgl32.Vec3{20, 20, 0}},
		{[]Key{KeyA, KeyS, KeyShift}, mgl32.Vec3{-30, -30, 0}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v should move to %v", tt.keys, tt.want), func(t *testing.T) {
			p := NewPlayer(cfg)
			in := NewInputState(mgl32.Vec2{cfg.Window.Width, cfg.Window.Height})
			for _, k := range tt.keys {
				in.Set(k, true)
			}
			p.Move(in, 0.1, cfg.Player.Sprint, cfg.PlayerBounds())
			if !p.Translation.ApproxEqualThreshold(tt.want, 1e-3) {
				t.Errorf("got %v, want %v", p.Translation, tt.want)
			}
		})
	}
}

func TestPlayerModBias(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	p.ModX = 1
	in := NewInputState(mgl32.Vec2{cfg.Window.Width, cfg.Window.Height})

	p.Move(in, 0.5, cfg.Player.Sprint, cfg.PlayerBounds())
	if !p.Translation.ApproxEqual(mgl32.Vec3{100, 0, 0}) {
		t.Errorf("got %v, want {100 0 0}", p.Translation)
	}
}

func TestReticleFollow(t *testing.T) {
	cfg := DefaultConfig()
	player := mgl32.Vec3{30, -40, 0}

	var tests = []struct {
		keys []Key
		want mgl32.Vec3
	}{
		{nil, mgl32.Vec3{30, -40, 0}},
		{[]Key{KeyUp}, mgl32.Vec3{30, 60, 0}},
		{[]Key{KeyDown}, mgl32.Vec3{30, -140, 0}},
		{[]Key{KeyLeft}, mgl32.Vec3{-70, -40, 0}},
		{[]Key{KeyRight}, mgl32.Vec3{130, -40, 0}},
		{[]Key{KeyUp, KeyRight}, mgl32.Vec3{130, 60, 0}},
		{[]Key{KeyUp, KeyDown}, mgl32.Vec3{30, 60, 0}},
		{[]Key{KeyLeft, KeyRight}, mgl32.Vec3{-70, -40, 0}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v should snap to %v", tt.keys, tt.want), func(t *testing.T) {
			r := NewReticle(cfg)
			in := NewInputState(mgl32.Vec2{cfg.Window.Width, cfg.Window.Height})
			for _, k := range tt.keys {
				in.Set(k, true)
			}
			r.Follow(in, player, cfg.Reticle.Offset)
			if r.Translation != tt.want {
				t.Errorf("got %v, want %v", r.Translation, tt.want)
			}
		})
	}
}

func TestMouseSystem(t *testing.T) {
	g := newTestGame(t)
	g.Player().Translation = mgl32.Vec3{10, 20, 0}

	g.Input().MoveCursor(mgl32.Vec2{640 + 5, 360 - 5})
	g.Update(0)

	if want := (mgl32.Vec3{15, 15, 0}); g.Res.MousePos != want {
		t.Errorf("got mouse %v, want %v", g.Res.MousePos, want)
	}
	if want := (mgl32.Vec2{15, 15}); g.Res.MouseDelta != want {
		t.Errorf("got delta %v, want %v", g.Res.MouseDelta, want)
	}
	if n := len(g.Input().CursorEvents()); n != 0 {
		t.Errorf("%d cursor events left after the frame", n)
	}
}
