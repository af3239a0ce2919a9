package kerbee

import "github.com/go-gl/mathgl/mgl32"

type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyShift
)

var keyNames = map[Key]string{
	KeyW:     "W",
	KeyA:     "A",
	KeyS:     "S",
	KeyD:     "D",
	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",
	KeyShift: "Shift",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "Unknown"
}

// AimKeys are the keys that move the reticle and fire.
var AimKeys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// CursorMoved is an absolute cursor position in screen space, origin bottom left, y up.
type CursorMoved struct {
	Position mgl32.Vec2
}

// InputState is written by the frontend before each frame and read by the systems.
type InputState struct {
	held   map[Key]bool
	cursor []CursorMoved
	Window mgl32.Vec2
}

func NewInputState(window mgl32.Vec2) *InputState {
	return &InputState{held: map[Key]bool{}, Window: window}
}

func (in *InputState) Pressed(k Key) bool { return in.held[k] }

func (in *InputState) AnyPressed(keys ...Key) bool {
	for _, k := range keys {
		if in.held[k] {
			return true
		}
	}
	return false
}

// Set marks k as held or released.
func (in *InputState) Set(k Key, down bool) {
	if down {
		in.held[k] = true
		return
	}
	delete(in.held, k)
}

func (in *InputState) ReleaseAll() {
	for k := range in.held {
		delete(in.held, k)
	}
}

// MoveCursor queues a cursor event for the next frame.
func (in *InputState) MoveCursor(pos mgl32.Vec2) {
	in.cursor = append(in.cursor, CursorMoved{Position: pos})
}

// CursorEvents drains the cursor events queued since the last call.
func (in *InputState) CursorEvents() []CursorMoved {
	evs := in.cursor
	in.cursor = nil
	return evs
}
