// Package input turns raylib's polled keyboard, mouse, and touch state into the
// simulation's per-frame intent sets and look delta. All raw deltas are
// sanitized here so malformed events can never reach the orientation state.
package input

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"dome-preview/internal/sim"
)

// Tracker polls input once per frame. Ready gates everything on the model-ready
// signal; CapturePointer lets the panel claim the mouse so hovering a slider
// does not also spin the camera.
type Tracker struct {
	Ready          func() bool
	CapturePointer func() bool

	lastTouch rl.Vector2
	touchLive bool
}

// New returns a tracker. Both hooks may be nil (treated as always-ready,
// never-captured).
func New() *Tracker {
	return &Tracker{}
}

// Poll reads the current input state and returns this frame's simulation input.
// Before the model is ready it returns a zero frame: no intent is asserted
// against an uninitialized camera.
func (t *Tracker) Poll() sim.Frame {
	if t.Ready != nil && !t.Ready() {
		t.touchLive = false
		return sim.Frame{}
	}

	var f sim.Frame
	f.Keys = keyboardIntents()
	f.Look, f.Touch = t.pointer()
	return f
}

// keyboardIntents maps the held key set to intents. WASD and arrows move, Q/E
// rotate, R/F climb and descend in fly mode. Q wins when Q and E are both held
// so the two keys resolve to a single rotation direction.
func keyboardIntents() sim.Intents {
	var in sim.Intents
	in.Forward = rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp)
	in.Backward = rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown)
	in.Left = rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft)
	in.Right = rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight)
	in.Up = rl.IsKeyDown(rl.KeyR) || rl.IsKeyDown(rl.KeySpace)
	in.Down = rl.IsKeyDown(rl.KeyF) || rl.IsKeyDown(rl.KeyLeftShift)
	if rl.IsKeyDown(rl.KeyQ) {
		in.RotateLeft = true
	} else if rl.IsKeyDown(rl.KeyE) {
		in.RotateRight = true
	}
	return in
}

// pointer handles mouse drag and touch gestures. One finger (or a held left
// button) drags the view; two fingers walk forward, and a concurrent
// single-finger drag still turns — both gestures can be active at once.
func (t *Tracker) pointer() (sim.LookDelta, sim.Intents) {
	captured := t.CapturePointer != nil && t.CapturePointer()

	touches := int(rl.GetTouchPointCount())
	if touches > 0 {
		return t.touchGesture(touches, captured)
	}
	t.touchLive = false

	if captured || !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		return sim.LookDelta{}, sim.Intents{}
	}
	d := rl.GetMouseDelta()
	return sanitize(d.X, d.Y), sim.Intents{}
}

func (t *Tracker) touchGesture(touches int, captured bool) (sim.LookDelta, sim.Intents) {
	var in sim.Intents
	if touches >= 2 {
		in.Forward = true
	}

	pos := rl.GetTouchPosition(0)
	defer func() {
		t.lastTouch = pos
		t.touchLive = true
	}()

	// First contact of a gesture has no previous position to diff against.
	if !t.touchLive || captured {
		return sim.LookDelta{}, in
	}
	return sanitize(pos.X-t.lastTouch.X, pos.Y-t.lastTouch.Y), in
}

// sanitize drops non-finite drag deltas whole; a malformed event becomes a
// no-op rather than a corrupted orientation.
func sanitize(dx, dy float32) sim.LookDelta {
	if math32.IsNaN(dx) || math32.IsInf(dx, 0) || math32.IsNaN(dy) || math32.IsInf(dy, 0) {
		return sim.LookDelta{}
	}
	return sim.LookDelta{DX: dx, DY: dy}
}
