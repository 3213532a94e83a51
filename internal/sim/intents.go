package sim

// Intents is the set of movement requests active this frame. Each source (keyboard,
// touch gestures, panel buttons) fills its own set; sets from sources with the same
// speed scale are merged with Or. Up/Down only take effect in fly mode.
type Intents struct {
	Forward     bool
	Backward    bool
	Left        bool
	Right       bool
	RotateLeft  bool
	RotateRight bool
	Up          bool
	Down        bool
}

// Or merges two intent sets; a direction is active if it is active in either.
func (in Intents) Or(other Intents) Intents {
	return Intents{
		Forward:     in.Forward || other.Forward,
		Backward:    in.Backward || other.Backward,
		Left:        in.Left || other.Left,
		Right:       in.Right || other.Right,
		RotateLeft:  in.RotateLeft || other.RotateLeft,
		RotateRight: in.RotateRight || other.RotateRight,
		Up:          in.Up || other.Up,
		Down:        in.Down || other.Down,
	}
}

// Any reports whether any translation intent is active (rotation intents excluded:
// they never move the camera, only turn it).
func (in Intents) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right || in.Up || in.Down
}

// LookDelta is a drag delta in screen pixels accumulated since the previous frame.
type LookDelta struct {
	DX float32
	DY float32
}

// Frame is one frame's worth of input. Keys moves at base speed; Touch (touch
// gestures and on-screen panel buttons) moves at twice base speed to compensate for
// the coarser input. The two sets are resolved independently and summed.
type Frame struct {
	Keys  Intents
	Touch Intents
	Look  LookDelta
}
