package media

// Clock advances a frame-sequence player: given elapsed frame times it yields
// the index of the frame to show, wrapping at the end. It is separate from the
// GPU textures so playback timing can be tested without a window.
type Clock struct {
	frames  int
	fps     float64
	elapsed float64
	index   int
	playing bool
}

// NewClock returns a playing clock over frames frames at fps frames per second.
// A single-frame clock stays on frame 0 forever.
func NewClock(frames int, fps float64) *Clock {
	if frames < 1 {
		frames = 1
	}
	if fps <= 0 {
		fps = 24
	}
	return &Clock{frames: frames, fps: fps, playing: true}
}

// Advance accumulates dt seconds and returns the current frame index. Paused
// clocks hold their frame. Multiple frame steps in one long dt are honored.
func (c *Clock) Advance(dt float64) int {
	if !c.playing || c.frames == 1 {
		return c.index
	}
	c.elapsed += dt
	frameTime := 1 / c.fps
	for c.elapsed >= frameTime {
		c.elapsed -= frameTime
		c.index = (c.index + 1) % c.frames
	}
	return c.index
}

// Index returns the current frame without advancing.
func (c *Clock) Index() int {
	return c.index
}

// Playing reports whether the clock is advancing.
func (c *Clock) Playing() bool {
	return c.playing
}

// SetPlaying pauses or resumes playback.
func (c *Clock) SetPlaying(playing bool) {
	c.playing = playing
}

// TogglePlay flips the play/pause state and returns the new state.
func (c *Clock) TogglePlay() bool {
	c.playing = !c.playing
	return c.playing
}

// Rewind returns to frame 0 without changing the play state.
func (c *Clock) Rewind() {
	c.index = 0
	c.elapsed = 0
}
