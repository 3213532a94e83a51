package sim

import "github.com/go-gl/mathgl/mgl32"

// Config holds the tuning constants for the walkthrough controller.
// TouchBoost scales touch/panel movement relative to keyboard so coarse input
// covers comparable ground. RotateScale turns BaseSpeed into the Q/E yaw rate.
type Config struct {
	BaseSpeed       float32    // world units per second for keyboard movement
	TouchBoost      float32    // touch/panel speed multiplier (typically 2)
	RotateScale     float32    // yaw rate = BaseSpeed * RotateScale, radians per second
	LookSensitivity float32    // radians per screen pixel of drag
	EyeHeight       float32    // camera height above the feet point, world units
	SearchBox       mgl32.Vec3 // half-extents of the navmesh search volume
	MaxFrameDelta   float32    // upper bound on dt, seconds; 0 disables clamping
}

// DefaultConfig returns the tuning used by the viewer unless settings override it.
func DefaultConfig() Config {
	return Config{
		BaseSpeed:       2.0,
		TouchBoost:      2.0,
		RotateScale:     0.5,
		LookSensitivity: 0.0025,
		EyeHeight:       1.7,
		SearchBox:       mgl32.Vec3{1.5, 2.0, 1.5},
		MaxFrameDelta:   0.1,
	}
}

// Controller owns the walkthrough simulation state: the authoritative orientation
// plus the mode flags. Each frame, Step integrates look input, recomputes the
// camera rotation, and resolves movement against the navigation mesh. All state
// lives here rather than in package globals so tests can run many controllers
// deterministically.
type Controller struct {
	cfg    Config
	rig    CameraRig
	mesh   Navmesh
	orient Orientation
	fly    bool
	ready  bool
}

// NewController returns a controller driving rig. The navigation mesh is attached
// later with SetNavmesh once the model is loaded; until then movement is
// unconstrained.
func NewController(cfg Config, rig CameraRig) *Controller {
	return &Controller{cfg: cfg, rig: rig}
}

// Config returns the current tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the tuning; takes effect on the next Step.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

// SetNavmesh attaches (or detaches, with nil) the walkable-surface index.
func (c *Controller) SetNavmesh(m Navmesh) {
	c.mesh = m
}

// SetFly toggles fly mode: translation is applied directly with no ground
// constraint, and Up/Down intents become active. Takes effect on the next Step.
func (c *Controller) SetFly(fly bool) {
	c.fly = fly
}

// Fly reports whether fly mode is active.
func (c *Controller) Fly() bool {
	return c.fly
}

// SetReady gates the controller on the model-ready signal. Before the first model
// is loaded no input is integrated, so an uninitialized camera can never be moved.
// Becoming ready re-syncs orientation from the rig.
func (c *Controller) SetReady(ready bool) {
	if ready && !c.ready {
		c.Sync()
	}
	c.ready = ready
}

// Orientation returns the current authoritative orientation.
func (c *Controller) Orientation() Orientation {
	return c.orient
}

// Sync re-derives the authoritative orientation from the rig's current rotation.
// Call after any external change to the camera transform (model load, teleport)
// so subsequent drag deltas compose with the new base instead of the stale one.
func (c *Controller) Sync() {
	c.orient = OrientationFromEuler(c.rig.Rotation())
}

// Teleport places the camera at an eye-level position with the given Euler
// rotation, then re-syncs. The position is not navmesh-checked: teleport targets
// are trusted.
func (c *Controller) Teleport(pos, euler mgl32.Vec3) {
	c.rig.SetPosition(pos)
	c.rig.SetRotation(euler)
	c.Sync()
}

// Step advances the simulation by dt seconds: look integration, Q/E rotation,
// then movement resolution. No-op until SetReady(true).
func (c *Controller) Step(f Frame, dt float32) {
	if !c.ready {
		return
	}
	if c.cfg.MaxFrameDelta > 0 && dt > c.cfg.MaxFrameDelta {
		// A long stall (tab in background, debugger pause) must not turn into one
		// giant displacement that tunnels through the walkable boundary.
		dt = c.cfg.MaxFrameDelta
	}

	c.orient.ApplyLook(f.Look.DX, f.Look.DY, c.cfg.LookSensitivity)
	c.integrateRotation(f, dt)
	c.rig.SetRotation(c.orient.Euler())

	disp := c.displacement(f, dt)
	if c.fly {
		if disp != (mgl32.Vec3{}) {
			c.rig.SetPosition(c.rig.Position().Add(disp))
		}
		return
	}
	c.resolveGrounded(disp)
}

// integrateRotation applies the constant-rate Q/E (and panel arrow) yaw while a
// rotate intent is held. Nothing accumulates across frames when inactive. Keyboard
// left/right exclusivity is enforced upstream; panel intents may both be active
// and then cancel out.
func (c *Controller) integrateRotation(f Frame, dt float32) {
	rate := c.cfg.BaseSpeed * c.cfg.RotateScale
	for _, in := range [2]Intents{f.Keys, f.Touch} {
		if in.RotateLeft {
			c.orient.Yaw += rate * dt
		}
		if in.RotateRight {
			c.orient.Yaw -= rate * dt
		}
	}
}

// displacement sums the scaled contribution of every active translation intent.
// Keyboard moves at BaseSpeed, touch/panel at BaseSpeed*TouchBoost. Up/Down
// contribute only in fly mode.
func (c *Controller) displacement(f Frame, dt float32) mgl32.Vec3 {
	var disp mgl32.Vec3
	disp = accumulate(disp, c.orient, f.Keys, c.fly, c.cfg.BaseSpeed*dt)
	disp = accumulate(disp, c.orient, f.Touch, c.fly, c.cfg.BaseSpeed*c.cfg.TouchBoost*dt)
	return disp
}

var worldUp = mgl32.Vec3{0, 1, 0}

func accumulate(disp mgl32.Vec3, o Orientation, in Intents, fly bool, step float32) mgl32.Vec3 {
	forward := o.Forward()
	right := o.Right()
	if in.Forward {
		disp = disp.Add(forward.Mul(step))
	}
	if in.Backward {
		disp = disp.Sub(forward.Mul(step))
	}
	if in.Left {
		disp = disp.Sub(right.Mul(step))
	}
	if in.Right {
		disp = disp.Add(right.Mul(step))
	}
	if fly {
		if in.Up {
			disp = disp.Add(worldUp.Mul(step))
		}
		if in.Down {
			disp = disp.Sub(worldUp.Mul(step))
		}
	}
	return disp
}

// resolveGrounded applies disp subject to the walkable surface. The candidate
// keeps the current Y; the navmesh result supplies the new ground height, and the
// camera stands EyeHeight above it. On a direct miss the move degrades to an
// X-only then Z-only slide, first success wins; if both miss the camera stays put
// for this frame. With no mesh attached the displacement is applied as-is.
func (c *Controller) resolveGrounded(disp mgl32.Vec3) {
	if disp == (mgl32.Vec3{}) {
		return
	}
	pos := c.rig.Position()
	if c.mesh == nil {
		c.rig.SetPosition(pos.Add(disp))
		return
	}
	candidates := [3]mgl32.Vec3{
		{pos.X() + disp.X(), pos.Y(), pos.Z() + disp.Z()},
		{pos.X() + disp.X(), pos.Y(), pos.Z()},
		{pos.X(), pos.Y(), pos.Z() + disp.Z()},
	}
	for _, cand := range candidates {
		feet := mgl32.Vec3{cand.X(), cand.Y() - c.cfg.EyeHeight, cand.Z()}
		if nearest, ok := c.mesh.NearestWalkable(feet, c.cfg.SearchBox); ok {
			c.rig.SetPosition(mgl32.Vec3{nearest.X(), nearest.Y() + c.cfg.EyeHeight, nearest.Z()})
			return
		}
	}
}
