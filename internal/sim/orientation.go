package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch bounds pitch to straight up/down so the view can never flip over the pole.
const maxPitch = math32.Pi / 2

// Orientation is the authoritative look direction: yaw about world Y, pitch about
// the local X axis, roll about the local Z axis, applied in that order (yaw, then
// pitch, then roll) so roll never bleeds into first-person look. Angles are radians.
// Yaw is unbounded and wraps naturally through the trig functions; pitch is always
// clamped to [-maxPitch, maxPitch].
type Orientation struct {
	Yaw   float32
	Pitch float32
	Roll  float32
}

// OrientationFromEuler re-derives an Orientation from a camera Euler rotation
// (X=pitch, Y=yaw, Z=roll). Used whenever the camera transform is set externally
// (model load, teleport) so incremental look updates compose with the new base
// instead of snapping back to stale state.
func OrientationFromEuler(e mgl32.Vec3) Orientation {
	return Orientation{
		Yaw:   e.Y(),
		Pitch: clampPitch(e.X()),
		Roll:  e.Z(),
	}
}

// Euler returns the camera Euler rotation (X=pitch, Y=yaw, Z=roll) for this orientation.
func (o Orientation) Euler() mgl32.Vec3 {
	return mgl32.Vec3{o.Pitch, o.Yaw, o.Roll}
}

// Quat returns the render-ready rotation, composing yaw, pitch, and roll in that order.
func (o Orientation) Quat() mgl32.Quat {
	return mgl32.AnglesToQuat(o.Yaw, o.Pitch, o.Roll, mgl32.YXZ)
}

// ApplyLook integrates a drag delta (screen pixels) into yaw and pitch using the
// given sensitivity (radians per pixel). Dragging right turns right, dragging down
// looks down. Non-finite deltas (malformed touch events) are dropped whole so they
// can never corrupt the persistent angles.
func (o *Orientation) ApplyLook(dx, dy, sensitivity float32) {
	if !isFinite(dx) || !isFinite(dy) {
		return
	}
	o.Yaw -= dx * sensitivity
	o.Pitch = clampPitch(o.Pitch - dy*sensitivity)
}

// Forward returns the unit look direction (local -Z in world space).
func (o Orientation) Forward() mgl32.Vec3 {
	cp := math32.Cos(o.Pitch)
	return mgl32.Vec3{
		-math32.Sin(o.Yaw) * cp,
		math32.Sin(o.Pitch),
		-math32.Cos(o.Yaw) * cp,
	}
}

// Right returns the unit strafe direction (local +X in world space). Pitch does not
// tilt the strafe axis.
func (o Orientation) Right() mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(o.Yaw), 0, -math32.Sin(o.Yaw)}
}

func clampPitch(p float32) float32 {
	if p > maxPitch {
		return maxPitch
	}
	if p < -maxPitch {
		return -maxPitch
	}
	return p
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
