package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"dome-preview/internal/sim"
)

// Rig adapts the controller's position/rotation view of the camera onto
// raylib's position/target representation. The controller reads and writes
// the rig; Apply pushes the result into the rl.Camera3D once per frame.
type Rig struct {
	pos   mgl32.Vec3
	euler mgl32.Vec3 // X=pitch, Y=yaw, Z=roll
}

var _ sim.CameraRig = (*Rig)(nil)

// NewRig returns a rig standing at pos looking along -Z.
func NewRig(pos mgl32.Vec3) *Rig {
	return &Rig{pos: pos}
}

// Position returns the camera eye position.
func (r *Rig) Position() mgl32.Vec3 { return r.pos }

// SetPosition moves the camera eye position.
func (r *Rig) SetPosition(p mgl32.Vec3) { r.pos = p }

// Rotation returns the camera Euler rotation (X=pitch, Y=yaw, Z=roll).
func (r *Rig) Rotation() mgl32.Vec3 { return r.euler }

// SetRotation sets the camera Euler rotation.
func (r *Rig) SetRotation(e mgl32.Vec3) { r.euler = e }

// Apply writes the rig's transform into cam: eye at the rig position, target
// one unit along the look direction.
func (r *Rig) Apply(cam *rl.Camera3D) {
	o := sim.OrientationFromEuler(r.euler)
	target := r.pos.Add(o.Forward())
	up := o.Quat().Rotate(mgl32.Vec3{0, 1, 0})
	cam.Position = rl.NewVector3(r.pos.X(), r.pos.Y(), r.pos.Z())
	cam.Target = rl.NewVector3(target.X(), target.Y(), target.Z())
	cam.Up = rl.NewVector3(up.X(), up.Y(), up.Z())
}
