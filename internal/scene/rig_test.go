package scene

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRigApplyLooksAlongForward(t *testing.T) {
	r := NewRig(mgl32.Vec3{1, 1.7, 2})
	var cam rl.Camera3D
	r.Apply(&cam)
	assert.InDelta(t, 1, cam.Position.X, 1e-6)
	assert.InDelta(t, 1.7, cam.Position.Y, 1e-6)
	// Default orientation looks along -Z.
	assert.InDelta(t, 2-1, cam.Target.Z, 1e-6)
	assert.InDelta(t, 1, cam.Up.Y, 1e-6)
}

func TestRigApplyRespectsYaw(t *testing.T) {
	r := NewRig(mgl32.Vec3{})
	r.SetRotation(mgl32.Vec3{0, math32.Pi / 2, 0}) // quarter turn left
	var cam rl.Camera3D
	r.Apply(&cam)
	assert.InDelta(t, -1, cam.Target.X, 1e-6)
	assert.InDelta(t, 0, cam.Target.Z, 1e-5)
}

func TestRigRoundTrip(t *testing.T) {
	r := NewRig(mgl32.Vec3{})
	r.SetPosition(mgl32.Vec3{3, 4, 5})
	r.SetRotation(mgl32.Vec3{0.2, 1.1, 0})
	assert.Equal(t, mgl32.Vec3{3, 4, 5}, r.Position())
	assert.Equal(t, mgl32.Vec3{0.2, 1.1, 0}, r.Rotation())
}
