package sim

import "github.com/go-gl/mathgl/mgl32"

// CameraRig is the narrow surface the controller needs from the render engine's
// camera: a mutable world position and a mutable Euler rotation (X=pitch, Y=yaw,
// Z=roll, applied yaw-pitch-roll). Keeping this an interface lets tests drive the
// controller without a window or GPU.
type CameraRig interface {
	Position() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
	Rotation() mgl32.Vec3
	SetRotation(e mgl32.Vec3)
}

// Navmesh answers nearest-walkable-point queries. p is a feet-level point; box is
// the half-extent of the axis-aligned search volume centered on p. The query must
// be synchronous and idempotent while the mesh is unchanged. ok is false when no
// walkable point lies inside the box.
type Navmesh interface {
	NearestWalkable(p, box mgl32.Vec3) (nearest mgl32.Vec3, ok bool)
}
