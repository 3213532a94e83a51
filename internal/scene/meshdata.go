package scene

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// ModelTriangles flattens every mesh of a loaded model into one indexed
// triangle list for the navmesh build. raylib keeps mesh data in C memory, so
// the vertex and index arrays are viewed through unsafe.Slice; the returned
// slices are copies and stay valid after the model is unloaded.
func ModelTriangles(model rl.Model) ([]mgl32.Vec3, []uint32) {
	if model.Meshes == nil || model.MeshCount == 0 {
		return nil, nil
	}
	meshes := unsafe.Slice(model.Meshes, model.MeshCount)

	var verts []mgl32.Vec3
	var indices []uint32
	for _, m := range meshes {
		if m.Vertices == nil || m.VertexCount == 0 {
			continue
		}
		base := uint32(len(verts))
		raw := unsafe.Slice(m.Vertices, int(m.VertexCount)*3)
		for i := 0; i+2 < len(raw); i += 3 {
			verts = append(verts, mgl32.Vec3{raw[i], raw[i+1], raw[i+2]})
		}
		if m.Indices != nil {
			idx := unsafe.Slice(m.Indices, int(m.TriangleCount)*3)
			for _, i := range idx {
				indices = append(indices, base+uint32(i))
			}
		} else {
			// Non-indexed mesh: vertices are already triangle-ordered.
			for i := int32(0); i < m.VertexCount; i++ {
				indices = append(indices, base+uint32(i))
			}
		}
	}
	return verts, indices
}
