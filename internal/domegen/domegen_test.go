package domegen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dome-preview/internal/nav"
)

func TestShellVerticesOnSphere(t *testing.T) {
	opts := DefaultOptions()
	verts, indices := Shell(opts)
	require.NotEmpty(t, verts)
	for _, v := range verts {
		assert.InDelta(t, opts.Radius, v.Len(), 1e-4)
		assert.GreaterOrEqual(t, v.Y(), float32(0))
	}
	for _, i := range indices {
		assert.Less(t, int(i), len(verts))
	}
	assert.Zero(t, len(indices)%3)
}

func TestFloorIsFlatAndInset(t *testing.T) {
	opts := DefaultOptions()
	verts, indices := Floor(opts)
	for _, v := range verts {
		assert.Zero(t, v.Y())
		assert.LessOrEqual(t, v.Len(), opts.Radius-opts.FloorInset+1e-4)
	}
	assert.Equal(t, opts.Segments*3, len(indices))

	// Face normals point up.
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Y(), float32(0))
	}
}

func TestGeneratedDomeFloorIsWalkable(t *testing.T) {
	verts, indices := Generate(DefaultOptions())
	m := nav.Build(verts, indices, nav.DefaultBuildOptions())
	require.NotNil(t, m)

	// Standing near the middle: feet snap onto the floor.
	p, ok := m.NearestWalkable(mgl32.Vec3{1, 0.3, -1}, mgl32.Vec3{1.5, 2, 1.5})
	require.True(t, ok)
	assert.InDelta(t, 0, p.Y(), 1e-4)

	// Well outside the dome there is nothing to stand on.
	_, ok = m.NearestWalkable(mgl32.Vec3{25, 0, 0}, mgl32.Vec3{1.5, 2, 1.5})
	assert.False(t, ok)
}

func TestTinyOptionsClamped(t *testing.T) {
	verts, indices := Generate(Options{Radius: 1, Rings: 0, Segments: 1})
	assert.NotEmpty(t, verts)
	assert.Zero(t, len(indices)%3)
}
