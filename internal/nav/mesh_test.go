package nav

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad returns a flat quad on Y=y spanning [minX,maxX]x[minZ,maxZ], as two
// triangles.
func quad(minX, maxX, minZ, maxZ, y float32) ([]mgl32.Vec3, []uint32) {
	verts := []mgl32.Vec3{
		{minX, y, minZ},
		{maxX, y, minZ},
		{maxX, y, maxZ},
		{minX, y, maxZ},
	}
	return verts, []uint32{0, 1, 2, 0, 2, 3}
}

func TestBuildFiltersSteepTriangles(t *testing.T) {
	// A floor triangle and a vertical wall triangle.
	verts := []mgl32.Vec3{
		{0, 0, 0}, {4, 0, 0}, {0, 0, 4}, // floor
		{0, 0, 0}, {0, 4, 0}, {4, 0, 0}, // wall-ish, steeper than 45°
	}
	idx := []uint32{0, 1, 2, 3, 4, 5}
	m := Build(verts, idx, DefaultBuildOptions())
	require.NotNil(t, m)
	assert.Equal(t, 1, m.TriangleCount())
}

func TestBuildNilWhenNothingWalkable(t *testing.T) {
	verts := []mgl32.Vec3{{0, 0, 0}, {0, 4, 0}, {0, 4, 4}}
	assert.Nil(t, Build(verts, []uint32{0, 1, 2}, DefaultBuildOptions()))
}

func TestBuildSkipsDegenerateTriangles(t *testing.T) {
	verts := []mgl32.Vec3{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	assert.Nil(t, Build(verts, []uint32{0, 1, 2}, DefaultBuildOptions()))
}

func TestNearestWalkableProjectsOntoFloor(t *testing.T) {
	verts, idx := quad(-5, 5, -5, 5, 0.5)
	m := Build(verts, idx, DefaultBuildOptions())
	require.NotNil(t, m)

	got, ok := m.NearestWalkable(mgl32.Vec3{1, 0.1, -2}, mgl32.Vec3{1.5, 2, 1.5})
	require.True(t, ok)
	assert.InDelta(t, 1, got.X(), 1e-5)
	assert.InDelta(t, 0.5, got.Y(), 1e-5)
	assert.InDelta(t, -2, got.Z(), 1e-5)
}

func TestNearestWalkableFailsOutsideBox(t *testing.T) {
	verts, idx := quad(-5, 5, -5, 5, 0)
	m := Build(verts, idx, DefaultBuildOptions())
	require.NotNil(t, m)

	// Feet point 10 units off the edge of the floor; box reaches 1.5.
	_, ok := m.NearestWalkable(mgl32.Vec3{15, 0, 0}, mgl32.Vec3{1.5, 2, 1.5})
	assert.False(t, ok)

	// Floor far below the vertical reach of the box.
	_, ok = m.NearestWalkable(mgl32.Vec3{0, 30, 0}, mgl32.Vec3{1.5, 2, 1.5})
	assert.False(t, ok)
}

func TestNearestWalkableIsIdempotent(t *testing.T) {
	verts, idx := quad(-8, 8, -8, 8, 1.25)
	m := Build(verts, idx, DefaultBuildOptions())
	require.NotNil(t, m)

	p := mgl32.Vec3{0.7, 2.2, -3.1}
	box := mgl32.Vec3{1.5, 2, 1.5}
	first, ok1 := m.NearestWalkable(p, box)
	second, ok2 := m.NearestWalkable(p, box)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

// bruteNearest scans every triangle without the grid, for cross-checking.
func bruteNearest(m *Mesh, p, box mgl32.Vec3) (mgl32.Vec3, bool) {
	var (
		best  mgl32.Vec3
		dist  = float32(math32.MaxFloat32)
		found bool
	)
	for _, tri := range m.tris {
		q := closestPointOnTriangle(p, tri.a, tri.b, tri.c)
		if !inBox(q, p, box) {
			continue
		}
		if d := q.Sub(p).LenSqr(); d < dist {
			dist = d
			best = q
			found = true
		}
	}
	return best, found
}

func TestGridMatchesBruteForce(t *testing.T) {
	// Two floors at different heights plus a ramp, spread over many grid cells.
	var verts []mgl32.Vec3
	var idx []uint32
	add := func(v []mgl32.Vec3, i []uint32) {
		base := uint32(len(verts))
		verts = append(verts, v...)
		for _, n := range i {
			idx = append(idx, base+n)
		}
	}
	v, i := quad(-10, 0, -10, 10, 0)
	add(v, i)
	v, i = quad(0, 10, -10, 10, 0.8)
	add(v, i)
	add([]mgl32.Vec3{{-2, 0, -12}, {2, 0, -12}, {0, 1, -14}}, []uint32{0, 1, 2})

	m := Build(verts, idx, BuildOptions{MaxSlopeDeg: 50, CellSize: 1.5})
	require.NotNil(t, m)

	rng := rand.New(rand.NewSource(7))
	box := mgl32.Vec3{1.5, 2, 1.5}
	for n := 0; n < 200; n++ {
		p := mgl32.Vec3{
			rng.Float32()*30 - 15,
			rng.Float32() * 3,
			rng.Float32()*30 - 15,
		}
		wantPt, wantOk := bruteNearest(m, p, box)
		gotPt, gotOk := m.NearestWalkable(p, box)
		require.Equal(t, wantOk, gotOk, "point %v", p)
		if wantOk {
			assert.InDelta(t, wantPt.Sub(p).Len(), gotPt.Sub(p).Len(), 1e-5, "point %v", p)
		}
	}
}

func TestClosestPointOnTriangleRegions(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{4, 0, 0}
	c := mgl32.Vec3{0, 0, 4}

	// Interior: projects straight down.
	got := closestPointOnTriangle(mgl32.Vec3{1, 3, 1}, a, b, c)
	assert.InDelta(t, 1, got.X(), 1e-6)
	assert.InDelta(t, 0, got.Y(), 1e-6)
	assert.InDelta(t, 1, got.Z(), 1e-6)

	// Vertex region.
	got = closestPointOnTriangle(mgl32.Vec3{-1, 0, -1}, a, b, c)
	assert.Equal(t, a, got)

	// Edge ab region.
	got = closestPointOnTriangle(mgl32.Vec3{2, 1, -3}, a, b, c)
	assert.InDelta(t, 2, got.X(), 1e-6)
	assert.InDelta(t, 0, got.Z(), 1e-6)

	// Hypotenuse region.
	got = closestPointOnTriangle(mgl32.Vec3{3, 0, 3}, a, b, c)
	assert.InDelta(t, 2, got.X(), 1e-5)
	assert.InDelta(t, 2, got.Z(), 1e-5)
}
