// Package nav builds a walkable-surface index from triangle soup and answers
// nearest-walkable-point queries for the walkthrough controller. Queries are
// synchronous, idempotent while the mesh is unchanged, and bounded by the
// caller's search box.
package nav

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BuildOptions controls walkable-triangle extraction and spatial indexing.
// MaxSlopeDeg is the steepest surface still considered standable; CellSize is
// the XZ edge length of one index cell in world units.
type BuildOptions struct {
	MaxSlopeDeg float32
	CellSize    float32
}

// DefaultBuildOptions returns the extraction defaults: 45° slope limit, 2-unit cells.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{MaxSlopeDeg: 45, CellSize: 2}
}

type triangle struct {
	a, b, c mgl32.Vec3
}

type cellKey struct {
	x, z int32
}

// Mesh is the queryable navigation mesh: the walkable triangles of the source
// geometry, bucketed on a uniform XZ grid so a query only visits triangles near
// the search box. Build once, then read-only.
type Mesh struct {
	tris  []triangle
	cells map[cellKey][]int32
	cell  float32
}

// Build extracts walkable triangles from an indexed triangle mesh and indexes
// them. A triangle is walkable when its plane is within MaxSlopeDeg of
// horizontal; facing is ignored so flipped winding in imported models does not
// drop the floor. Degenerate triangles are skipped. Returns nil when nothing in
// the geometry is walkable, which callers treat as "no mesh" (unconstrained
// movement).
func Build(vertices []mgl32.Vec3, indices []uint32, opts BuildOptions) *Mesh {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultBuildOptions().CellSize
	}
	if opts.MaxSlopeDeg <= 0 {
		opts.MaxSlopeDeg = DefaultBuildOptions().MaxSlopeDeg
	}
	minUpY := math32.Cos(mgl32.DegToRad(opts.MaxSlopeDeg))

	m := &Mesh{
		cells: make(map[cellKey][]int32),
		cell:  opts.CellSize,
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		length := n.Len()
		if length < 1e-8 {
			continue
		}
		if math32.Abs(n.Y())/length < minUpY {
			continue
		}
		idx := int32(len(m.tris))
		m.tris = append(m.tris, triangle{a: a, b: b, c: c})
		m.insert(idx, a, b, c)
	}
	if len(m.tris) == 0 {
		return nil
	}
	return m
}

// TriangleCount returns the number of walkable triangles in the index.
func (m *Mesh) TriangleCount() int {
	return len(m.tris)
}

// insert buckets a triangle into every cell overlapped by its XZ bounding box.
func (m *Mesh) insert(idx int32, a, b, c mgl32.Vec3) {
	minX := math32.Min(a.X(), math32.Min(b.X(), c.X()))
	maxX := math32.Max(a.X(), math32.Max(b.X(), c.X()))
	minZ := math32.Min(a.Z(), math32.Min(b.Z(), c.Z()))
	maxZ := math32.Max(a.Z(), math32.Max(b.Z(), c.Z()))
	for x := m.cellCoord(minX); x <= m.cellCoord(maxX); x++ {
		for z := m.cellCoord(minZ); z <= m.cellCoord(maxZ); z++ {
			key := cellKey{x: x, z: z}
			m.cells[key] = append(m.cells[key], idx)
		}
	}
}

func (m *Mesh) cellCoord(v float32) int32 {
	return int32(math32.Floor(v / m.cell))
}

// NearestWalkable returns the closest point on any walkable triangle to p,
// restricted to the axis-aligned box of half-extents box centered on p. ok is
// false when no walkable point lies inside the box.
func (m *Mesh) NearestWalkable(p, box mgl32.Vec3) (mgl32.Vec3, bool) {
	var (
		best     mgl32.Vec3
		bestDist = float32(math32.MaxFloat32)
		found    bool
		seen     = make(map[int32]struct{})
	)
	for x := m.cellCoord(p.X() - box.X()); x <= m.cellCoord(p.X()+box.X()); x++ {
		for z := m.cellCoord(p.Z() - box.Z()); z <= m.cellCoord(p.Z()+box.Z()); z++ {
			for _, idx := range m.cells[cellKey{x: x, z: z}] {
				if _, dup := seen[idx]; dup {
					continue
				}
				seen[idx] = struct{}{}
				tri := m.tris[idx]
				q := closestPointOnTriangle(p, tri.a, tri.b, tri.c)
				if !inBox(q, p, box) {
					continue
				}
				d := q.Sub(p).LenSqr()
				if d < bestDist {
					bestDist = d
					best = q
					found = true
				}
			}
		}
	}
	return best, found
}

func inBox(q, center, box mgl32.Vec3) bool {
	return math32.Abs(q.X()-center.X()) <= box.X() &&
		math32.Abs(q.Y()-center.Y()) <= box.Y() &&
		math32.Abs(q.Z()-center.Z()) <= box.Z()
}
