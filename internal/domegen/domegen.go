// Package domegen generates the fallback dome geometry used when no model file
// is configured: a triangulated hemisphere shell plus a disc floor. The same
// triangles feed both the on-screen mesh and the navigation-mesh build, so what
// the user sees and where they can walk always agree.
package domegen

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Options controls dome generation. Radius is the shell radius; Rings and
// Segments set the shell tessellation (latitude bands and longitude divisions).
// The floor disc radius is Radius - FloorInset so the walkable area stops just
// short of the shell.
type Options struct {
	Radius     float32
	Rings      int
	Segments   int
	FloorInset float32
}

// DefaultOptions returns a 10-unit dome with a tessellation fine enough for
// projection preview without stressing the navmesh build.
func DefaultOptions() Options {
	return Options{
		Radius:     10,
		Rings:      16,
		Segments:   32,
		FloorInset: 0.25,
	}
}

// Generate returns the full dome (shell plus floor) as an indexed triangle mesh.
func Generate(opts Options) ([]mgl32.Vec3, []uint32) {
	verts, indices := Shell(opts)
	fv, fi := Floor(opts)
	base := uint32(len(verts))
	verts = append(verts, fv...)
	for _, i := range fi {
		indices = append(indices, base+i)
	}
	return verts, indices
}

// Shell returns the hemisphere shell: Rings latitude bands from the equator
// (Y=0) up to a single apex vertex, Segments around. Interior-facing winding.
func Shell(opts Options) ([]mgl32.Vec3, []uint32) {
	rings, segs := opts.Rings, opts.Segments
	if rings < 2 {
		rings = 2
	}
	if segs < 3 {
		segs = 3
	}

	var verts []mgl32.Vec3
	for r := 0; r < rings; r++ {
		lat := float32(r) / float32(rings) * (math32.Pi / 2)
		y := opts.Radius * math32.Sin(lat)
		ringRadius := opts.Radius * math32.Cos(lat)
		for s := 0; s < segs; s++ {
			lon := float32(s) / float32(segs) * 2 * math32.Pi
			verts = append(verts, mgl32.Vec3{
				ringRadius * math32.Cos(lon),
				y,
				ringRadius * math32.Sin(lon),
			})
		}
	}
	apex := uint32(len(verts))
	verts = append(verts, mgl32.Vec3{0, opts.Radius, 0})

	var indices []uint32
	ringStart := func(r int) uint32 { return uint32(r * segs) }
	for r := 0; r < rings-1; r++ {
		for s := 0; s < segs; s++ {
			next := (s + 1) % segs
			a := ringStart(r) + uint32(s)
			b := ringStart(r) + uint32(next)
			c := ringStart(r+1) + uint32(s)
			d := ringStart(r+1) + uint32(next)
			indices = append(indices, a, b, c, b, d, c)
		}
	}
	top := rings - 1
	for s := 0; s < segs; s++ {
		next := (s + 1) % segs
		indices = append(indices, ringStart(top)+uint32(s), ringStart(top)+uint32(next), apex)
	}
	return verts, indices
}

// Floor returns the walkable disc at Y=0: a triangle fan around the center with
// the same Segments count as the shell, wound so the face normal points up.
func Floor(opts Options) ([]mgl32.Vec3, []uint32) {
	segs := opts.Segments
	if segs < 3 {
		segs = 3
	}
	radius := opts.Radius - opts.FloorInset
	if radius <= 0 {
		radius = opts.Radius
	}

	verts := []mgl32.Vec3{{0, 0, 0}}
	for s := 0; s < segs; s++ {
		lon := float32(s) / float32(segs) * 2 * math32.Pi
		verts = append(verts, mgl32.Vec3{radius * math32.Cos(lon), 0, radius * math32.Sin(lon)})
	}

	var indices []uint32
	for s := 1; s <= segs; s++ {
		next := s + 1
		if next > segs {
			next = 1
		}
		indices = append(indices, 0, uint32(next), uint32(s))
	}
	return verts, indices
}
