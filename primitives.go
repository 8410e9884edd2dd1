package trellis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// defaultCylinderSegments controls cylinder resolution when a caller passes
// fewer than 3 radial segments.
const defaultCylinderSegments = 32

// BoxGeometry returns an axis-aligned box of the given size centered on the
// origin: 8 vertices, 12 triangles.
func BoxGeometry(width, height, depth float64) *Geometry {
	b := Box{
		Min: mgl64.Vec3{-width / 2, -height / 2, -depth / 2},
		Max: mgl64.Vec3{width / 2, height / 2, depth / 2},
	}
	corners := b.Corners()
	g := &Geometry{Positions: corners[:]}
	g.addQuad(0, 4, 6, 2) // -X
	g.addQuad(1, 3, 7, 5) // +X
	g.addQuad(0, 1, 5, 4) // -Y
	g.addQuad(2, 6, 7, 3) // +Y
	g.addQuad(0, 2, 3, 1) // -Z
	g.addQuad(4, 5, 7, 6) // +Z
	return g
}

// CylinderGeometry returns a capped cylinder (or truncated cone) whose axis
// is Y, centered on the origin. Vertex layout: bottom ring, top ring, bottom
// center, top center.
func CylinderGeometry(radiusTop, radiusBottom, height float64, segments int) *Geometry {
	if segments < 3 {
		segments = defaultCylinderSegments
	}
	half := height / 2
	g := &Geometry{Positions: make([]mgl64.Vec3, 0, segments*2+2)}
	for _, ring := range [2]struct{ r, y float64 }{{radiusBottom, -half}, {radiusTop, half}} {
		for i := 0; i < segments; i++ {
			theta := float64(i) / float64(segments) * 2 * math.Pi
			sin, cos := math.Sincos(theta)
			g.Positions = append(g.Positions, mgl64.Vec3{ring.r * sin, ring.y, ring.r * cos})
		}
	}
	bottomCenter := uint32(len(g.Positions))
	g.Positions = append(g.Positions, mgl64.Vec3{0, -half, 0}, mgl64.Vec3{0, half, 0})
	topCenter := bottomCenter + 1

	s := uint32(segments)
	for i := uint32(0); i < s; i++ {
		j := (i + 1) % s
		g.addQuad(i, j, s+j, s+i)
		g.addTriangle(topCenter, s+i, s+j)
		g.addTriangle(bottomCenter, j, i)
	}
	return g
}

// PlaneGeometry returns a single quad in the XY plane facing +Z, centered on
// the origin.
func PlaneGeometry(width, height float64) *Geometry {
	w, h := width/2, height/2
	g := &Geometry{Positions: []mgl64.Vec3{
		{-w, -h, 0},
		{w, -h, 0},
		{w, h, 0},
		{-w, h, 0},
	}}
	g.addQuad(0, 1, 2, 3)
	return g
}

// NewBox is shorthand for a mesh node over BoxGeometry.
func NewBox(name string, width, height, depth float64, mat Material) *Node {
	return NewMesh(name, BoxGeometry(width, height, depth), mat)
}

// NewCylinder is shorthand for a mesh node over CylinderGeometry.
func NewCylinder(name string, radiusTop, radiusBottom, height float64, segments int, mat Material) *Node {
	return NewMesh(name, CylinderGeometry(radiusTop, radiusBottom, height, segments), mat)
}
