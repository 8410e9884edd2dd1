package trellis

import "github.com/go-gl/mathgl/mgl64"

// Geometry is an indexed triangle mesh. Indices holds three entries per
// triangle, counter-clockwise when seen from outside the solid.
type Geometry struct {
	Positions []mgl64.Vec3
	Indices   []uint32

	// RingSize is the number of vertices in one cross-section ring of an
	// extruded solid, and Rings the number of rings along the sweep. Both are
	// zero for primitives.
	RingSize int
	Rings    int
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// IsEmpty reports whether the geometry has no vertices.
func (g *Geometry) IsEmpty() bool {
	return len(g.Positions) == 0
}

// Bounds scans the positions and returns the local-space bounding box.
func (g *Geometry) Bounds() Box {
	b := EmptyBox()
	for _, p := range g.Positions {
		b = b.ExtendPoint(p)
	}
	return b
}

// Translate moves every vertex by d.
func (g *Geometry) Translate(d mgl64.Vec3) {
	for i := range g.Positions {
		g.Positions[i] = g.Positions[i].Add(d)
	}
}

// Center translates the geometry so its bounding box is centered on the
// origin and returns the offset that was applied.
func (g *Geometry) Center() mgl64.Vec3 {
	if g.IsEmpty() {
		return mgl64.Vec3{}
	}
	off := g.Bounds().Center().Mul(-1)
	g.Translate(off)
	return off
}

// Clone returns a deep copy that shares no backing arrays with g.
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{
		Positions: make([]mgl64.Vec3, len(g.Positions)),
		Indices:   make([]uint32, len(g.Indices)),
		RingSize:  g.RingSize,
		Rings:     g.Rings,
	}
	copy(c.Positions, g.Positions)
	copy(c.Indices, g.Indices)
	return c
}

// Ring returns the vertices of cross-section ring i of an extruded solid,
// or nil if the geometry has no ring layout or i is out of range.
func (g *Geometry) Ring(i int) []mgl64.Vec3 {
	if g.RingSize == 0 || i < 0 || i >= g.Rings {
		return nil
	}
	return g.Positions[i*g.RingSize : (i+1)*g.RingSize]
}

// addTriangle appends one triangle.
func (g *Geometry) addTriangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// addQuad appends two triangles covering the quad a-b-c-d (counter-clockwise).
func (g *Geometry) addQuad(a, b, c, d uint32) {
	g.Indices = append(g.Indices, a, b, d, b, c, d)
}

// triangleNormal returns the unit normal of the counter-clockwise triangle
// a-b-c, or zero when it is degenerate.
func triangleNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 1e-12 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{}
}
