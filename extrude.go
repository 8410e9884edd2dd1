package trellis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ExtrusionSpec controls how a Profile becomes a solid. Zero values for the
// bevel and curve fields select the defaults.
type ExtrusionSpec struct {
	Depth float64
	// Bevel rounds the cap edges. Off by default (flat edges).
	Bevel bool

	CurveSegments  int     // samples per quadratic edge (default 12)
	BevelThickness float64 // how far the bevel reaches past each cap in Z (default 0.2)
	BevelSize      float64 // how far the body is pushed out from the contour (default 0.1)
	BevelSegments  int     // rings per bevel (default 3)
}

const (
	defaultBevelThickness = 0.2
	defaultBevelSize      = 0.1
	defaultBevelSegments  = 3
)

func (s ExtrusionSpec) withDefaults() ExtrusionSpec {
	if s.CurveSegments <= 0 {
		s.CurveSegments = defaultCurveSegments
	}
	if s.BevelThickness <= 0 {
		s.BevelThickness = defaultBevelThickness
	}
	if s.BevelSize <= 0 {
		s.BevelSize = defaultBevelSize
	}
	if s.BevelSegments <= 0 {
		s.BevelSegments = defaultBevelSegments
	}
	return s
}

// ring is one cross-section of the sweep: the contour pushed out by offset
// along its normals, placed at z.
type ring struct {
	z, offset float64
}

// sweepRings lists the cross-sections from the back cap to the front cap.
// Without a bevel there are exactly two: z = 0 and z = depth.
func (s ExtrusionSpec) sweepRings() []ring {
	if !s.Bevel {
		return []ring{{0, 0}, {s.Depth, 0}}
	}
	bs := s.BevelSegments
	rings := make([]ring, 0, 2*(bs+1))
	for k := 0; k <= bs; k++ {
		a := float64(k) / float64(bs) * math.Pi / 2
		rings = append(rings, ring{
			z:      -s.BevelThickness * math.Cos(a),
			offset: s.BevelSize * math.Sin(a),
		})
	}
	for k := bs; k >= 0; k-- {
		a := float64(k) / float64(bs) * math.Pi / 2
		rings = append(rings, ring{
			z:      s.Depth + s.BevelThickness*math.Cos(a),
			offset: s.BevelSize * math.Sin(a),
		})
	}
	return rings
}

// ExtrudeGeometry sweeps the profile along +Z by spec.Depth and returns a
// closed solid centered on the origin. Caps are ear-clipped so concave
// profiles are supported.
func ExtrudeGeometry(p Profile, spec ExtrusionSpec) (*Geometry, error) {
	if err := requirePositive("extrusion depth", spec.Depth); err != nil {
		return nil, err
	}
	spec = spec.withDefaults()

	contour := p.Points(spec.CurveSegments)
	if len(contour) < 3 {
		return nil, &ParamError{Param: "profile", Value: len(contour), Reason: "fewer than 3 distinct points"}
	}
	if signedArea(contour) < 0 {
		reverseVec2(contour)
	}
	var normals []mgl64.Vec2
	if spec.Bevel {
		normals = contourNormals(contour)
	}

	n := len(contour)
	rings := spec.sweepRings()
	g := &Geometry{
		Positions: make([]mgl64.Vec3, 0, n*len(rings)),
		RingSize:  n,
		Rings:     len(rings),
	}
	for _, r := range rings {
		for i, v := range contour {
			if r.offset != 0 {
				v = v.Add(normals[i].Mul(r.offset))
			}
			g.Positions = append(g.Positions, mgl64.Vec3{v[0], v[1], r.z})
		}
	}

	// Side walls between consecutive rings.
	for r := 0; r < len(rings)-1; r++ {
		base := uint32(r * n)
		next := uint32((r + 1) * n)
		for i := 0; i < n; i++ {
			j := uint32((i + 1) % n)
			g.addQuad(base+uint32(i), base+j, next+j, next+uint32(i))
		}
	}

	// Caps: the back cap faces -Z so its winding is reversed.
	tris := triangulate(contour)
	back := uint32(0)
	front := uint32((len(rings) - 1) * n)
	for t := 0; t+2 < len(tris); t += 3 {
		a, b, c := uint32(tris[t]), uint32(tris[t+1]), uint32(tris[t+2])
		g.addTriangle(back+a, back+c, back+b)
		g.addTriangle(front+a, front+b, front+c)
	}

	g.Center()
	return g, nil
}

// Extrude builds a centered mesh node from a profile.
func Extrude(name string, p Profile, spec ExtrusionSpec, mat Material) (*Node, error) {
	g, err := ExtrudeGeometry(p, spec)
	if err != nil {
		return nil, err
	}
	return NewMesh(name, g, mat), nil
}

// contourNormals returns the outward miter normal at each vertex of a
// counter-clockwise contour. The miter is clamped to twice the edge offset
// so sharp corners do not spike.
func contourNormals(pts []mgl64.Vec2) []mgl64.Vec2 {
	n := len(pts)
	out := make([]mgl64.Vec2, n)
	for i := range pts {
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		n0 := outwardNormal(prev, pts[i])
		n1 := outwardNormal(pts[i], next)
		m := n0.Add(n1)
		if l := m.Len(); l > 1e-10 {
			m = m.Mul(1 / l)
		} else {
			m = n0
		}
		if dot := n0.Dot(m); dot > 0.1 {
			m = m.Mul(math.Min(1/dot, 2))
		}
		out[i] = m
	}
	return out
}

// outwardNormal returns the unit right-hand normal of the edge a->b, which
// points outward for a counter-clockwise contour.
func outwardNormal(a, b mgl64.Vec2) mgl64.Vec2 {
	d := b.Sub(a)
	l := d.Len()
	if l < 1e-10 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{d[1] / l, -d[0] / l}
}

func reverseVec2(s []mgl64.Vec2) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
