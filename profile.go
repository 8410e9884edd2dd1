package trellis

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/peterstace/simplefeatures/geom"
)

// defaultCurveSegments is the number of samples taken along each quadratic
// edge when a profile is turned into a polygon.
const defaultCurveSegments = 12

// ControlPoint is a vertex of a 2D profile. A non-nil Control makes the edge
// leading to this point a quadratic Bézier through Control.
type ControlPoint struct {
	X, Y    float64
	Control *mgl64.Vec2
}

// Pt returns a control point reached by a straight edge.
func Pt(x, y float64) ControlPoint {
	return ControlPoint{X: x, Y: y}
}

// Curve returns a control point reached by a quadratic edge through (cx, cy).
func Curve(cx, cy, x, y float64) ControlPoint {
	return ControlPoint{X: x, Y: y, Control: &mgl64.Vec2{cx, cy}}
}

// Vec2 returns the point's position.
func (p ControlPoint) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// Segment is one edge of a profile contour.
type Segment struct {
	From, To mgl64.Vec2
	Control  mgl64.Vec2
	Curved   bool
}

// At evaluates the segment at t in [0, 1].
func (s Segment) At(t float64) mgl64.Vec2 {
	if !s.Curved {
		return s.From.Add(s.To.Sub(s.From).Mul(t))
	}
	u := 1 - t
	return mgl64.Vec2{
		u*u*s.From[0] + 2*u*t*s.Control[0] + t*t*s.To[0],
		u*u*s.From[1] + 2*u*t*s.Control[1] + t*t*s.To[1],
	}
}

// Profile is a closed planar contour made of straight and quadratic edges.
// The last segment always returns to the first point.
type Profile struct {
	segments []Segment
}

// BuildProfile turns an ordered list of control points into a closed
// contour. The first point is the move-to origin; every following point adds
// an edge from the current cursor. The contour closes from the last point
// back to the first, through the first point's control point if it has one.
// A trailing point equal to the first is treated as an explicit close.
//
// Self-intersecting input is accepted; see Validate.
func BuildProfile(points []ControlPoint) (Profile, error) {
	if n := len(points); n > 3 && points[n-1].Control == nil && points[n-1].Vec2() == points[0].Vec2() {
		points = points[:n-1]
	}
	if len(points) < 3 {
		return Profile{}, &ParamError{Param: "profile points", Value: len(points), Reason: "need at least 3"}
	}

	segs := make([]Segment, 0, len(points))
	cursor := points[0].Vec2()
	for _, p := range points[1:] {
		segs = append(segs, newSegment(cursor, p))
		cursor = p.Vec2()
	}
	segs = append(segs, newSegment(cursor, points[0]))
	return Profile{segments: segs}, nil
}

func newSegment(from mgl64.Vec2, to ControlPoint) Segment {
	s := Segment{From: from, To: to.Vec2()}
	if to.Control != nil {
		s.Control = *to.Control
		s.Curved = true
	}
	return s
}

// MustProfile is BuildProfile for fixed point lists known to be valid.
// Panics on error.
func MustProfile(points []ControlPoint) Profile {
	p, err := BuildProfile(points)
	if err != nil {
		panic(err)
	}
	return p
}

// Segments returns the contour edges. The returned slice MUST NOT be mutated.
func (p Profile) Segments() []Segment {
	return p.segments
}

// Points samples the contour into a polygon without a repeated closing
// vertex. Straight edges contribute their endpoint only; quadratic edges are
// split into curveSegments pieces (defaultCurveSegments when <= 0).
// Consecutive duplicate vertices are dropped.
func (p Profile) Points(curveSegments int) []mgl64.Vec2 {
	if len(p.segments) == 0 {
		return nil
	}
	if curveSegments <= 0 {
		curveSegments = defaultCurveSegments
	}
	first := p.segments[0].From
	out := []mgl64.Vec2{first}
	push := func(v mgl64.Vec2) {
		if v.ApproxEqual(out[len(out)-1]) {
			return
		}
		out = append(out, v)
	}
	last := len(p.segments) - 1
	for i, s := range p.segments {
		if s.Curved {
			for k := 1; k < curveSegments; k++ {
				push(s.At(float64(k) / float64(curveSegments)))
			}
		}
		if i != last {
			push(s.To)
		}
	}
	if len(out) > 1 && out[len(out)-1].ApproxEqual(first) {
		out = out[:len(out)-1]
	}
	return out
}

// Area returns the signed area of the sampled contour. Positive means
// counter-clockwise.
func (p Profile) Area() float64 {
	return signedArea(p.Points(0))
}

// Bounds returns the 2D min and max corners of the sampled contour.
func (p Profile) Bounds() (lo, hi mgl64.Vec2) {
	pts := p.Points(0)
	if len(pts) == 0 {
		return
	}
	lo, hi = pts[0], pts[0]
	for _, v := range pts[1:] {
		lo = mgl64.Vec2{math.Min(lo[0], v[0]), math.Min(lo[1], v[1])}
		hi = mgl64.Vec2{math.Max(hi[0], v[0]), math.Max(hi[1], v[1])}
	}
	return lo, hi
}

// Validate reports ErrDegenerateGeometry when the sampled contour is not a
// simple polygon with non-zero area.
func (p Profile) Validate() error {
	pts := p.Points(0)
	if len(pts) < 3 {
		return fmt.Errorf("%w: %d distinct contour points", ErrDegenerateGeometry, len(pts))
	}
	coords := make([]float64, 0, (len(pts)+1)*2)
	for _, v := range pts {
		coords = append(coords, v[0], v[1])
	}
	coords = append(coords, pts[0][0], pts[0][1])

	ring, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}
	if poly.Area() < 1e-12 {
		return fmt.Errorf("%w: zero area", ErrDegenerateGeometry)
	}
	return nil
}

// signedArea is the shoelace area of a closed polygon.
func signedArea(pts []mgl64.Vec2) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return a / 2
}
