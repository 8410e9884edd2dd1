package trellis

import "github.com/go-gl/mathgl/mgl64"

// triangulate splits a simple counter-clockwise polygon into triangles by ear
// clipping and returns index triples into pts. Concave polygons are handled;
// if no ear can be found (self-intersecting input) the remainder is closed
// with a fan so the call always terminates.
func triangulate(pts []mgl64.Vec2) []int {
	n := len(pts)
	if n < 3 {
		return nil
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	out := make([]int, 0, (n-2)*3)

	for len(remaining) > 3 {
		m := len(remaining)
		clipped := false
		for i := 0; i < m; i++ {
			prev := remaining[(i+m-1)%m]
			cur := remaining[i]
			next := remaining[(i+1)%m]
			if !isEar(pts, remaining, prev, cur, next) {
				continue
			}
			out = append(out, prev, cur, next)
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			for i := 1; i < len(remaining)-1; i++ {
				out = append(out, remaining[0], remaining[i], remaining[i+1])
			}
			return out
		}
	}
	return append(out, remaining[0], remaining[1], remaining[2])
}

// isEar reports whether the corner prev-cur-next is convex and contains no
// other remaining vertex.
func isEar(pts []mgl64.Vec2, remaining []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	if cross2(a, b, c) <= 1e-12 {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		p := pts[idx]
		if p.ApproxEqual(a) || p.ApproxEqual(b) || p.ApproxEqual(c) {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// cross2 is the z component of (b-a) x (c-a); positive for a left turn.
func cross2(a, b, c mgl64.Vec2) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// pointInTriangle reports whether p lies inside or on the edges of the
// counter-clockwise triangle abc.
func pointInTriangle(p, a, b, c mgl64.Vec2) bool {
	return cross2(a, b, p) >= 0 && cross2(b, c, p) >= 0 && cross2(c, a, p) >= 0
}
