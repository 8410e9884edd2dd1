package trellis

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Light is a hemisphere light (sky above, ground below) plus one directional
// key light. Faces are flat shaded from their world normal.
type Light struct {
	Sky        Color
	Ground     Color
	Hemisphere float64
	// Direction points from the scene toward the key light.
	Direction mgl64.Vec3
	Key       float64
}

// DefaultLight is a warm sky, olive ground and a key light from the upper
// front right.
func DefaultLight() Light {
	return Light{
		Sky:        Hex(0xffffbb),
		Ground:     Hex(0x68684d),
		Hemisphere: 0.7,
		Direction:  mgl64.Vec3{0.5, 1, 0.75},
		Key:        0.45,
	}
}

// shade returns base lit by l on a face with unit normal n.
func (l Light) shade(base Color, n mgl64.Vec3) Color {
	amb := l.Ground.Lerp(l.Sky, 0.5*n[1]+0.5)
	key := 0.0
	if d := l.Direction.Len(); d > 0 {
		key = math.Max(0, n.Dot(l.Direction.Mul(1/d))) * l.Key
	}
	return Color{
		R: math.Min(1, base.R*(amb.R*l.Hemisphere+key)),
		G: math.Min(1, base.G*(amb.G*l.Hemisphere+key)),
		B: math.Min(1, base.B*(amb.B*l.Hemisphere+key)),
		A: base.A,
	}
}

// triangle is one projected, shaded face ready for submission.
type triangle struct {
	pts   [3]mgl64.Vec2
	depth float64
	color Color
	order int
}

// frameView is everything the collector needs from the camera and target.
type frameView struct {
	vp     mgl64.Mat4
	eye    mgl64.Vec3
	width  float64
	height float64
	light  Light
}

// collectTriangles walks the visible tree under root and appends every
// front-facing face that lies entirely in front of the near plane.
func collectTriangles(dst []triangle, root *Node, v frameView, stats *debugStats) []triangle {
	var walk func(n *Node, parent mgl64.Mat4)
	walk = func(n *Node, parent mgl64.Mat4) {
		if !n.Visible {
			return
		}
		world := parent.Mul4(n.LocalMatrix())
		if n.Type == NodeTypeMesh && n.Geometry != nil {
			stats.meshCount++
			dst = appendMeshTriangles(dst, n, world, v, stats)
		}
		for _, c := range n.children {
			walk(c, world)
		}
	}
	walk(root, mgl64.Ident4())
	return dst
}

func appendMeshTriangles(dst []triangle, n *Node, world mgl64.Mat4, v frameView, stats *debugStats) []triangle {
	g := n.Geometry
	var wp [3]mgl64.Vec3
	for t := 0; t < g.TriangleCount(); t++ {
		for k := 0; k < 3; k++ {
			wp[k] = transformPoint(world, g.Positions[g.Indices[t*3+k]])
		}
		normal := triangleNormal(wp[0], wp[1], wp[2])
		if normal == (mgl64.Vec3{}) {
			continue
		}
		centroid := wp[0].Add(wp[1]).Add(wp[2]).Mul(1.0 / 3)
		if normal.Dot(centroid.Sub(v.eye)) >= 0 {
			if !n.Material.DoubleSided {
				stats.culledCount++
				continue
			}
			normal = normal.Mul(-1)
		}

		tri := triangle{order: len(dst)}
		visible := true
		for k := 0; k < 3; k++ {
			p, depth, ok := project(v.vp, wp[k], v.width, v.height)
			if !ok {
				visible = false
				break
			}
			tri.pts[k] = p
			tri.depth += depth / 3
		}
		if !visible {
			stats.culledCount++
			continue
		}
		tri.color = v.light.shade(n.Material.Color, normal)
		dst = append(dst, tri)
	}
	return dst
}

// --- Merge sort ---

// triangleLessOrEqual orders far faces first. Using <= on order keeps
// equal-depth faces in tree order.
func triangleLessOrEqual(a, b triangle) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// sortTriangles sorts tris back to front in place using buf as scratch space
// and returns the (possibly grown) scratch buffer. Bottom-up merge sort: zero
// allocations once buf reaches the high-water mark.
func sortTriangles(tris, buf []triangle) []triangle {
	n := len(tris)
	if n <= 1 {
		return buf
	}
	if cap(buf) < n {
		buf = make([]triangle, n)
	}
	buf = buf[:n]

	a, b := tris, buf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			mid := min(i+width, n)
			hi := min(i+2*width, n)
			mergeRun(a, b, i, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(tris, buf)
	}
	return buf
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []triangle, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if triangleLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:hi], src[i:mid])
	copy(dst[k:hi], src[j:hi])
}

// --- Submission ---

// whitePixelImage is created on first draw; ebiten images cannot be created
// before the game loop starts.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// appendTriangleVertices appends the vertices and indices of tris.
func appendTriangleVertices(verts []ebiten.Vertex, inds []uint32, tris []triangle) ([]ebiten.Vertex, []uint32) {
	for _, t := range tris {
		base := uint32(len(verts))
		r, g, b, a := float32(t.color.R), float32(t.color.G), float32(t.color.B), float32(t.color.A)
		for _, p := range t.pts {
			verts = append(verts, ebiten.Vertex{
				DstX:   float32(p[0]),
				DstY:   float32(p[1]),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: r * a,
				ColorG: g * a,
				ColorB: b * a,
				ColorA: a,
			})
		}
		inds = append(inds, base, base+1, base+2)
	}
	return verts, inds
}

// submitTriangles draws the sorted triangles in one DrawTriangles32 call.
func (s *Scene) submitTriangles(target *ebiten.Image) {
	if len(s.tris) == 0 {
		return
	}
	s.batchVerts, s.batchInds = appendTriangleVertices(s.batchVerts[:0], s.batchInds[:0], s.tris)

	var op ebiten.DrawTrianglesOptions
	target.DrawTriangles32(s.batchVerts, s.batchInds, ensureWhitePixel(), &op)
}
