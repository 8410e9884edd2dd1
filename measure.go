package trellis

import "github.com/go-gl/mathgl/mgl64"

// Bounds returns the axis-aligned box of every mesh vertex in n's subtree,
// expressed in the coordinate space of n's parent (n's own transform is
// applied). For a detached node this is world space.
//
// Bounds is recomputed from geometry on every call. Layout code must call it
// again after any structural change rather than keep an earlier result.
func Bounds(n *Node) Box {
	return subtreeBounds(n, n.LocalMatrix())
}

// LocalBounds is like Bounds but in n's own coordinate space.
func LocalBounds(n *Node) Box {
	return subtreeBounds(n, mgl64.Ident4())
}

// WorldBounds is like Bounds but composes every ancestor transform too.
func WorldBounds(n *Node) Box {
	return subtreeBounds(n, n.WorldMatrix())
}

// Measure returns the size of Bounds(n).
func Measure(n *Node) Extent {
	return Bounds(n).Size()
}

func subtreeBounds(n *Node, m mgl64.Mat4) Box {
	b := EmptyBox()
	if n.Type == NodeTypeMesh && n.Geometry != nil {
		for _, p := range n.Geometry.Positions {
			b = b.ExtendPoint(transformPoint(m, p))
		}
	}
	for _, c := range n.children {
		b = b.Union(subtreeBounds(c, m.Mul4(c.LocalMatrix())))
	}
	return b
}
