package trellis

import "github.com/go-gl/mathgl/mgl64"

// Placement computes a part's position from its own measured extent and the
// parts already placed in the assembly (in insertion order). Rules that need
// a neighbour's size measure it through placed; sizes are never cached.
type Placement func(self Extent, placed []*Node) mgl64.Vec3

// At places a part at a fixed position. Use it only for parts whose position
// does not depend on any measured size.
func At(pos mgl64.Vec3) Placement {
	return func(Extent, []*Node) mgl64.Vec3 { return pos }
}

// VerticalAlign selects how an assembly is positioned on the Y axis after
// horizontal recentering.
type VerticalAlign struct {
	mode  uint8
	baseY float64
}

const (
	alignKeep uint8 = iota
	alignCenter
	alignBase
)

var (
	// AlignKeep leaves the assembly's vertical position untouched.
	AlignKeep = VerticalAlign{mode: alignKeep}
	// AlignCenter centers the assembly vertically on the origin as well.
	AlignCenter = VerticalAlign{mode: alignCenter}
)

// AlignBase moves the assembly so the bottom of its bounds sits at y.
func AlignBase(y float64) VerticalAlign {
	return VerticalAlign{mode: alignBase, baseY: y}
}

type part struct {
	node  *Node
	place Placement
}

// Assembly composes sub-parts into one group. Parts are placed in insertion
// order; after the last one the group is recentered on X and Z and aligned
// vertically.
type Assembly struct {
	name     string
	parts    []part
	vertical VerticalAlign
}

// NewAssembly starts an empty assembly. The default vertical alignment is
// AlignKeep.
func NewAssembly(name string) *Assembly {
	return &Assembly{name: name, vertical: AlignKeep}
}

// Add appends a part. A nil placement keeps the part's current position.
func (a *Assembly) Add(n *Node, place Placement) *Assembly {
	a.parts = append(a.parts, part{node: n, place: place})
	return a
}

// Vertical sets the vertical alignment applied by Build.
func (a *Assembly) Vertical(v VerticalAlign) *Assembly {
	a.vertical = v
	return a
}

// Build measures and positions each part, adds it to a new group, and then
// recenters the group. The assembly must not be reused afterwards.
func (a *Assembly) Build() *Node {
	group := NewGroup(a.name)
	placed := make([]*Node, 0, len(a.parts))
	for _, p := range a.parts {
		if p.place != nil {
			p.node.Position = p.place(Measure(p.node), placed)
		}
		group.AddChild(p.node)
		placed = append(placed, p.node)
	}
	offset := Recenter(group, a.vertical)
	extent := Measure(group).Vec3()

	logger.Debug().
		Str("assembly", a.name).
		Int("parts", len(a.parts)).
		Floats64("extent", extent[:]).
		Floats64("offset", offset[:]).
		Msg("composed assembly")
	return group
}

// Recenter translates n so the center of its bounds lies on the origin in X
// and Z, and applies v on Y. Returns the translation that was applied.
func Recenter(n *Node, v VerticalAlign) mgl64.Vec3 {
	b := Bounds(n)
	if b.Empty() {
		return mgl64.Vec3{}
	}
	c := b.Center()
	d := mgl64.Vec3{-c[0], 0, -c[2]}
	switch v.mode {
	case alignCenter:
		d[1] = -c[1]
	case alignBase:
		d[1] = v.baseY - b.Min[1]
	}
	n.Translate(d)
	return d
}
