package trellis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default material color.
var ColorWhite = Color{1, 1, 1, 1}

// Hex converts a 0xRRGGBB value to an opaque Color.
func Hex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// Lerp blends c toward other by t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// RGBA implements color.Color with premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	clamp := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	al := clamp(c.A)
	return uint32(clamp(c.R) * al * 0xffff), uint32(clamp(c.G) * al * 0xffff),
		uint32(clamp(c.B) * al * 0xffff), uint32(al * 0xffff)
}

// Material is the surface description a mesh node is drawn with.
type Material struct {
	Color Color
	// DoubleSided disables back-face culling for this mesh.
	DoubleSided bool
}

// Axis selects one of the three coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Unit returns the unit vector along the axis.
func (a Axis) Unit() mgl64.Vec3 {
	switch a {
	case AxisY:
		return mgl64.Vec3{0, 1, 0}
	case AxisZ:
		return mgl64.Vec3{0, 0, 1}
	default:
		return mgl64.Vec3{1, 0, 0}
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Extent is the axis-aligned size of a mesh or group.
type Extent struct {
	X, Y, Z float64
}

// Along returns the size along the given axis.
func (e Extent) Along(a Axis) float64 {
	switch a {
	case AxisY:
		return e.Y
	case AxisZ:
		return e.Z
	default:
		return e.X
	}
}

// Vec3 returns the extent as a vector.
func (e Extent) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{e.X, e.Y, e.Z}
}

// Half returns half the extent as a vector.
func (e Extent) Half() mgl64.Vec3 {
	return mgl64.Vec3{e.X / 2, e.Y / 2, e.Z / 2}
}

// Box is an axis-aligned bounding box. The zero value is not empty; use
// EmptyBox to start an accumulation.
type Box struct {
	Min, Max mgl64.Vec3
}

// EmptyBox returns a box that contains nothing. Extending it with any point
// yields a degenerate box at that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether the box contains no points.
func (b Box) Empty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExtendPoint grows the box to contain p.
func (b Box) ExtendPoint(p mgl64.Vec3) Box {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	if other.Empty() {
		return b
	}
	if b.Empty() {
		return other
	}
	return b.ExtendPoint(other.Min).ExtendPoint(other.Max)
}

// Size returns the box extent. An empty box has zero extent.
func (b Box) Size() Extent {
	if b.Empty() {
		return Extent{}
	}
	d := b.Max.Sub(b.Min)
	return Extent{X: d[0], Y: d[1], Z: d[2]}
}

// Center returns the midpoint of the box. An empty box is centered at the origin.
func (b Box) Center() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]mgl64.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl64.Vec3{
		{lo[0], lo[1], lo[2]},
		{hi[0], lo[1], lo[2]},
		{lo[0], hi[1], lo[2]},
		{hi[0], hi[1], lo[2]},
		{lo[0], lo[1], hi[2]},
		{hi[0], lo[1], hi[2]},
		{lo[0], hi[1], hi[2]},
		{hi[0], hi[1], hi[2]},
	}
}

// NodeType distinguishes group nodes from mesh nodes.
type NodeType uint8

const (
	NodeTypeGroup NodeType = iota // container with no geometry of its own
	NodeTypeMesh                  // leaf carrying a Geometry and Material
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeGroup:
		return "group"
	case NodeTypeMesh:
		return "mesh"
	default:
		return "unknown"
	}
}
