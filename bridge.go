package trellis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	supportDepth = 1.0
	deckHeight   = 0.5
	// deckInset is how far the deck's top sits below the top of the supports.
	deckInset = 0.5
)

var (
	supportColor = Hex(0xfc4425)
	deckColor    = Hex(0x727272)
	seaColor     = Hex(0x006994)
)

// BridgeParams are the layout inputs of Bridge.
type BridgeParams struct {
	// Beams is the number of support arches per side.
	Beams int
	// Width is the clear span between the two rows of supports.
	Width float64
	// Height is how far each support leg reaches below the deck line.
	Height float64
}

// Validate checks the structural preconditions of a bridge.
func (p BridgeParams) Validate() error {
	if err := requireCount("beam count", p.Beams); err != nil {
		return err
	}
	if err := requirePositive("span width", p.Width); err != nil {
		return err
	}
	return requirePositive("support height", p.Height)
}

// supportBeamPoints is the arch outline: a top chord one unit thick with
// quadratic shoulders curving down into a one-unit leg that reaches -height.
func supportBeamPoints(height float64) []ControlPoint {
	return []ControlPoint{
		Pt(0, 0),
		Curve(4, 0, 4, -4),
		Pt(4, -height),
		Pt(5, -height),
		Pt(5, -4),
		Curve(5, 0, 9, 0),
		Pt(9, 1),
		Pt(0, 1),
	}
}

// SupportBeamProfile returns the cross-section of one bridge support.
func SupportBeamProfile(height float64) (Profile, error) {
	if err := requirePositive("support height", height); err != nil {
		return Profile{}, err
	}
	return BuildProfile(supportBeamPoints(height))
}

// SupportBeam extrudes one support arch, centered on the origin.
func SupportBeam(height float64) (*Node, error) {
	p, err := SupportBeamProfile(height)
	if err != nil {
		return nil, err
	}
	if err := debugValidate("support beam", p); err != nil {
		return nil, err
	}
	return Extrude("support", p, ExtrusionSpec{Depth: supportDepth}, Material{Color: supportColor})
}

// SupportBeams tiles count support arches along X.
func SupportBeams(count int, height float64) (*Node, error) {
	if err := requireCount("beam count", count); err != nil {
		return nil, err
	}
	if err := requirePositive("support height", height); err != nil {
		return nil, err
	}
	if err := debugValidate("support beam", MustProfile(supportBeamPoints(height))); err != nil {
		return nil, err
	}
	return Replicate("supports", func() *Node {
		return mustExtrude("support", MustProfile(supportBeamPoints(height)),
			ExtrusionSpec{Depth: supportDepth}, Material{Color: supportColor})
	}, count, AxisX)
}

// Bridge builds two rows of support arches separated by p.Width with a deck
// between them. The result is centered on X and Z and rests on y = 0.
// Parameters are validated before any geometry is generated.
func Bridge(p BridgeParams) (*Node, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	back, err := SupportBeams(p.Beams, p.Height)
	if err != nil {
		return nil, err
	}
	front, err := SupportBeams(p.Beams, p.Height)
	if err != nil {
		return nil, err
	}
	// The deck runs the full measured length of a row.
	row := Measure(back)
	deck := NewBox("deck", row.X, deckHeight, p.Width, Material{Color: deckColor})

	width := p.Width
	return NewAssembly("bridge").
		Add(back, nil).
		Add(front, func(self Extent, placed []*Node) mgl64.Vec3 {
			b := Bounds(placed[0])
			return mgl64.Vec3{0, 0, b.Max[2] + width + self.Z/2}
		}).
		Add(deck, func(self Extent, placed []*Node) mgl64.Vec3 {
			b := Bounds(placed[0])
			c := b.Center()
			return mgl64.Vec3{c[0], b.Max[1] - deckInset - self.Y/2, b.Max[2] + width/2}
		}).
		Vertical(AlignBase(0)).
		Build(), nil
}

// VehicleFits reports whether a vehicle fits between the bridge's support
// rows, leaving at least one unit of support depth on either side.
func VehicleFits(bridge, vehicle *Node) bool {
	return Measure(bridge).Z-2 >= Measure(vehicle).Z
}

// Sea returns a square water plane of the given size lying in the XZ plane.
func Sea(size float64) *Node {
	n := NewMesh("sea", PlaneGeometry(size, size), Material{Color: seaColor, DoubleSided: true})
	n.Rotation[0] = -math.Pi / 2
	return n
}

// mustExtrude is Extrude for fixed profiles and depths known to be valid.
func mustExtrude(name string, p Profile, spec ExtrusionSpec, mat Material) *Node {
	n, err := Extrude(name, p, spec, mat)
	if err != nil {
		panic(err)
	}
	return n
}
