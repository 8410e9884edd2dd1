package trellis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	wheelRadius   = 0.5
	wheelWidth    = 0.1
	wheelSegments = 32
)

var (
	bodyColor  = Hex(0xff0000)
	cabColor   = Hex(0xff0000)
	wheelColor = Hex(0x000000)
)

// Vehicle builds a box car: a 3x1x2 body, a cab on top and four wheels at
// the body's lower corners. The body's center is the origin.
func Vehicle() *Node {
	body := NewBox("body", 3, 1, 2, Material{Color: bodyColor})
	cab := NewBox("cab", 1.75, 1, 2, Material{Color: cabColor})

	a := NewAssembly("vehicle").
		Add(body, nil).
		Add(cab, func(self Extent, placed []*Node) mgl64.Vec3 {
			b := Measure(placed[0])
			return mgl64.Vec3{0, b.Y/2 + self.Y/2, 0}
		})

	for _, corner := range [4][2]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		sx, sz := corner[0], corner[1]
		wheel := NewCylinder("wheel", wheelRadius, wheelRadius, wheelWidth, wheelSegments,
			Material{Color: wheelColor, DoubleSided: true})
		wheel.Rotation[0] = math.Pi / 2
		a.Add(wheel, func(self Extent, placed []*Node) mgl64.Vec3 {
			b := Measure(placed[0])
			return mgl64.Vec3{sx * (b.X/2 - self.X/2), -b.Y / 2, sz * b.Z / 2}
		})
	}
	return a.Vertical(AlignKeep).Build()
}
