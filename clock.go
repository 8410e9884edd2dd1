package trellis

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	faceDepth      = 0.05
	handWidth      = 0.1
	handDepth      = 0.2
	pedestalHeight = 50.0

	// MinuteHandPeriod is how long the minute hand takes for one turn in
	// the animated clock. The hour hand is twelve times slower.
	MinuteHandPeriod = 4 * time.Second
)

var (
	faceColor     = Hex(0xcccccc)
	handColor     = Hex(0x282832)
	headColor     = Hex(0xe1e1be)
	pedestalColor = Hex(0x8b5a2b)
)

// ClockParams are the layout inputs of Clock.
type ClockParams struct {
	Radius float64
	// Nodes is the number of sides of the face polygon.
	Nodes int
}

// Validate checks the structural preconditions of a clock.
func (p ClockParams) Validate() error {
	if err := requirePositive("clock radius", p.Radius); err != nil {
		return err
	}
	if p.Nodes < 3 {
		return &ParamError{Param: "face nodes", Value: p.Nodes, Reason: "must be at least 3"}
	}
	return nil
}

// Clock is a built clock tower plus handles to its moving parts.
type Clock struct {
	Root   *Node
	Face   *Node
	Hour   *Node
	Minute *Node
}

// FaceProfile returns a regular polygon of n sides and circumradius r.
func FaceProfile(r float64, n int) Profile {
	pts := make([]ControlPoint, n)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) / float64(n) * 2 * math.Pi)
		pts[i] = Pt(r*cos, r*sin)
	}
	return MustProfile(pts)
}

// hand returns a hand of the given length whose pivot is at its base.
func hand(name string, length float64) *Node {
	g := BoxGeometry(handWidth, length, handDepth)
	g.Translate(mgl64.Vec3{0, length / 2, 0})
	return NewMesh(name, g, Material{Color: handColor})
}

// NewClock builds a clock tower: a polygonal face with two hands, a cubic
// head behind the face and a tall pedestal under the head. The tower stands
// on y = 0, centered on X and Z.
func NewClock(p ClockParams) (*Clock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	profile := FaceProfile(p.Radius, p.Nodes)
	if err := debugValidate("clock face", profile); err != nil {
		return nil, err
	}

	r := p.Radius
	face := mustExtrude("face", profile, ExtrusionSpec{Depth: faceDepth}, Material{Color: faceColor})
	minute := hand("minute", r)
	hour := hand("hour", r/2)
	head := NewBox("head", 3*r, 3*r, 3*r, Material{Color: headColor})
	pedestal := NewBox("pedestal", 2.5*r, pedestalHeight, 2.5*r, Material{Color: pedestalColor})

	// Hands pivot on the face center; their depth only stacks them in front.
	inFront := func(self Extent, placed []*Node) mgl64.Vec3 {
		b := Bounds(placed[len(placed)-1])
		return mgl64.Vec3{0, 0, b.Max[2] + self.Z/2}
	}
	root := NewAssembly("clock").
		Add(face, nil).
		Add(minute, inFront).
		Add(hour, inFront).
		Add(head, func(self Extent, placed []*Node) mgl64.Vec3 {
			b := Bounds(placed[0])
			return mgl64.Vec3{0, 0, b.Min[2] - self.Z/2}
		}).
		Add(pedestal, func(self Extent, placed []*Node) mgl64.Vec3 {
			c := Bounds(placed[3]).Center()
			return mgl64.Vec3{c[0], c[1] - self.Y/2, c[2]}
		}).
		Vertical(AlignBase(0)).
		Build()

	return &Clock{Root: root, Face: face, Hour: hour, Minute: minute}, nil
}

// Animators returns spinners that turn both hands clockwise, the minute
// hand once per minutePeriod.
func (c *Clock) Animators(minutePeriod time.Duration) []*Animator {
	return []*Animator{
		Spin(c.Minute, AxisZ, minutePeriod, true),
		Spin(c.Hour, AxisZ, 12*minutePeriod, true),
	}
}
