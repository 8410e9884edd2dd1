package trellis

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	floorDepth  = 0.1
	columnWidth = 0.1
)

var (
	floorColor  = Hex(0xff0000)
	columnColor = Hex(0x00ff00)
)

// columnAnchors are column positions as fractions of the floor's half
// footprint (x across the wings, z front to back). They land inside the two
// wings and along the central spine of the U-shaped floor plate.
var columnAnchors = [6]mgl64.Vec2{
	{-5.0 / 5.5, 2.0 / 2.5},
	{-2.5 / 5.5, -2.0 / 2.5},
	{2.5 / 5.5, -2.0 / 2.5},
	{5.0 / 5.5, 2.0 / 2.5},
	{2.0 / 5.5, 0.5 / 2.5},
	{-2.0 / 5.5, 0.5 / 2.5},
}

// BuildingParams are the layout inputs of Building.
type BuildingParams struct {
	Levels      int
	LevelHeight float64
}

// Validate checks the structural preconditions of a building.
func (p BuildingParams) Validate() error {
	if err := requireCount("level count", p.Levels); err != nil {
		return err
	}
	return requirePositive("level height", p.LevelHeight)
}

// FloorProfile is the U-shaped floor plate outline: two wings joined by a
// tapered spine. The last point repeats the first and is dropped.
func FloorProfile() Profile {
	return MustProfile([]ControlPoint{
		Pt(-5.5, -2.5),
		Pt(-5.5, -0.5),
		Pt(-2.5, 2.5),
		Pt(2.5, 2.5),
		Pt(5.5, -0.5),
		Pt(5.5, -2.5),
		Pt(3.5, -2.5),
		Pt(1.5, -0.5),
		Pt(-1.5, -0.5),
		Pt(-3.5, -2.5),
		Pt(-5.5, -2.5),
	})
}

// Floor extrudes one floor plate and lays it flat at height yOffset.
func Floor(yOffset float64) *Node {
	n := mustExtrude("floor", FloorProfile(), ExtrusionSpec{Depth: floorDepth}, Material{Color: floorColor})
	n.Rotation[0] = -math.Pi / 2
	n.Position[1] = yOffset
	return n
}

// floorFootprint is the half size of a laid-flat floor plate on X and Z.
func floorFootprint() mgl64.Vec2 {
	lo, hi := FloorProfile().Bounds()
	return hi.Sub(lo).Mul(0.5)
}

// Beams returns the six columns of one level, standing on yOffset and
// levelHeight tall.
func Beams(yOffset, levelHeight float64) (*Node, error) {
	if err := requirePositive("level height", levelHeight); err != nil {
		return nil, err
	}
	half := floorFootprint()
	g := NewGroup("beams")
	for i, a := range columnAnchors {
		c := NewBox(fmt.Sprintf("column-%d", i), columnWidth, levelHeight, columnWidth, Material{Color: columnColor})
		c.Position = mgl64.Vec3{a[0] * half[0], yOffset + levelHeight/2, a[1] * half[1]}
		g.AddChild(c)
	}
	return g, nil
}

// Building stacks p.Levels floors, each with its ring of columns. Floor i
// sits at i * p.LevelHeight; the result is centered on X and Z with its
// vertical layout unchanged.
func Building(p BuildingParams) (*Node, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := debugValidate("floor", FloorProfile()); err != nil {
		return nil, err
	}

	a := NewAssembly("building")
	for i := 0; i < p.Levels; i++ {
		y := float64(i) * p.LevelHeight
		floor := Floor(y)
		floor.UserData = i
		beams, err := Beams(y, p.LevelHeight)
		if err != nil {
			return nil, err
		}
		beams.UserData = i
		a.Add(floor, nil).Add(beams, nil)
	}
	return a.Vertical(AlignKeep).Build(), nil
}
