package trellis

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// assertClose is assertNear with a tolerance loose enough for values that
// went through a few matrix products.
func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertExtent(t *testing.T, name string, got, want Extent) {
	t.Helper()
	assertVec3(t, name, got.Vec3(), want.Vec3())
}

func TestBoundsAppliesOwnTransform(t *testing.T) {
	n := NewBox("box", 2, 4, 6, Material{})
	n.SetPosition(1, 0, 0)

	b := Bounds(n)
	assertVec3(t, "min", b.Min, mgl64.Vec3{0, -2, -3})
	assertVec3(t, "max", b.Max, mgl64.Vec3{2, 2, 3})

	lb := LocalBounds(n)
	assertVec3(t, "local min", lb.Min, mgl64.Vec3{-1, -2, -3})
	assertVec3(t, "local max", lb.Max, mgl64.Vec3{1, 2, 3})
}

func TestWorldBoundsComposesAncestors(t *testing.T) {
	parent := NewGroup("parent")
	parent.SetPosition(0, 10, 0)
	n := NewBox("box", 2, 4, 6, Material{})
	n.SetPosition(1, 0, 0)
	parent.AddChild(n)

	b := WorldBounds(n)
	assertVec3(t, "min", b.Min, mgl64.Vec3{0, 8, -3})
	assertVec3(t, "max", b.Max, mgl64.Vec3{2, 12, 3})

	// Bounds stays in the parent's space.
	assertVec3(t, "parent-space min", Bounds(n).Min, mgl64.Vec3{0, -2, -3})
}

func TestBoundsUnionsChildren(t *testing.T) {
	g := NewGroup("g")
	a := NewBox("a", 1, 1, 1, Material{})
	b := NewBox("b", 1, 1, 1, Material{})
	b.SetPosition(4, 0, 0)
	g.AddChildren(a, b)

	assertExtent(t, "size", Measure(g), Extent{5, 1, 1})
	assertVec3(t, "center", Bounds(g).Center(), mgl64.Vec3{2, 0, 0})
}

func TestBoundsFollowsRotation(t *testing.T) {
	n := NewBox("box", 1, 2, 3, Material{})
	n.SetRotation(-math.Pi/2, 0, 0)
	assertExtent(t, "rotated size", Measure(n), Extent{1, 3, 2})
}

func TestBoundsIsNotCached(t *testing.T) {
	g := NewGroup("g")
	a := NewBox("a", 1, 1, 1, Material{})
	g.AddChild(a)
	before := Measure(g)

	b := NewBox("b", 1, 1, 1, Material{})
	b.SetPosition(0, 3, 0)
	g.AddChild(b)
	after := Measure(g)

	assertExtent(t, "before", before, Extent{1, 1, 1})
	assertExtent(t, "after", after, Extent{1, 4, 1})

	a.SetScale(3, 1, 1)
	assertClose(t, "after scale X", Measure(g).X, 3)
}

func TestMeasureEmptyGroup(t *testing.T) {
	g := NewGroup("empty")
	g.AddChild(NewGroup("also empty"))
	if !Bounds(g).Empty() {
		t.Error("bounds of a tree without meshes should be empty")
	}
	if got := Measure(g); got != (Extent{}) {
		t.Errorf("Measure = %v, want zero extent", got)
	}
}

func TestBoxHelpers(t *testing.T) {
	b := EmptyBox()
	if !b.Empty() {
		t.Fatal("EmptyBox should be empty")
	}
	b = b.ExtendPoint(mgl64.Vec3{1, 2, 3})
	if b.Empty() || b.Size() != (Extent{}) {
		t.Errorf("single point box = %v, want degenerate", b)
	}
	b = b.Union(Box{Min: mgl64.Vec3{-1, 0, 0}, Max: mgl64.Vec3{0, 0, 0}})
	assertExtent(t, "union size", b.Size(), Extent{2, 2, 3})
	if got := b.Union(EmptyBox()); got != b {
		t.Errorf("union with empty = %v, want %v", got, b)
	}
	if got := EmptyBox().Union(b); got != b {
		t.Errorf("empty union = %v, want %v", got, b)
	}
	corners := b.Corners()
	if corners[0] != b.Min || corners[7] != b.Max {
		t.Errorf("corners = %v", corners)
	}
}

func TestExtentAlong(t *testing.T) {
	e := Extent{1, 2, 3}
	if e.Along(AxisX) != 1 || e.Along(AxisY) != 2 || e.Along(AxisZ) != 3 {
		t.Errorf("Along = %v %v %v", e.Along(AxisX), e.Along(AxisY), e.Along(AxisZ))
	}
	if e.Half() != (mgl64.Vec3{0.5, 1, 1.5}) {
		t.Errorf("Half = %v", e.Half())
	}
}
