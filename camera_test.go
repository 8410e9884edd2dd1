package trellis

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func assertVec3Within(t *testing.T, name string, got, want mgl64.Vec3, tol float64) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, tol) {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Position != (mgl64.Vec3{0, 15, 15}) || c.Target != (mgl64.Vec3{}) {
		t.Errorf("Position/Target = %v/%v", c.Position, c.Target)
	}
	if c.Up != (mgl64.Vec3{0, 1, 0}) || c.Fovy != 75 {
		t.Errorf("Up/Fovy = %v/%v", c.Up, c.Fovy)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		t.Errorf("Near/Far = %v/%v", c.Near, c.Far)
	}
}

// --- project ---

func TestProjectTargetToScreenCenter(t *testing.T) {
	c := NewCamera()
	c.Position = mgl64.Vec3{0, 0, 10}
	vp := c.ViewProjection(800.0 / 600)

	p, depth, ok := project(vp, mgl64.Vec3{}, 800, 600)
	if !ok {
		t.Fatal("target should be visible")
	}
	assertClose(t, "x", p[0], 400)
	assertClose(t, "y", p[1], 300)
	assertClose(t, "depth", depth, 10)
}

func TestProjectScreenYPointsDown(t *testing.T) {
	c := NewCamera()
	c.Position = mgl64.Vec3{0, 0, 10}
	vp := c.ViewProjection(1)

	up, _, _ := project(vp, mgl64.Vec3{0, 1, 0}, 100, 100)
	right, _, _ := project(vp, mgl64.Vec3{1, 0, 0}, 100, 100)
	if up[1] >= 50 {
		t.Errorf("world +Y projected to y = %v, want above center", up[1])
	}
	if right[0] <= 50 {
		t.Errorf("world +X projected to x = %v, want right of center", right[0])
	}
}

func TestProjectBehindCamera(t *testing.T) {
	c := NewCamera()
	c.Position = mgl64.Vec3{0, 0, 10}
	vp := c.ViewProjection(1)
	if _, _, ok := project(vp, mgl64.Vec3{0, 0, 20}, 100, 100); ok {
		t.Error("point behind the camera should not project")
	}
	if _, _, ok := project(vp, mgl64.Vec3{0, 0, 9.95}, 100, 100); ok {
		t.Error("point inside the near plane should not project")
	}
}

// --- Frame ---

func TestFrameFitsBox(t *testing.T) {
	c := NewCamera()
	b := Box{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{3, 1, 1}}
	c.Frame(b)

	assertVec3(t, "target", c.Target, mgl64.Vec3{1, 0, 0})
	radius := b.Max.Sub(b.Min).Len() / 2
	dist := radius / math.Sin(mgl64.DegToRad(c.Fovy)/2)
	assertClose(t, "distance", c.Position.Sub(c.Target).Len(), dist)

	// The default camera looks down the (0, 1, 1) diagonal.
	dir := c.Position.Sub(c.Target).Normalize()
	assertVec3(t, "direction", dir, mgl64.Vec3{0, 1, 1}.Normalize())

	const w, h = 1200.0, 800.0
	vp := c.ViewProjection(w / h)
	for i, corner := range b.Corners() {
		p, _, ok := project(vp, corner, w, h)
		if !ok {
			t.Fatalf("corner %d not visible", i)
		}
		if p[0] < -1e-6 || p[0] > w+1e-6 || p[1] < -1e-6 || p[1] > h+1e-6 {
			t.Errorf("corner %d at %v is off screen", i, p)
		}
	}
}

func TestFrameGrowsFarPlane(t *testing.T) {
	c := NewCamera()
	c.Frame(Box{Min: mgl64.Vec3{-1000, -1000, -1000}, Max: mgl64.Vec3{1000, 1000, 1000}})
	if d := c.Position.Sub(c.Target).Len(); c.Far < d {
		t.Errorf("Far = %v, box center at %v", c.Far, d)
	}
}

func TestFrameEmptyBoxIsNoOp(t *testing.T) {
	c := NewCamera()
	before := *c
	c.Frame(EmptyBox())
	if c.Position != before.Position || c.Target != before.Target {
		t.Error("framing an empty box moved the camera")
	}
}

// --- OrbitTo ---

func TestOrbitTo(t *testing.T) {
	c := NewCamera()
	c.Position = mgl64.Vec3{0, 0, 10}
	c.OrbitTo(math.Pi, 1, ease.Linear)
	if !c.Orbiting() {
		t.Fatal("Orbiting should be true")
	}

	c.update(0.5)
	assertVec3Within(t, "halfway", c.Position, mgl64.Vec3{10, 0, 0}, 1e-4)

	c.update(0.5)
	assertVec3Within(t, "end", c.Position, mgl64.Vec3{0, 0, -10}, 1e-4)
	if c.Orbiting() {
		t.Error("orbit should be finished")
	}
}

func TestFrameCancelsOrbit(t *testing.T) {
	c := NewCamera()
	c.OrbitTo(math.Pi, 10, ease.Linear)
	c.Frame(Box{Max: mgl64.Vec3{1, 1, 1}})
	if c.Orbiting() {
		t.Error("Frame should cancel the orbit")
	}
}
