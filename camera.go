package trellis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// orbitAnim holds an active orbit tween: the eye offset from the target at
// the start and the tween of the swept angle.
type orbitAnim struct {
	offset mgl64.Vec3
	tween  *gween.Tween
}

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	// Fovy is the vertical field of view in degrees.
	Fovy float64
	Near float64
	Far  float64

	orbit *orbitAnim
}

// NewCamera returns a camera above and in front of the origin with a
// 75 degree field of view.
func NewCamera() *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, 15, 15},
		Up:       mgl64.Vec3{0, 1, 0},
		Fovy:     75,
		Near:     0.1,
		Far:      1000,
	}
}

// View returns the world-to-eye matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective matrix for the given width/height ratio.
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection(aspect) * View().
func (c *Camera) ViewProjection(aspect float64) mgl64.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

// Frame aims the camera at the center of b and backs it off along its
// current viewing direction until b's bounding sphere fits the vertical
// field of view. An empty box leaves the camera unchanged.
func (c *Camera) Frame(b Box) {
	if b.Empty() {
		return
	}
	center := b.Center()
	radius := b.Max.Sub(b.Min).Len() / 2
	if radius == 0 {
		radius = 1
	}
	dir := c.Position.Sub(c.Target)
	if dir.Len() == 0 {
		dir = mgl64.Vec3{0, 1, 1}
	}
	dist := radius / math.Sin(mgl64.DegToRad(c.Fovy)/2)

	c.Target = center
	c.Position = center.Add(dir.Normalize().Mul(dist))
	if c.Far < dist+radius {
		c.Far = 2 * (dist + radius)
	}
	c.orbit = nil
}

// OrbitTo swings the camera around Target about the Up axis by angle radians
// over duration seconds.
func (c *Camera) OrbitTo(angle float64, duration float32, easeFn ease.TweenFunc) {
	c.orbit = &orbitAnim{
		offset: c.Position.Sub(c.Target),
		tween:  gween.New(0, float32(angle), duration, easeFn),
	}
}

// Orbiting reports whether an OrbitTo animation is in progress.
func (c *Camera) Orbiting() bool {
	return c.orbit != nil
}

// update advances the orbit tween. Called from Scene.Step.
func (c *Camera) update(dt float32) {
	if c.orbit == nil {
		return
	}
	a, done := c.orbit.tween.Update(dt)
	rot := mgl64.HomogRotate3D(float64(a), c.Up.Normalize())
	c.Position = c.Target.Add(mgl64.TransformNormal(c.orbit.offset, rot))
	if done {
		c.orbit = nil
	}
}

// project maps a world point through vp to screen pixels on a w x h target.
// depth is the clip-space w (distance along the view axis). ok is false for
// points behind the near plane.
func project(vp mgl64.Mat4, p mgl64.Vec3, w, h float64) (screen mgl64.Vec2, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 || clip[2] < -clip[3] {
		return mgl64.Vec2{}, 0, false
	}
	ndcX, ndcY := clip[0]/clip[3], clip[1]/clip[3]
	return mgl64.Vec2{(ndcX + 1) / 2 * w, (1 - ndcY) / 2 * h}, clip[3], true
}
