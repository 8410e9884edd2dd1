package trellis

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator mutates one node's transform once per frame. Rule receives the
// target and the frame time in seconds and owns only the transform fields it
// writes. If the target is disposed the animator stops immediately.
//
// There is no global animation manager; the scene (or the caller) calls
// Update each frame.
type Animator struct {
	Target *Node
	Rule   func(n *Node, dt float32)
	Done   bool
}

// Update runs the rule for dt seconds unless the animator is done.
func (a *Animator) Update(dt float32) {
	if a.Done {
		return
	}
	if a.Target == nil || a.Target.IsDisposed() {
		a.Done = true
		return
	}
	a.Rule(a.Target, dt)
}

// cycle replays a linear tween from begin to end forever. Time past the end
// of one pass carries into the next.
type cycle struct {
	begin, end float32
	duration   float32
	elapsed    float32
	tween      *gween.Tween
}

func newCycle(begin, end, duration float32) *cycle {
	return &cycle{
		begin:    begin,
		end:      end,
		duration: duration,
		tween:    gween.New(begin, end, duration, ease.Linear),
	}
}

// advance moves the cycle forward by dt seconds and returns the value.
func (c *cycle) advance(dt float32) float32 {
	c.elapsed += dt
	if c.elapsed < c.duration {
		v, _ := c.tween.Update(dt)
		return v
	}
	c.elapsed = float32(math.Mod(float64(c.elapsed), float64(c.duration)))
	c.tween = gween.New(c.begin, c.end, c.duration, ease.Linear)
	v, _ := c.tween.Update(c.elapsed)
	return v
}

// Spin rotates node about axis at a constant rate, one full turn per period.
// Clockwise is as seen looking down the axis toward the origin. The angle is
// kept within one turn of the node's starting rotation. A non-positive
// period returns an animator that is already done.
func Spin(node *Node, axis Axis, period time.Duration, clockwise bool) *Animator {
	turn := float32(2 * math.Pi)
	if clockwise {
		turn = -turn
	}
	secs := float32(period.Seconds())
	if !(secs > 0) {
		return &Animator{Target: node, Done: true}
	}
	start := node.Rotation[axis]
	c := newCycle(0, turn, secs)
	return &Animator{
		Target: node,
		Rule: func(n *Node, dt float32) {
			n.Rotation[axis] = start + float64(c.advance(dt))
		},
	}
}

// Shuttle moves node along axis from `from` to `to` at speed units per
// second, jumping back to `from` on arrival. The node starts at `from`.
// A non-positive speed or an empty range returns an animator that is already
// done.
func Shuttle(node *Node, axis Axis, from, to, speed float64) *Animator {
	secs := float32(math.Abs(to-from) / speed)
	if !(secs > 0) || math.IsInf(float64(secs), 0) {
		return &Animator{Target: node, Done: true}
	}
	c := newCycle(float32(from), float32(to), secs)
	node.Position[axis] = from
	return &Animator{
		Target: node,
		Rule: func(n *Node, dt float32) {
			n.Position[axis] = float64(c.advance(dt))
		},
	}
}
