package trellis

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultTriangleCap = 4096

// Scene owns the node tree, the camera, the per-frame animators and the
// render buffers.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before each frame.
	ClearColor Color
	Camera     *Camera
	Light      Light
	// ShowFPS draws the measured FPS and TPS in the top left corner.
	ShowFPS bool

	animators  []*Animator
	updateFunc func() error

	// Render state
	tris       []triangle
	sortBuf    []triangle
	batchVerts []ebiten.Vertex
	batchInds  []uint32
}

// NewScene creates a scene with an empty root group, a default camera and
// the default light.
func NewScene() *Scene {
	return &Scene{
		root:       NewGroup("root"),
		ClearColor: Hex(0xaaaaaa),
		Camera:     NewCamera(),
		Light:      DefaultLight(),
		tris:       make([]triangle, 0, defaultTriangleCap),
		sortBuf:    make([]triangle, 0, defaultTriangleCap),
	}
}

// Root returns the scene's root group.
func (s *Scene) Root() *Node {
	return s.root
}

// Add attaches n under the scene root.
func (s *Scene) Add(n *Node) {
	s.root.AddChild(n)
	if s.debug {
		n.Walk(func(c *Node) bool {
			debugCheckTreeDepth(c)
			return true
		})
	}
}

// AddBuilt runs build and attaches its result. On error nothing is added and
// the scene is unchanged.
func (s *Scene) AddBuilt(build func() (*Node, error)) (*Node, error) {
	n, err := build()
	if err != nil {
		return nil, fmt.Errorf("build scene object: %w", err)
	}
	s.Add(n)
	return n, nil
}

// SetUpdateFunc sets a callback run once per tick after the animators.
// A returned error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// AddAnimator schedules animators to run every tick.
func (s *Scene) AddAnimator(a ...*Animator) {
	s.animators = append(s.animators, a...)
}

// Animators returns the scheduled animators. The returned slice MUST NOT be
// mutated.
func (s *Scene) Animators() []*Animator {
	return s.animators
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees and per-frame timing stats are logged, and
// builders validate their profiles.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	SetDebugMode(enabled)
}

// Update advances one tick of 1/TPS seconds.
func (s *Scene) Update() error {
	return s.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step advances the camera and every animator by dt seconds, drops finished
// animators, and then runs the update callback.
func (s *Scene) Step(dt float32) error {
	if s.Camera != nil {
		s.Camera.update(dt)
	}
	live := s.animators[:0]
	for _, a := range s.animators {
		a.Update(dt)
		if !a.Done {
			live = append(live, a)
		}
	}
	clear(s.animators[len(live):])
	s.animators = live

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw clears the screen and renders the tree from the scene camera:
// collect and shade faces, sort them back to front, submit one batch.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor)
	if s.Camera == nil {
		return
	}
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.tris = s.collect(w, h, &stats)

	if s.debug {
		stats.collectTime = time.Since(t0)
		t0 = time.Now()
	}

	s.sortBuf = sortTriangles(s.tris, s.sortBuf)

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.triCount = len(s.tris)
		t0 = time.Now()
	}

	s.submitTriangles(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}
	if s.ShowFPS {
		drawFPS(screen)
	}
}

// collect projects the tree for a w x h target into s.tris.
func (s *Scene) collect(w, h float64, stats *debugStats) []triangle {
	v := frameView{
		vp:     s.Camera.ViewProjection(w / h),
		eye:    s.Camera.Position,
		width:  w,
		height: h,
		light:  s.Light,
	}
	return collectTriangles(s.tris[:0], s.root, v, stats)
}
