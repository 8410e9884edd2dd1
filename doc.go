// Package trellis procedurally generates parametric 3D structures (a
// multi-span bridge, a multi-level building frame, a clock tower and a small
// vehicle) and renders them in a real-time viewport on [Ebitengine].
//
// # Quick start
//
// [Run] opens a window and drives a [Scene] for you:
//
//	scene := trellis.NewScene()
//	if _, err := scene.AddBuilt(func() (*trellis.Node, error) {
//		return trellis.Bridge(trellis.BridgeParams{Beams: 10, Width: 3, Height: 10})
//	}); err != nil {
//		log.Fatal(err)
//	}
//	trellis.Run(scene, trellis.RunConfig{Title: "Bridge", Width: 1280, Height: 720})
//
// # Generation pipeline
//
// Every structure goes through the same four stages:
//
//   - [BuildProfile] turns an ordered list of [ControlPoint] values (straight
//     and quadratic-curve edges) into a closed 2D [Profile].
//   - [Extrude] sweeps a profile along +Z into a solid mesh centered on its
//     own origin, with an optional bevel.
//   - [Replicate] tiles independent instances of a unit along an axis with
//     zero gap, spacing them by the measured extent of the first one.
//   - [Assembly] places sub-parts relative to each other from their measured
//     [Bounds] and recenters the result on the origin.
//
// Bounds are always recomputed from geometry. Nothing caches a size, so a
// layout rule sees the current state of the tree.
//
// Builders validate their parameters before generating anything and return
// errors matching [ErrInvalidParameter].
//
// # Animation
//
// Per-frame motion is expressed as [Animator] records (see [Spin] and
// [Shuttle]) scheduled on the scene. Tweens are provided by [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package trellis
