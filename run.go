package trellis

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window; the viewport follows.
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error              { return g.scene.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *game) Layout(w, h int) (int, int) { return w, h }

// Run opens a window and drives scene until the window is closed or the
// update callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &ParamError{Param: "window size", Value: fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), Reason: "must be positive"}
	}
	scene.ShowFPS = scene.ShowFPS || cfg.ShowFPS

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.Info().
		Str("title", cfg.Title).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("starting viewport")
	return ebiten.RunGame(&game{scene: scene})
}
