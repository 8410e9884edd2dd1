package trellis

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// logger receives generation and frame diagnostics. Silent until SetLogger.
var logger = zerolog.Nop()

// SetLogger installs the logger used by builders and the scene.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// globalDebug enables tree sanity checks and profile validation in builders.
var globalDebug bool

// SetDebugMode toggles debug checks: disposed-node panics, tree depth
// warnings, and validation of every generated profile.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugStats holds per-frame timing and triangle counts.
// Only populated when the scene is in debug mode.
type debugStats struct {
	collectTime time.Duration
	sortTime    time.Duration
	submitTime  time.Duration
	meshCount   int
	triCount    int
	culledCount int
}

// debugLog writes frame stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	logger.Debug().
		Dur("collect", stats.collectTime).
		Dur("sort", stats.sortTime).
		Dur("submit", stats.submitTime).
		Int("meshes", stats.meshCount).
		Int("triangles", stats.triCount).
		Int("culled", stats.culledCount).
		Msg("frame")
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("trellis debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the deepest composition the builders produce below
// the scene root (scene root, assembly, unit group, leaf mesh).
const debugMaxTreeDepth = 4

// debugCheckTreeDepth warns if a node sits deeper than debugMaxTreeDepth.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn().
			Str("node", n.Name).
			Int("depth", depth).
			Int("limit", debugMaxTreeDepth).
			Msg("tree depth exceeds composition limit")
	}
}

// debugValidate runs Profile.Validate when debug mode is on.
func debugValidate(name string, p Profile) error {
	if !globalDebug {
		return nil
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s profile: %w", name, err)
	}
	return nil
}
