package trellis

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func bowtie() Profile {
	return MustProfile([]ControlPoint{Pt(0, 0), Pt(2, 2), Pt(2, 0), Pt(0, 2)})
}

func TestDebugValidateOnlyInDebugMode(t *testing.T) {
	SetDebugMode(false)
	if err := debugValidate("bowtie", bowtie()); err != nil {
		t.Errorf("debug off: err = %v, want nil", err)
	}

	SetDebugMode(true)
	defer SetDebugMode(false)
	err := debugValidate("bowtie", bowtie())
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("debug on: err = %v, want ErrDegenerateGeometry", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bowtie profile") {
		t.Errorf("err = %q, want the profile name", err)
	}
}

func TestBuildersPassDebugValidation(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	if _, err := Bridge(BridgeParams{Beams: 2, Width: 3, Height: 10}); err != nil {
		t.Errorf("Bridge: %v", err)
	}
	if _, err := Building(BuildingParams{Levels: 2, LevelHeight: 3}); err != nil {
		t.Errorf("Building: %v", err)
	}
	if _, err := NewClock(ClockParams{Radius: 5, Nodes: 36}); err != nil {
		t.Errorf("NewClock: %v", err)
	}
}

func TestDebugCheckDisposed(t *testing.T) {
	n := NewGroup("gone")
	n.Dispose()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, `"gone"`) {
			t.Errorf("panic = %v, want the node name", r)
		}
	}()
	debugCheckDisposed(n, "AddChild")
}

func TestDebugTreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	leaf := NewGroup("leaf")
	parent := leaf
	for i := 0; i < debugMaxTreeDepth; i++ {
		p := NewGroup("level")
		p.AddChild(parent)
		parent = p
	}
	debugCheckTreeDepth(leaf)
	if !strings.Contains(buf.String(), "tree depth exceeds composition limit") {
		t.Errorf("log = %q, want a depth warning", buf.String())
	}

	buf.Reset()
	debugCheckTreeDepth(parent)
	if buf.Len() != 0 {
		t.Errorf("log = %q, want nothing for a shallow node", buf.String())
	}
}

func TestBuildersLogAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer SetLogger(zerolog.Nop())

	if _, err := SupportBeams(3, 10); err != nil {
		t.Fatal(err)
	}
	Vehicle()
	out := buf.String()
	if !strings.Contains(out, "replicated units") {
		t.Errorf("log = %q, want the replicate entry", out)
	}
	if !strings.Contains(out, `"assembly":"vehicle"`) {
		t.Errorf("log = %q, want the vehicle assembly entry", out)
	}
}

func TestSceneDebugLogOnlyInDebugMode(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer SetLogger(zerolog.Nop())

	s := NewScene()
	s.debugLog(debugStats{triCount: 12})
	if buf.Len() != 0 {
		t.Errorf("log = %q, want nothing outside debug mode", buf.String())
	}

	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	s.debugLog(debugStats{triCount: 12})
	if !strings.Contains(buf.String(), `"triangles":12`) {
		t.Errorf("log = %q, want frame stats", buf.String())
	}
}
