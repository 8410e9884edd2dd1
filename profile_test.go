package trellis

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func square(size float64) []ControlPoint {
	return []ControlPoint{Pt(0, 0), Pt(size, 0), Pt(size, size), Pt(0, size)}
}

func TestBuildProfileTooFewPoints(t *testing.T) {
	_, err := BuildProfile([]ControlPoint{Pt(0, 0), Pt(1, 0)})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Param != "profile points" {
		t.Errorf("err = %#v, want *ParamError for profile points", err)
	}
}

func TestBuildProfileClosesContour(t *testing.T) {
	p := MustProfile(square(2))
	segs := p.Segments()
	if len(segs) != 4 {
		t.Fatalf("segments = %d, want 4", len(segs))
	}
	last := segs[len(segs)-1]
	if last.From != (mgl64.Vec2{0, 2}) || last.To != (mgl64.Vec2{0, 0}) {
		t.Errorf("closing segment = %v -> %v, want (0,2) -> (0,0)", last.From, last.To)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].From != segs[i-1].To {
			t.Errorf("segment %d does not start where %d ends", i, i-1)
		}
	}
}

func TestBuildProfileDropsExplicitClose(t *testing.T) {
	pts := append(square(1), Pt(0, 0))
	p := MustProfile(pts)
	if got := len(p.Segments()); got != 4 {
		t.Errorf("segments = %d, want 4", got)
	}
	if got := len(p.Points(0)); got != 4 {
		t.Errorf("points = %d, want 4", got)
	}
}

func TestStraightProfilePointCountMatchesInput(t *testing.T) {
	for _, n := range []int{3, 5, 8, 17} {
		pts := make([]ControlPoint, n)
		for i := range pts {
			s, c := math.Sincos(float64(i) / float64(n) * 2 * math.Pi)
			pts[i] = Pt(c, s)
		}
		if got := len(MustProfile(pts).Points(0)); got != n {
			t.Errorf("n=%d: Points = %d, want %d", n, got, n)
		}
	}
}

func TestCurveSampling(t *testing.T) {
	p := MustProfile([]ControlPoint{Pt(0, 0), Curve(1, 1, 2, 0), Pt(2, -1), Pt(0, -1)})
	for _, divs := range []int{2, 4, 12} {
		// The curve contributes divs-1 interior samples plus its endpoint.
		want := 1 + divs + 2
		if got := len(p.Points(divs)); got != want {
			t.Errorf("divs=%d: Points = %d, want %d", divs, got, want)
		}
	}

	mid := p.Segments()[0].At(0.5)
	assertNear(t, "curve mid x", mid[0], 1)
	assertNear(t, "curve mid y", mid[1], 0.5)
}

func TestCurvedClosingSegment(t *testing.T) {
	p := MustProfile([]ControlPoint{Curve(-1, 1, 0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)})
	last := p.Segments()[3]
	if !last.Curved || last.Control != (mgl64.Vec2{-1, 1}) {
		t.Errorf("closing segment = %+v, want curved through (-1, 1)", last)
	}
	// 4 corners plus 3 interior samples on the closing curve.
	if got := len(p.Points(4)); got != 7 {
		t.Errorf("Points = %d, want 7", got)
	}
}

func TestProfileArea(t *testing.T) {
	assertNear(t, "ccw area", MustProfile(square(2)).Area(), 4)

	cw := []ControlPoint{Pt(0, 0), Pt(0, 2), Pt(2, 2), Pt(2, 0)}
	assertNear(t, "cw area", MustProfile(cw).Area(), -4)
}

func TestProfileBounds(t *testing.T) {
	lo, hi := FloorProfile().Bounds()
	if lo != (mgl64.Vec2{-5.5, -2.5}) || hi != (mgl64.Vec2{5.5, 2.5}) {
		t.Errorf("Bounds = %v..%v, want (-5.5,-2.5)..(5.5,2.5)", lo, hi)
	}
}

func TestProfileValidate(t *testing.T) {
	if err := MustProfile(square(1)).Validate(); err != nil {
		t.Errorf("square: unexpected error %v", err)
	}
	if err := FloorProfile().Validate(); err != nil {
		t.Errorf("floor: unexpected error %v", err)
	}

	bowtie := MustProfile([]ControlPoint{Pt(0, 0), Pt(2, 2), Pt(2, 0), Pt(0, 2)})
	if err := bowtie.Validate(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("bowtie: err = %v, want ErrDegenerateGeometry", err)
	}

	flat := MustProfile([]ControlPoint{Pt(0, 0), Pt(1, 0), Pt(2, 0)})
	if err := flat.Validate(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("collinear: err = %v, want ErrDegenerateGeometry", err)
	}
}

func TestSupportBeamProfile(t *testing.T) {
	p, err := SupportBeamProfile(10)
	if err != nil {
		t.Fatal(err)
	}
	// 6 corners plus 2 curves of 11 interior samples and a shared endpoint.
	if got := len(p.Points(12)); got != 30 {
		t.Errorf("Points = %d, want 30", got)
	}
	lo, hi := p.Bounds()
	if lo != (mgl64.Vec2{0, -10}) || hi != (mgl64.Vec2{9, 1}) {
		t.Errorf("Bounds = %v..%v, want (0,-10)..(9,1)", lo, hi)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestSupportBeamProfileRejectsNonPositiveHeight(t *testing.T) {
	for _, h := range []float64{0, -3, math.NaN()} {
		if _, err := SupportBeamProfile(h); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("height %v: err = %v, want ErrInvalidParameter", h, err)
		}
	}
}

func TestShortSupportBeamStaysSimple(t *testing.T) {
	p, err := SupportBeamProfile(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
