package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

func defaultOptions(overlay bool) Options {
	return Options{Overlay: overlay, Tolerance: 47.5, Style: DefaultStyle()}
}

func TestDrawOutlines(t *testing.T) {
	rec := NewRecorder(1000, 950)
	pts := garment.Vertices(garment.DefaultParameters(), 1000, 950)

	if err := Draw(rec, pts, defaultOptions(false)); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	ops := rec.Ops()
	if ops[0].Kind != OpClear {
		t.Fatalf("Draw failed: first op must clear, got %v", ops[0].Kind)
	}
	if rec.Count(OpPolyline) != 3 {
		t.Errorf("Draw failed: expected 3 outlines, got %d", rec.Count(OpPolyline))
	}
	if rec.Count(OpDisc) != 0 || rec.Count(OpText) != 0 {
		t.Errorf("Draw failed: markers drawn without overlay")
	}

	torso := ops[1]
	want := []geometry.Vector2{
		pts[garment.ShoulderLeft], pts[garment.ShoulderRight], pts[garment.WaistRight],
		pts[garment.FlareRight], pts[garment.FlareLeft], pts[garment.WaistLeft],
	}
	if !torso.Closed || len(torso.Points) != len(want) {
		t.Fatalf("Torso failed: expected closed outline of %d points, got %+v", len(want), torso)
	}
	for i := range want {
		if torso.Points[i] != want[i] {
			t.Errorf("Torso point %d failed: expected %v, got %v", i, want[i], torso.Points[i])
		}
	}

	leftSleeve := ops[2]
	if leftSleeve.Points[2] != pts[garment.SleeveLeftInner] || leftSleeve.Points[3] != pts[garment.ShoulderLeftInner] {
		t.Errorf("Left sleeve failed: got %v", leftSleeve.Points)
	}
}

func TestDrawOverlayMarkers(t *testing.T) {
	rec := NewRecorder(1000, 950)
	pts := garment.Vertices(garment.DefaultParameters(), 1000, 950)

	if err := Draw(rec, pts, defaultOptions(true)); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	marked := MarkedParts()
	if rec.Count(OpDisc) != len(marked) {
		t.Errorf("Overlay failed: expected %d markers, got %d", len(marked), rec.Count(OpDisc))
	}
	if rec.Count(OpPolyline) != 3 {
		t.Errorf("Overlay failed: outlines must stay visible, got %d", rec.Count(OpPolyline))
	}

	centers := map[geometry.Vector2]bool{}
	for _, op := range rec.Ops() {
		if op.Kind == OpDisc {
			centers[op.Points[0]] = true
			if op.Radius != 47.5 {
				t.Errorf("Overlay failed: expected radius 47.5, got %v", op.Radius)
			}
		}
	}
	for _, hidden := range []garment.Part{
		garment.ShoulderLeftInner, garment.ShoulderRightInner,
		garment.SleeveLeftInner, garment.SleeveRightInner,
	} {
		if centers[pts[hidden]] {
			t.Errorf("Overlay failed: %s must not get a marker", hidden)
		}
	}
	if !centers[pts[garment.SleeveCenterRight]] {
		t.Error("Overlay failed: SleeveCenterRight needs a marker")
	}
}

func TestRecorderStartsNewFrameOnClear(t *testing.T) {
	rec := NewRecorder(100, 100)
	pts := garment.Vertices(garment.DefaultParameters(), 100, 100)

	for i := 0; i < 3; i++ {
		if err := Draw(rec, pts, defaultOptions(false)); err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
	}
	if rec.Frames() != 3 {
		t.Errorf("Frames failed: expected 3, got %d", rec.Frames())
	}
	if len(rec.Ops()) != 4 {
		t.Errorf("Ops failed: expected 4 ops in last frame, got %d", len(rec.Ops()))
	}
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder(200, 200)
	pts := garment.Vertices(garment.DefaultParameters(), 200, 200)
	if err := Draw(src, pts, defaultOptions(true)); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	dst := NewRecorder(200, 200)
	if err := src.Replay(dst); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if len(dst.Ops()) != len(src.Ops()) {
		t.Errorf("Replay failed: expected %d ops, got %d", len(src.Ops()), len(dst.Ops()))
	}
}

type failingSurface struct {
	*Recorder
}

var errStroke = errors.New("stroke failed")

func (failingSurface) Polyline([]geometry.Vector2, bool, color.Color, float64) error {
	return errStroke
}

func TestDrawPropagatesSurfaceErrors(t *testing.T) {
	s := failingSurface{NewRecorder(10, 10)}
	pts := garment.Vertices(garment.DefaultParameters(), 10, 10)

	if err := Draw(s, pts, defaultOptions(false)); !errors.Is(err, errStroke) {
		t.Errorf("Draw failed: expected wrapped stroke error, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	r, g, b, a := ParseColor("#ff0000").RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("ParseColor failed: got %v %v %v %v", r, g, b, a)
	}
}
