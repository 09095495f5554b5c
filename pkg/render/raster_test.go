package render

import (
	"bytes"
	"testing"

	"github.com/philipparndt/gogarment/pkg/garment"
)

func TestRasterDrawsOutline(t *testing.T) {
	r, err := NewRaster(1000, 950)
	if err != nil {
		t.Fatalf("NewRaster failed: %v", err)
	}
	defer r.Close()

	w, h := r.Size()
	if w != 1000 || h != 950 {
		t.Fatalf("Size failed: expected 1000x950, got %dx%d", w, h)
	}

	pts := garment.Vertices(garment.DefaultParameters(), 1000, 950)
	style := DefaultStyle()
	style.LineWidth = 4
	if err := Draw(r, pts, Options{Overlay: true, Tolerance: 47.5, Style: style}); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	img := r.Image()

	// Middle of the shoulder line
	cr, _, _, _ := img.At(500, 190).RGBA()
	if cr > 0x8000 {
		t.Errorf("Outline failed: expected a dark pixel on the shoulder line, got red %#x", cr)
	}

	// Far corner stays background
	br, bg, bb, _ := img.At(5, 940).RGBA()
	if br < 0xf000 || bg < 0xf000 || bb < 0xf000 {
		t.Errorf("Background failed: expected white, got %#x %#x %#x", br, bg, bb)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("EncodePNG failed: missing PNG signature")
	}
}

func TestNewRasterRejectsEmptySize(t *testing.T) {
	if _, err := NewRaster(0, 100); err == nil {
		t.Error("NewRaster failed: expected error for zero width")
	}
}
