package main

import (
	"errors"
	"testing"

	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/render"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		input   string
		x, y    float64
		wantErr bool
	}{
		{"600,190", 600, 190, false},
		{" 1.5 , -2 ", 1.5, -2, false},
		{"600", 0, 0, true},
		{"a,1", 0, 0, true},
		{"1,b", 0, 0, true},
		{"1,2,3", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := parseVector(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseVector(%q) failed: expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVector(%q) failed: %v", tt.input, err)
			}
			if v.X != tt.x || v.Y != tt.y {
				t.Errorf("parseVector(%q) failed: expected (%v, %v), got (%v, %v)", tt.input, tt.x, tt.y, v.X, v.Y)
			}
		})
	}
}

func TestPressPosition(t *testing.T) {
	ed, err := editor.New(render.NewRecorder(1000, 950))
	if err != nil {
		t.Fatalf("editor.New failed: %v", err)
	}

	pos, err := pressPosition(ed, "", "shoulder right")
	if err != nil {
		t.Fatalf("pressPosition failed: %v", err)
	}
	if pos != geometry.NewVector2(600, 190) {
		t.Errorf("pressPosition failed: expected (600, 190), got %v", pos)
	}

	pos, err = pressPosition(ed, "10,20", "")
	if err != nil {
		t.Fatalf("pressPosition failed: %v", err)
	}
	if pos != geometry.NewVector2(10, 20) {
		t.Errorf("pressPosition failed: expected (10, 20), got %v", pos)
	}

	if _, err := pressPosition(ed, "", "collar"); !errors.Is(err, garment.ErrUnknownPart) {
		t.Errorf("pressPosition failed: expected ErrUnknownPart, got %v", err)
	}
}

func TestIsDraggable(t *testing.T) {
	for _, part := range garment.Parts() {
		want := !garment.DragExcluded.Contains(part)
		if got := isDraggable(part); got != want {
			t.Errorf("isDraggable(%s) failed: expected %v, got %v", part, want, got)
		}
	}
}
