package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/render"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDefaultMatchesGarmentDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed for defaults: %v", err)
	}
	if cfg.Parameters() != garment.DefaultParameters() {
		t.Errorf("Parameters failed: expected %+v, got %+v", garment.DefaultParameters(), cfg.Parameters())
	}
	if cfg.Surface.Width != 1000 || cfg.Surface.Height != 950 {
		t.Errorf("Surface failed: got %dx%d", cfg.Surface.Width, cfg.Surface.Height)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.MinLength != garment.DefaultMinLength {
		t.Errorf("Load failed: expected default min length, got %v", cfg.Editor.MinLength)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "editor.yaml", `
surface:
  width: 800
  height: 600
editor:
  nudge_step: 0.05
garment:
  origin: [0.4, 0.3]
  hem_length: 0.5
style:
  outline: "#ff0000"
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Surface.Width != 800 || cfg.Surface.Height != 600 {
		t.Errorf("Surface failed: got %dx%d", cfg.Surface.Width, cfg.Surface.Height)
	}
	if cfg.Editor.NudgeStep != 0.05 {
		t.Errorf("NudgeStep failed: expected 0.05, got %v", cfg.Editor.NudgeStep)
	}
	if cfg.Editor.ToleranceRatio != garment.DefaultToleranceRatio {
		t.Errorf("ToleranceRatio failed: default lost, got %v", cfg.Editor.ToleranceRatio)
	}
	if !cfg.Editor.SecondPressCancels {
		t.Error("SecondPressCancels failed: default lost")
	}

	p := cfg.Parameters()
	if p.Origin.X != 0.4 || p.Origin.Y != 0.3 || p.HemLength != 0.5 {
		t.Errorf("Parameters failed: got %+v", p)
	}
	if p.ShoulderLength != 0.2 {
		t.Errorf("ShoulderLength failed: default lost, got %v", p.ShoulderLength)
	}

	r, g, b, _ := cfg.RenderStyle().Outline.RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("Outline failed: expected red, got %v %v %v", r, g, b)
	}

	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil || level != slog.LevelDebug {
		t.Errorf("LogLevel failed: expected debug, got %v (%v)", level, err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "editor.toml", `
log_level = "warn"

[editor]
min_length = 0.02
second_press_cancels = false

[garment]
sleeve_vector = [0.15, 0.1]
sleeve_thickness = 0.08
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ClampPolicy().MinLength != 0.02 {
		t.Errorf("MinLength failed: expected 0.02, got %v", cfg.ClampPolicy().MinLength)
	}
	if cfg.Editor.SecondPressCancels {
		t.Error("SecondPressCancels failed: expected false")
	}
	p := cfg.Parameters()
	if p.SleeveVector.X != 0.15 || p.SleeveVector.Y != 0.1 || p.SleeveThickness != 0.08 {
		t.Errorf("Sleeve failed: got %+v", p)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"zero width", "a.yaml", "surface:\n  width: 0\n"},
		{"bad color", "b.yaml", "style:\n  marker: blue\n"},
		{"length below bound", "c.yaml", "garment:\n  waist_length: 0.001\n"},
		{"bad log level", "d.toml", "log_level = \"loud\"\n"},
		{"unknown format", "e.json", "{}"},
		{"color without hash", "f.yaml", "style:\n  outline: ff0000\n"},
		{"nan min length", "g.yaml", "editor:\n  min_length: .nan\n"},
		{"inf tolerance ratio", "h.yaml", "editor:\n  tolerance_ratio: .inf\n"},
		{"nan nudge step", "i.toml", "[editor]\nnudge_step = nan\n"},
		{"inf line width", "j.toml", "[style]\nline_width = inf\n"},
		{"nan origin", "k.yaml", "garment:\n  origin: [.nan, 0.2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load failed: expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load failed: expected error for missing file")
	}
}

func TestEditorOptions(t *testing.T) {
	cfg := Default()
	cfg.Editor.SecondPressCancels = false
	cfg.Garment.HemLength = 0.5

	ed, err := editor.New(render.NewRecorder(cfg.Surface.Width, cfg.Surface.Height), cfg.EditorOptions(nil)...)
	if err != nil {
		t.Fatalf("editor.New failed: %v", err)
	}
	if ed.Parameters().HemLength != 0.5 {
		t.Errorf("EditorOptions failed: expected hem 0.5, got %v", ed.Parameters().HemLength)
	}
	if ed.Tolerance() != 47.5 {
		t.Errorf("EditorOptions failed: expected tolerance 47.5, got %v", ed.Tolerance())
	}
}
