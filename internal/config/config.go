package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/render"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config holds the editor settings
type Config struct {
	Surface  SurfaceConfig `yaml:"surface" toml:"surface"`
	Editor   EditorConfig  `yaml:"editor" toml:"editor"`
	Garment  GarmentConfig `yaml:"garment" toml:"garment"`
	Style    StyleConfig   `yaml:"style" toml:"style"`
	LogLevel string        `yaml:"log_level" toml:"log_level"`
}

// SurfaceConfig is the drawing surface size in pixels
type SurfaceConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// EditorConfig tunes the interaction
type EditorConfig struct {
	ToleranceRatio     float64 `yaml:"tolerance_ratio" toml:"tolerance_ratio"`
	MinLength          float64 `yaml:"min_length" toml:"min_length"`
	NudgeStep          float64 `yaml:"nudge_step" toml:"nudge_step"`
	SecondPressCancels bool    `yaml:"second_press_cancels" toml:"second_press_cancels"`
}

// GarmentConfig is the initial shape in normalized units
type GarmentConfig struct {
	Origin          [2]float64 `yaml:"origin" toml:"origin"`
	ShoulderLength  float64    `yaml:"shoulder_length" toml:"shoulder_length"`
	WaistLength     float64    `yaml:"waist_length" toml:"waist_length"`
	FlareLength     float64    `yaml:"flare_length" toml:"flare_length"`
	HemLength       float64    `yaml:"hem_length" toml:"hem_length"`
	SleeveVector    [2]float64 `yaml:"sleeve_vector" toml:"sleeve_vector"`
	SleeveThickness float64    `yaml:"sleeve_thickness" toml:"sleeve_thickness"`
}

// StyleConfig holds hex colors with a leading '#': "#rgb", "#rgba",
// "#rrggbb" or "#rrggbbaa"
type StyleConfig struct {
	Background string  `yaml:"background" toml:"background"`
	Outline    string  `yaml:"outline" toml:"outline"`
	Marker     string  `yaml:"marker" toml:"marker"`
	Label      string  `yaml:"label" toml:"label"`
	LineWidth  float64 `yaml:"line_width" toml:"line_width"`
}

// Default returns the built-in configuration
func Default() *Config {
	p := garment.DefaultParameters()
	return &Config{
		Surface: SurfaceConfig{Width: 1000, Height: 950},
		Editor: EditorConfig{
			ToleranceRatio:     garment.DefaultToleranceRatio,
			MinLength:          garment.DefaultMinLength,
			NudgeStep:          garment.DefaultNudgeStep,
			SecondPressCancels: true,
		},
		Garment: GarmentConfig{
			Origin:          [2]float64{p.Origin.X, p.Origin.Y},
			ShoulderLength:  p.ShoulderLength,
			WaistLength:     p.WaistLength,
			FlareLength:     p.FlareLength,
			HemLength:       p.HemLength,
			SleeveVector:    [2]float64{p.SleeveVector.X, p.SleeveVector.Y},
			SleeveThickness: p.SleeveThickness,
		},
		Style: StyleConfig{
			Background: "#ffffff",
			Outline:    "#000000",
			Marker:     "#6496ff6e",
			Label:      "#28283c",
			LineWidth:  2,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate checks sizes, editor tuning, colors and the initial shape
func (c *Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalid, c.Surface.Width, c.Surface.Height)
	}
	numbers := []struct {
		name  string
		value float64
	}{
		{"tolerance_ratio", c.Editor.ToleranceRatio},
		{"min_length", c.Editor.MinLength},
		{"nudge_step", c.Editor.NudgeStep},
		{"line_width", c.Style.LineWidth},
	}
	for _, n := range numbers {
		if !positiveFinite(n.value) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalid, n.name, n.value)
		}
	}

	colors := map[string]string{
		"background": c.Style.Background,
		"outline":    c.Style.Outline,
		"marker":     c.Style.Marker,
		"label":      c.Style.Label,
	}
	for name, value := range colors {
		if !hexColor.MatchString(value) {
			return fmt.Errorf("%w: %s color %q is not a hex color", ErrInvalid, name, value)
		}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	if err := c.Parameters().Validate(c.ClampPolicy()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// positiveFinite rejects NaN, infinities, zero and negative values
func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// Parameters converts the garment section
func (c *Config) Parameters() garment.Parameters {
	g := c.Garment
	return garment.Parameters{
		Origin:          geometry.NewVector2(g.Origin[0], g.Origin[1]),
		ShoulderLength:  g.ShoulderLength,
		WaistLength:     g.WaistLength,
		FlareLength:     g.FlareLength,
		HemLength:       g.HemLength,
		SleeveVector:    geometry.NewVector2(g.SleeveVector[0], g.SleeveVector[1]),
		SleeveThickness: g.SleeveThickness,
	}
}

// ClampPolicy converts the editor lower bound
func (c *Config) ClampPolicy() garment.ClampPolicy {
	return garment.ClampPolicy{MinLength: c.Editor.MinLength}
}

// RenderStyle converts the style section
func (c *Config) RenderStyle() render.Style {
	return render.Style{
		Background: render.ParseColor(c.Style.Background),
		Outline:    render.ParseColor(c.Style.Outline),
		Marker:     render.ParseColor(c.Style.Marker),
		Label:      render.ParseColor(c.Style.Label),
		LineWidth:  c.Style.LineWidth,
	}
}

// EditorOptions converts the editor, garment and style sections into
// controller options
func (c *Config) EditorOptions(logger *slog.Logger) []editor.Option {
	return []editor.Option{
		editor.WithParameters(c.Parameters()),
		editor.WithClampPolicy(c.ClampPolicy()),
		editor.WithToleranceRatio(c.Editor.ToleranceRatio),
		editor.WithNudgeStep(c.Editor.NudgeStep),
		editor.WithSecondPressCancels(c.Editor.SecondPressCancels),
		editor.WithStyle(c.RenderStyle()),
		editor.WithLogger(logger),
	}
}

// ParseLogLevel maps "debug", "info", "warn" or "error" to a slog level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return level, nil
}

// NewLogger builds a text logger on stderr at the configured level
func (c *Config) NewLogger() *slog.Logger {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
