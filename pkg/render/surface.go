package render

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

// Surface is a fixed-size drawing target for the render pass
type Surface interface {
	// Size returns the surface dimensions in pixels
	Size() (width, height int)
	// Clear fills the whole surface
	Clear(background color.Color)
	// Polyline strokes a connected line through points, closing it when closed is set
	Polyline(points []geometry.Vector2, closed bool, stroke color.Color, width float64) error
	// Disc fills a circle
	Disc(center geometry.Vector2, radius float64, fill color.Color) error
	// Text writes a single-line label with its left edge at pos, vertically centered
	Text(s string, pos geometry.Vector2, c color.Color)
}

// Style holds the colors and line width of a render pass
type Style struct {
	Background color.Color
	Outline    color.Color
	Marker     color.Color
	Label      color.Color
	LineWidth  float64
}

// DefaultStyle returns black outlines on white with translucent blue markers
func DefaultStyle() Style {
	return Style{
		Background: color.White,
		Outline:    color.Black,
		Marker:     color.NRGBA{R: 100, G: 150, B: 255, A: 110},
		Label:      color.NRGBA{R: 40, G: 40, B: 60, A: 255},
		LineWidth:  2,
	}
}

// ParseColor converts "#RGB", "#RRGGBB" or "#RRGGBBAA" into a color
func ParseColor(hex string) color.Color {
	return gg.Hex(hex).Color()
}
