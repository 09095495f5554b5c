package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelSize is the point size of overlay labels
const LabelSize = 12

// Raster is a Surface backed by a gg drawing context
type Raster struct {
	dc *gg.Context
}

// NewRaster creates a raster surface with the Go Regular font loaded for labels
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}

	dc := gg.NewContext(width, height)
	dc.SetFont(source.Face(LabelSize))
	dc.SetLineJoin(gg.LineJoinRound)
	return &Raster{dc: dc}, nil
}

func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *Raster) Clear(background color.Color) {
	r.dc.ClearWithColor(gg.FromColor(background))
}

func (r *Raster) Polyline(points []geometry.Vector2, closed bool, stroke color.Color, width float64) error {
	if len(points) < 2 {
		return nil
	}
	r.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	if closed {
		r.dc.ClosePath()
	}
	r.dc.SetColor(stroke)
	r.dc.SetLineWidth(width)
	return r.dc.Stroke()
}

func (r *Raster) Disc(center geometry.Vector2, radius float64, fill color.Color) error {
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.dc.SetColor(fill)
	return r.dc.Fill()
}

func (r *Raster) Text(s string, pos geometry.Vector2, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, pos.X, pos.Y, 0, 0.5)
}

// Image returns a snapshot of the current pixels
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current pixels to a PNG file
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// EncodePNG writes the current pixels as PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context
func (r *Raster) Close() error {
	return r.dc.Close()
}
