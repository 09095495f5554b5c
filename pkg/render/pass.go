package render

import (
	"fmt"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

// Options controls a single render pass
type Options struct {
	Overlay   bool    // Draw markers at every draggable part
	Tolerance float64 // Marker radius, equal to the hit radius
	Style     Style
}

// Outline is a polyline of the garment silhouette
type Outline struct {
	Name   string
	Points []geometry.Vector2
	Closed bool
}

// Outlines returns the torso and both sleeve outlines
func Outlines(pts garment.ControlPoints) []Outline {
	return []Outline{
		{
			Name: "torso",
			Points: []geometry.Vector2{
				pts[garment.ShoulderLeft],
				pts[garment.ShoulderRight],
				pts[garment.WaistRight],
				pts[garment.FlareRight],
				pts[garment.FlareLeft],
				pts[garment.WaistLeft],
			},
			Closed: true,
		},
		{
			Name: "left sleeve",
			Points: []geometry.Vector2{
				pts[garment.ShoulderLeft],
				pts[garment.SleeveLeft],
				pts[garment.SleeveLeftInner],
				pts[garment.ShoulderLeftInner],
			},
			Closed: true,
		},
		{
			Name: "right sleeve",
			Points: []geometry.Vector2{
				pts[garment.ShoulderRight],
				pts[garment.SleeveRight],
				pts[garment.SleeveRightInner],
				pts[garment.ShoulderRightInner],
			},
			Closed: true,
		},
	}
}

// MarkedParts returns the parts that get an overlay marker, in enumeration order
func MarkedParts() []garment.Part {
	var parts []garment.Part
	for _, part := range garment.Parts() {
		if !garment.OverlayExcluded.Contains(part) {
			parts = append(parts, part)
		}
	}
	return parts
}

// Draw clears the surface and renders the garment outlines. In overlay mode a
// translucent disc and a label are added at every marked part.
func Draw(s Surface, pts garment.ControlPoints, opts Options) error {
	s.Clear(opts.Style.Background)

	for _, outline := range Outlines(pts) {
		if err := s.Polyline(outline.Points, outline.Closed, opts.Style.Outline, opts.Style.LineWidth); err != nil {
			return fmt.Errorf("failed to stroke %s: %w", outline.Name, err)
		}
	}

	if !opts.Overlay {
		return nil
	}

	for _, part := range MarkedParts() {
		center := pts[part]
		if err := s.Disc(center, opts.Tolerance, opts.Style.Marker); err != nil {
			return fmt.Errorf("failed to draw marker for %s: %w", part, err)
		}
		s.Text(part.Label(), center.Add(geometry.NewVector2(opts.Tolerance+4, 0)), opts.Style.Label)
	}
	return nil
}
