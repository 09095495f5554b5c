package garment

import (
	"github.com/philipparndt/gogarment/pkg/geometry"
)

// ControlPoints maps every part to its pixel coordinate.
// It is derived from Parameters and never stored across events.
type ControlPoints [PartCount]geometry.Vector2

// At returns the coordinate of a part, or the zero vector for an invalid part
func (c ControlPoints) At(p Part) geometry.Vector2 {
	if !p.Valid() {
		return geometry.Vector2{}
	}
	return c[p]
}

// Vertices computes the pixel coordinates of every part for a surface of
// width w and height h.
//
// Left-side offsets mirror the normal on X only: inner points are
// (x - normal.X, y + normal.Y) on the left and (x + normal.X, y + normal.Y)
// on the right. The transform rules for sleeve thickness depend on this.
func Vertices(p Parameters, w, h float64) ControlPoints {
	var pts ControlPoints

	origin := p.Origin.Scale(geometry.NewVector2(w, h))

	shoulderHalf := w * p.ShoulderLength / 2
	pts[ShoulderLeft] = geometry.NewVector2(origin.X-shoulderHalf, origin.Y)
	pts[ShoulderRight] = geometry.NewVector2(origin.X+shoulderHalf, origin.Y)

	waistHalf := w * p.WaistLength / 2
	hemHalf := h * p.HemLength / 2
	pts[WaistLeft] = geometry.NewVector2(origin.X-waistHalf, origin.Y+hemHalf)
	pts[WaistRight] = geometry.NewVector2(origin.X+waistHalf, origin.Y+hemHalf)

	flareHalf := w * p.FlareLength / 2
	hemDepth := h * p.HemLength
	pts[FlareLeft] = geometry.NewVector2(origin.X-flareHalf, origin.Y+hemDepth)
	pts[FlareRight] = geometry.NewVector2(origin.X+flareHalf, origin.Y+hemDepth)
	pts[Hem] = geometry.NewVector2(origin.X, origin.Y+hemDepth)

	sleeve := geometry.NewVector2(w*p.SleeveVector.X, h*p.SleeveVector.Y)
	pts[SleeveLeft] = pts[ShoulderLeft].Add(geometry.NewVector2(-sleeve.X, sleeve.Y))
	pts[SleeveRight] = pts[ShoulderRight].Add(sleeve)

	normal := SleeveNormal(p, w, h)
	left := geometry.NewVector2(-normal.X, normal.Y)

	pts[SleeveLeftInner] = pts[SleeveLeft].Add(left)
	pts[ShoulderLeftInner] = pts[ShoulderLeft].Add(left)
	pts[SleeveRightInner] = pts[SleeveRight].Add(normal)
	pts[ShoulderRightInner] = pts[ShoulderRight].Add(normal)

	pts[SleeveCenterLeft] = pts[ShoulderLeft].Midpoint(pts[SleeveLeft]).Add(left)
	pts[SleeveCenterRight] = pts[ShoulderRight].Midpoint(pts[SleeveRight]).Add(normal)

	return pts
}

// SleeveNormal returns the right-side sleeve band offset in pixels: the
// perpendicular of the pixel-space sleeve vector with length w*SleeveThickness.
// A zero-length sleeve vector yields a zero offset.
func SleeveNormal(p Parameters, w, h float64) geometry.Vector2 {
	sleeve := geometry.NewVector2(w*p.SleeveVector.X, h*p.SleeveVector.Y)
	length := sleeve.Length()
	if length == 0 {
		return geometry.Vector2{}
	}
	return sleeve.Perpendicular().Mul(w * p.SleeveThickness / length)
}
