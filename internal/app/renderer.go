package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

// labelFontSize is the raylib default font size for overlay labels
const labelFontSize = 14

// screenSurface draws straight into the raylib back buffer. It is only valid
// between rl.BeginDrawing and rl.EndDrawing.
type screenSurface struct {
	width  int
	height int
}

func (s *screenSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *screenSurface) Clear(background color.Color) {
	rl.ClearBackground(toRaylibColor(background))
}

func (s *screenSurface) Polyline(points []geometry.Vector2, closed bool, stroke color.Color, width float64) error {
	if len(points) < 2 {
		return nil
	}
	c := toRaylibColor(stroke)
	thick := float32(width)

	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(toRaylibVector(points[i-1]), toRaylibVector(points[i]), thick, c)
	}
	if closed {
		rl.DrawLineEx(toRaylibVector(points[len(points)-1]), toRaylibVector(points[0]), thick, c)
	}

	// Round joints
	for _, p := range points {
		rl.DrawCircleV(toRaylibVector(p), thick/2, c)
	}
	return nil
}

func (s *screenSurface) Disc(center geometry.Vector2, radius float64, fill color.Color) error {
	rl.DrawCircleV(toRaylibVector(center), float32(radius), toRaylibColor(fill))
	return nil
}

// Text draws s left-aligned and vertically centered on pos
func (s *screenSurface) Text(str string, pos geometry.Vector2, c color.Color) {
	rl.DrawText(str, int32(pos.X), int32(pos.Y)-labelFontSize/2, labelFontSize, toRaylibColor(c))
}

func toRaylibVector(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

func fromRaylibVector(v rl.Vector2) geometry.Vector2 {
	return geometry.NewVector2(float64(v.X), float64(v.Y))
}

func toRaylibColor(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
