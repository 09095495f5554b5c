package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/version"
)

var uiTextColor = rl.NewColor(40, 40, 60, 255)

// drawUI draws the help and info text on top of the garment
func (app *App) drawUI() {
	x := int32(10)
	y := int32(10)
	lineHeight := int32(18)
	fontSize := int32(14)

	if app.View.showInfo {
		p := app.Editor.controller.Parameters()
		lines := []string{
			fmt.Sprintf("Origin: (%.3f, %.3f)", p.Origin.X, p.Origin.Y),
			fmt.Sprintf("Shoulder: %.3f  Waist: %.3f", p.ShoulderLength, p.WaistLength),
			fmt.Sprintf("Flare: %.3f  Hem: %.3f", p.FlareLength, p.HemLength),
			fmt.Sprintf("Sleeve: (%.3f, %.3f)  Thickness: %.3f", p.SleeveVector.X, p.SleeveVector.Y, p.SleeveThickness),
		}
		if part, ok := app.Editor.controller.Captured(); ok {
			lines = append(lines, "Dragging: "+part.Label())
		}
		for _, line := range lines {
			rl.DrawText(line, x, y, fontSize, uiTextColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	if app.View.showHelp {
		help := []string{
			"Drag points to reshape",
			"Arrows: move garment",
			"O: control points",
			"R: reset  I: info  H: help",
		}
		for _, line := range help {
			rl.DrawText(line, x, y, fontSize, uiTextColor)
			y += lineHeight
		}
	}

	// Version in the bottom-right corner
	v := "GoGarment " + version.String()
	width := rl.MeasureText(v, 12)
	rl.DrawText(v, int32(app.Editor.screen.width)-width-10, int32(app.Editor.screen.height)-20, 12, uiTextColor)
}
