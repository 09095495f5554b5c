package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/garment"
)

var nudgeKeys = map[int32]garment.Direction{
	rl.KeyUp:    garment.Up,
	rl.KeyDown:  garment.Down,
	rl.KeyLeft:  garment.Left,
	rl.KeyRight: garment.Right,
}

// handleInput processes user input
func (app *App) handleInput() {
	ed := app.Editor.controller
	mousePos := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		ed.PointerDown(fromRaylibVector(mousePos))
	}

	if mousePos != app.Interaction.lastMousePos {
		ed.PointerMove(fromRaylibVector(mousePos))
		app.Interaction.lastMousePos = mousePos
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		ed.PointerUp()
	}

	for key, dir := range nudgeKeys {
		if rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key) {
			if err := ed.Nudge(dir); err != nil {
				app.log.Warn("nudge failed", "direction", dir, "error", err)
			}
		}
	}

	if rl.IsKeyPressed(rl.KeyO) {
		ed.SetOverlay(!ed.Overlay())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		ed.Reset()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.View.showInfo = !app.View.showInfo
	}
}
