package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/viewer"
	"github.com/philipparndt/gogarment/pkg/watcher"
)

type App struct {
	window     fyne.Window
	configPath string
	config     *config.Config
	log        *slog.Logger
	view       *viewer.GarmentView
	paramLabel *widget.Label
	partLabel  *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("GoGarment - Garment Shape Editor")

	appInstance := &App{
		window: w,
	}

	// Optional config file as argument
	if len(os.Args) > 1 {
		appInstance.configPath = os.Args[1]
	}

	cfg, err := config.Load(appInstance.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	appInstance.config = cfg
	appInstance.log = cfg.NewLogger()

	if err := appInstance.setupMainUI(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer appInstance.view.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	appInstance.watchConfig(ctx)

	w.Resize(fyne.NewSize(float32(cfg.Surface.Width)+300, float32(cfg.Surface.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() error {
	view, err := viewer.NewGarmentView(a.config.Surface.Width, a.config.Surface.Height, a.config.EditorOptions(a.log)...)
	if err != nil {
		return fmt.Errorf("failed to create garment view: %w", err)
	}
	a.view = view

	a.paramLabel = widget.NewLabel("")
	a.partLabel = widget.NewLabel("Dragging: -")
	a.partLabel.TextStyle = fyne.TextStyle{Bold: true}

	view.SetOnChange(func(p garment.Parameters) {
		a.updateInfo(p)
	})

	overlayCheck := widget.NewCheck("Show Control Points", func(checked bool) {
		a.view.Editor().SetOverlay(checked)
	})
	overlayCheck.SetChecked(false)

	nudge := func(dir garment.Direction) func() {
		return func() {
			if err := a.view.Editor().Nudge(dir); err != nil {
				dialog.ShowError(err, a.window)
			}
		}
	}

	nudgePad := container.NewGridWithColumns(3,
		widget.NewLabel(""), widget.NewButton("Up", nudge(garment.Up)), widget.NewLabel(""),
		widget.NewButton("Left", nudge(garment.Left)), widget.NewLabel(""), widget.NewButton("Right", nudge(garment.Right)),
		widget.NewLabel(""), widget.NewButton("Down", nudge(garment.Down)), widget.NewLabel(""),
	)

	resetButton := widget.NewButton("Reset Shape", func() {
		a.view.Editor().Reset()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Press on a point and move to reshape\n" +
			"• Release to stop dragging\n" +
			"• Arrow keys move the whole garment\n" +
			"• Edit the config file to restyle",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Shape:"),
		widget.NewSeparator(),
		a.paramLabel,
		a.partLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		overlayCheck,
		widget.NewSeparator(),
		widget.NewLabel("Move Garment:"),
		nudgePad,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)
	a.window.SetContent(content)

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		var dir garment.Direction
		switch ev.Name {
		case fyne.KeyUp:
			dir = garment.Up
		case fyne.KeyDown:
			dir = garment.Down
		case fyne.KeyLeft:
			dir = garment.Left
		case fyne.KeyRight:
			dir = garment.Right
		case fyne.KeyO:
			overlayCheck.SetChecked(!overlayCheck.Checked)
			return
		default:
			return
		}
		nudge(dir)()
	})

	a.updateInfo(view.Editor().Parameters())
	return nil
}

func (a *App) updateInfo(p garment.Parameters) {
	a.paramLabel.SetText(fmt.Sprintf(
		"Origin: (%.3f, %.3f)\nShoulder: %.3f\nWaist: %.3f\nFlare: %.3f\nHem: %.3f\nSleeve: (%.3f, %.3f)\nThickness: %.3f",
		p.Origin.X, p.Origin.Y,
		p.ShoulderLength,
		p.WaistLength,
		p.FlareLength,
		p.HemLength,
		p.SleeveVector.X, p.SleeveVector.Y,
		p.SleeveThickness,
	))

	if part, ok := a.view.Editor().Captured(); ok {
		a.partLabel.SetText("Dragging: " + part.Label())
	} else {
		a.partLabel.SetText("Dragging: -")
	}
}

// watchConfig reloads the style section when the config file changes
func (a *App) watchConfig(ctx context.Context) {
	if a.configPath == "" {
		return
	}

	fw, err := watcher.NewFileWatcher(200*time.Millisecond, a.log)
	if err != nil {
		a.log.Warn("config watcher unavailable", "error", err)
		return
	}

	err = fw.Watch(a.configPath, func(path string) {
		cfg, err := config.Load(path)
		if err != nil {
			a.log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		a.log.Info("config reloaded", "path", path)
		fyne.Do(func() {
			a.config.Style = cfg.Style
			a.view.Editor().SetStyle(cfg.RenderStyle())
		})
	})
	if err != nil {
		a.log.Warn("config watcher unavailable", "error", err)
		fw.Close()
		return
	}

	fw.Start(ctx)
	go func() {
		<-ctx.Done()
		fw.Close()
	}()
}
