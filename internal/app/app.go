package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/render"
	"github.com/philipparndt/gogarment/pkg/watcher"
)

type App struct {
	Editor      EditorState
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	log         *slog.Logger
}

// Run opens the editor window and blocks until it is closed. An empty
// configPath uses the built-in defaults.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()

	app, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	app.FileWatch.configPath = configPath

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up file watching
	if configPath != "" {
		if err := app.setupFileWatcher(ctx); err != nil {
			logger.Warn("config auto-reload unavailable", "error", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	// The window is not resizable; the controller reads the surface size once
	rl.SetConfigFlags(rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Surface.Width), int32(cfg.Surface.Height), "GoGarment")
	rl.SetTargetFPS(60)

	app.Interaction.lastMousePos = rl.GetMousePosition()

	// Main loop
	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Check if config needs reloading (file changed)
		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadConfig()
		}

		// Update
		app.handleInput()

		// Draw
		rl.BeginDrawing()
		if err := app.Editor.recorder.Replay(app.Editor.screen); err != nil {
			logger.Error("replay failed", "error", err)
		}
		app.drawUI()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

// newApp builds the controller on a display list sized from the config.
// A nil logger discards output.
func newApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	recorder := render.NewRecorder(cfg.Surface.Width, cfg.Surface.Height)
	controller, err := editor.New(recorder, cfg.EditorOptions(logger)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create editor: %w", err)
	}

	app := &App{
		Editor: EditorState{
			controller: controller,
			recorder:   recorder,
			screen:     &screenSurface{width: cfg.Surface.Width, height: cfg.Surface.Height},
		},
		View: ViewSettings{
			showHelp: true,
			showInfo: true,
		},
		log: logger,
	}
	app.FileWatch.config = cfg
	return app, nil
}

// setupFileWatcher flags a reload whenever the config file changes
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(500*time.Millisecond, app.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.log.Info("config changed", "path", changedFile)
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch(app.FileWatch.configPath, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch config: %w", err)
	}

	fw.Start(ctx)
	app.FileWatch.fileWatcher = fw
	app.log.Info("watching config for changes", "path", app.FileWatch.configPath)
	return nil
}

// reloadConfig applies the style of a changed config. Surface size and
// initial shape stay as they were at startup.
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.FileWatch.configPath)
	if err != nil {
		app.log.Warn("config reload failed", "error", err)
		return
	}
	app.FileWatch.config.Style = cfg.Style
	app.Editor.controller.SetStyle(cfg.RenderStyle())
	app.log.Info("style reloaded")
}
