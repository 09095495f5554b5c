package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/pkg/editor"
	"github.com/philipparndt/gogarment/pkg/render"
	"github.com/philipparndt/gogarment/pkg/watcher"
)

// EditorState holds the controller and the display list it draws into
type EditorState struct {
	controller *editor.Controller
	recorder   *render.Recorder
	screen     *screenSurface
}

// ViewSettings holds display settings
type ViewSettings struct {
	showHelp bool
	showInfo bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
}

// FileWatchState holds config watching and reload state
type FileWatchState struct {
	configPath  string
	config      *config.Config
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // Set from the watcher goroutine
}
