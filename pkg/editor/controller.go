package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/render"
)

var (
	// ErrNoSurface is returned by New when there is nothing to draw on
	ErrNoSurface = errors.New("no drawable surface")
	// ErrInvalidOption is returned by New for unusable parameters or tuning
	ErrInvalidOption = errors.New("invalid editor option")
)

// State is the drag state of a Controller
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller owns the garment parameters and routes pointer input to the
// hit tester, the transform rules and the render pass.
//
// A Controller is not safe for concurrent use; feed it from one UI thread.
type Controller struct {
	surface render.Surface
	size    geometry.Vector2 // Read once at construction

	params  garment.Parameters
	initial garment.Parameters
	policy  garment.ClampPolicy

	tolerance float64
	nudgeStep float64
	style     render.Style
	overlay   bool

	state    State
	captured garment.Part
	last     geometry.Vector2

	secondPressCancels bool
	renderHook         func()
	log                *slog.Logger
}

// New binds a controller to a surface and renders the initial shape.
// A nil surface or one without area fails with ErrNoSurface; callers must
// not attach input handlers in that case.
func New(surface render.Surface, opts ...Option) (*Controller, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: surface size %dx%d", ErrNoSurface, w, h)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		surface:            surface,
		size:               geometry.NewVector2(float64(w), float64(h)),
		params:             s.params,
		initial:            s.params,
		policy:             s.policy,
		tolerance:          garment.Tolerance(float64(h), s.toleranceRatio),
		nudgeStep:          s.nudgeStep,
		style:              s.style,
		secondPressCancels: s.secondPressCancels,
		renderHook:         s.renderHook,
		log:                s.logger,
	}

	c.log.Debug("editor created", "width", w, "height", h, "tolerance", c.tolerance)
	c.render()
	return c, nil
}

// PointerDown starts a drag when pos hits a part. While already dragging
// the press ends the drag (see WithSecondPressCancels).
func (c *Controller) PointerDown(pos geometry.Vector2) {
	if c.state == Dragging && c.secondPressCancels {
		c.log.Debug("drag cancelled by second press", "part", c.captured)
		c.release()
		return
	}

	part, ok := garment.HitTest(pos, c.ControlPoints(), c.tolerance, garment.DragExcluded)
	if !ok {
		c.release()
		return
	}

	c.state = Dragging
	c.captured = part
	c.last = pos
	c.log.Debug("drag started", "part", part, "x", pos.X, "y", pos.Y)
}

// PointerMove applies the motion since the last event to the captured part
// and redraws. It does nothing while idle.
func (c *Controller) PointerMove(pos geometry.Vector2) {
	if c.state != Dragging {
		return
	}

	delta := pos.Sub(c.last).Div(c.size)
	c.last = pos

	if err := garment.Transform(&c.params, c.captured, delta, c.policy); err != nil {
		c.log.Warn("transform skipped", "part", c.captured, "error", err)
	}
	c.render()
}

// PointerUp ends any drag
func (c *Controller) PointerUp() {
	if c.state == Dragging {
		c.log.Debug("drag finished", "part", c.captured)
	}
	c.release()
}

// SetOverlay switches overlay markers on or off and redraws
func (c *Controller) SetOverlay(enabled bool) {
	c.overlay = enabled
	c.render()
}

// Nudge moves the garment origin one step. It ignores the drag state.
func (c *Controller) Nudge(dir garment.Direction) error {
	if err := garment.Nudge(&c.params, dir, c.nudgeStep); err != nil {
		return err
	}
	c.render()
	return nil
}

// Reset restores the parameters the controller was created with
func (c *Controller) Reset() {
	c.params = c.initial
	c.release()
	c.render()
}

// SetStyle replaces the render style and redraws
func (c *Controller) SetStyle(style render.Style) {
	c.style = style
	c.render()
}

// Parameters returns a copy of the current garment parameters
func (c *Controller) Parameters() garment.Parameters {
	return c.params
}

// ControlPoints returns the pixel coordinates derived from the current parameters
func (c *Controller) ControlPoints() garment.ControlPoints {
	return garment.Vertices(c.params, c.size.X, c.size.Y)
}

// State returns the drag state
func (c *Controller) State() State {
	return c.state
}

// Captured returns the part being dragged
func (c *Controller) Captured() (garment.Part, bool) {
	return c.captured, c.state == Dragging
}

// Overlay reports whether overlay markers are shown
func (c *Controller) Overlay() bool {
	return c.overlay
}

// Size returns the surface size fixed at construction
func (c *Controller) Size() (width, height float64) {
	return c.size.X, c.size.Y
}

// Tolerance returns the hit radius in pixels
func (c *Controller) Tolerance() float64 {
	return c.tolerance
}

func (c *Controller) release() {
	c.state = Idle
	c.captured = 0
}

func (c *Controller) render() {
	opts := render.Options{Overlay: c.overlay, Tolerance: c.tolerance, Style: c.style}
	if err := render.Draw(c.surface, c.ControlPoints(), opts); err != nil {
		c.log.Error("render failed", "error", err)
	}
	if c.renderHook != nil {
		c.renderHook()
	}
}
