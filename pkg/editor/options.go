package editor

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/render"
)

// Option configures a Controller
type Option func(*settings)

type settings struct {
	params             garment.Parameters
	policy             garment.ClampPolicy
	toleranceRatio     float64
	nudgeStep          float64
	style              render.Style
	logger             *slog.Logger
	renderHook         func()
	secondPressCancels bool
}

func defaultSettings() settings {
	return settings{
		params:             garment.DefaultParameters(),
		policy:             garment.DefaultClampPolicy(),
		toleranceRatio:     garment.DefaultToleranceRatio,
		nudgeStep:          garment.DefaultNudgeStep,
		style:              render.DefaultStyle(),
		logger:             slog.New(slog.DiscardHandler),
		secondPressCancels: true,
	}
}

// validate rejects tuning values that would let NaN or infinities reach the
// parameters or the hit radius
func (s settings) validate() error {
	if !(s.toleranceRatio > 0) || math.IsInf(s.toleranceRatio, 1) {
		return fmt.Errorf("%w: tolerance ratio %v", ErrInvalidOption, s.toleranceRatio)
	}
	if !(s.nudgeStep > 0) || math.IsInf(s.nudgeStep, 1) {
		return fmt.Errorf("%w: nudge step %v", ErrInvalidOption, s.nudgeStep)
	}
	if err := s.params.Validate(s.policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return nil
}

// WithParameters sets the initial garment shape
func WithParameters(p garment.Parameters) Option {
	return func(s *settings) { s.params = p }
}

// WithClampPolicy sets the lower bound for length parameters
func WithClampPolicy(policy garment.ClampPolicy) Option {
	return func(s *settings) { s.policy = policy }
}

// WithToleranceRatio sets the hit radius as a fraction of surface height
func WithToleranceRatio(ratio float64) Option {
	return func(s *settings) { s.toleranceRatio = ratio }
}

// WithNudgeStep sets the origin translation per nudge
func WithNudgeStep(step float64) Option {
	return func(s *settings) { s.nudgeStep = step }
}

// WithStyle sets the render style
func WithStyle(style render.Style) Option {
	return func(s *settings) { s.style = style }
}

// WithLogger sets the logger. Nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRenderHook registers a function called after every render pass,
// e.g. to refresh a widget showing the surface.
func WithRenderHook(hook func()) Option {
	return func(s *settings) { s.renderHook = hook }
}

// WithSecondPressCancels controls a pointer press while already dragging.
// When true (the default) the press ends the drag without a new hit test;
// when false the press hit-tests again and may capture another part.
func WithSecondPressCancels(cancel bool) Option {
	return func(s *settings) { s.secondPressCancels = cancel }
}
