package garment

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

var (
	// ErrUnknownPart is returned when a part has no transform rule or name
	ErrUnknownPart = errors.New("unknown garment part")

	// ErrUnknownDirection is returned for nudge directions outside Up/Down/Left/Right
	ErrUnknownDirection = errors.New("unknown nudge direction")

	// ErrInvalidParameters is returned by Parameters.Validate
	ErrInvalidParameters = errors.New("invalid garment parameters")
)

const (
	// DefaultMinLength is the lower bound for every length-like parameter
	DefaultMinLength = 0.01

	// DefaultToleranceRatio is the hit radius as a fraction of surface height
	DefaultToleranceRatio = 0.05

	// DefaultNudgeStep is the origin translation per nudge, in normalized units
	DefaultNudgeStep = 0.01
)

// Parameters describes a garment silhouette in normalized units
// (fractions of the surface width and height).
type Parameters struct {
	Origin          geometry.Vector2 // Anchor between the shoulders
	ShoulderLength  float64          // Full shoulder span
	WaistLength     float64          // Full waist span
	FlareLength     float64          // Full span at the hem
	HemLength       float64          // Depth from shoulders to hem
	SleeveVector    geometry.Vector2 // Offset from shoulder to sleeve tip
	SleeveThickness float64          // Half-width of the sleeve band
}

// DefaultParameters returns the initial garment shape
func DefaultParameters() Parameters {
	return Parameters{
		Origin:          geometry.NewVector2(0.5, 0.2),
		ShoulderLength:  0.2,
		WaistLength:     0.15,
		FlareLength:     0.3,
		HemLength:       0.4,
		SleeveVector:    geometry.NewVector2(0.1, 0.2),
		SleeveThickness: 0.05,
	}
}

// ClampPolicy bounds the length-like parameters
type ClampPolicy struct {
	MinLength float64
}

// DefaultClampPolicy returns the lower-bound policy used by the editor
func DefaultClampPolicy() ClampPolicy {
	return ClampPolicy{MinLength: DefaultMinLength}
}

// Clamp applies the policy to a single length
func (c ClampPolicy) Clamp(length float64) float64 {
	return math.Max(length, c.MinLength)
}

// Validate checks that all values are finite and that the lengths respect the policy
func (p Parameters) Validate(policy ClampPolicy) error {
	if !finite(policy.MinLength) || policy.MinLength <= 0 {
		return fmt.Errorf("%w: minimum length %v must be positive and finite", ErrInvalidParameters, policy.MinLength)
	}
	if !p.Origin.IsFinite() || !p.SleeveVector.IsFinite() || !finite(p.SleeveThickness) {
		return fmt.Errorf("%w: non-finite value", ErrInvalidParameters)
	}

	lengths := []struct {
		name  string
		value float64
	}{
		{"shoulder length", p.ShoulderLength},
		{"waist length", p.WaistLength},
		{"flare length", p.FlareLength},
		{"hem length", p.HemLength},
	}
	for _, l := range lengths {
		if !finite(l.value) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, l.name)
		}
		if l.value < policy.MinLength {
			return fmt.Errorf("%w: %s %.4f is below %.4f", ErrInvalidParameters, l.name, l.value, policy.MinLength)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
