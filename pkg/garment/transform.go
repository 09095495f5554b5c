package garment

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

// rule mutates the parameters for a pointer delta given in normalized units
type rule func(p *Parameters, delta geometry.Vector2, policy ClampPolicy)

// lengthRule grows the selected length by sign*delta.X and clamps it
func lengthRule(field func(*Parameters) *float64, sign float64) rule {
	return func(p *Parameters, delta geometry.Vector2, policy ClampPolicy) {
		f := field(p)
		*f = policy.Clamp(*f + sign*delta.X)
	}
}

// sleeveRule moves the sleeve tip; the left side mirrors X
func sleeveRule(signX float64) rule {
	return func(p *Parameters, delta geometry.Vector2, _ ClampPolicy) {
		p.SleeveVector.X += signX * delta.X
		p.SleeveVector.Y += delta.Y
	}
}

// thicknessRule projects the delta onto the sleeve band normal of one side
func thicknessRule(signX float64) rule {
	return func(p *Parameters, delta geometry.Vector2, _ ClampPolicy) {
		// Normalize yields zero for a zero sleeve vector, so the rule is a no-op
		axis := geometry.NewVector2(signX*p.SleeveVector.Y, p.SleeveVector.X).Normalize()
		p.SleeveThickness += delta.Dot(axis)
	}
}

func shoulder(p *Parameters) *float64 { return &p.ShoulderLength }
func waist(p *Parameters) *float64    { return &p.WaistLength }
func flare(p *Parameters) *float64    { return &p.FlareLength }

var rules = map[Part]rule{
	ShoulderLeft:  lengthRule(shoulder, -1),
	ShoulderRight: lengthRule(shoulder, 1),
	WaistLeft:     lengthRule(waist, -1),
	WaistRight:    lengthRule(waist, 1),
	FlareLeft:     lengthRule(flare, -1),
	FlareRight:    lengthRule(flare, 1),
	Hem: func(p *Parameters, delta geometry.Vector2, policy ClampPolicy) {
		p.HemLength = policy.Clamp(p.HemLength + delta.Y)
	},
	SleeveLeft:        sleeveRule(-1),
	SleeveLeftInner:   sleeveRule(-1),
	SleeveRight:       sleeveRule(1),
	SleeveRightInner:  sleeveRule(1),
	SleeveCenterLeft:  thicknessRule(1),
	SleeveCenterRight: thicknessRule(-1),
}

// HasRule reports whether a part can be dragged
func HasRule(part Part) bool {
	_, ok := rules[part]
	return ok
}

// Transform applies the rule for part to p. The delta is the pointer motion
// divided by the surface width and height. Parts without a rule leave p
// untouched and return an error wrapping ErrUnknownPart.
func Transform(p *Parameters, part Part, delta geometry.Vector2, policy ClampPolicy) error {
	r, ok := rules[part]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPart, part)
	}
	r(p, delta, policy)
	return nil
}

// Direction is a nudge command
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection resolves "up", "down", "left" or "right", ignoring case
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(name, s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Nudge translates the origin by step in the given direction.
// Screen coordinates grow downwards, so Up decreases Y.
func Nudge(p *Parameters, dir Direction, step float64) error {
	switch dir {
	case Up:
		p.Origin.Y -= step
	case Down:
		p.Origin.Y += step
	case Left:
		p.Origin.X -= step
	case Right:
		p.Origin.X += step
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDirection, dir)
	}
	return nil
}
