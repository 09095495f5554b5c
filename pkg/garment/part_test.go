package garment

import (
	"errors"
	"math"
	"testing"
)

func TestPartsOrder(t *testing.T) {
	parts := Parts()
	if len(parts) != int(PartCount) {
		t.Fatalf("Parts failed: expected %d parts, got %d", PartCount, len(parts))
	}

	expected := []Part{
		ShoulderLeft, ShoulderRight, WaistLeft, WaistRight, FlareLeft, FlareRight,
		SleeveLeft, SleeveRight, Hem, SleeveLeftInner, SleeveRightInner,
		ShoulderLeftInner, ShoulderRightInner, SleeveCenterLeft, SleeveCenterRight,
	}
	for i, part := range expected {
		if parts[i] != part {
			t.Errorf("Parts[%d] failed: expected %s, got %s", i, part, parts[i])
		}
	}
}

func TestPartLabel(t *testing.T) {
	tests := map[Part]string{
		Hem:               "Hem",
		ShoulderLeft:      "Shoulder Left",
		SleeveRightInner:  "Sleeve Right Inner",
		SleeveCenterRight: "Sleeve Center Right",
	}
	for part, want := range tests {
		if got := part.Label(); got != want {
			t.Errorf("Label failed: expected %q, got %q", want, got)
		}
	}
}

func TestPartNamesAndLabels(t *testing.T) {
	tests := []struct {
		part  Part
		name  string
		label string
	}{
		{ShoulderLeft, "ShoulderLeft", "Shoulder Left"},
		{ShoulderRight, "ShoulderRight", "Shoulder Right"},
		{WaistLeft, "WaistLeft", "Waist Left"},
		{WaistRight, "WaistRight", "Waist Right"},
		{FlareLeft, "FlareLeft", "Flare Left"},
		{FlareRight, "FlareRight", "Flare Right"},
		{SleeveLeft, "SleeveLeft", "Sleeve Left"},
		{SleeveRight, "SleeveRight", "Sleeve Right"},
		{Hem, "Hem", "Hem"},
		{SleeveLeftInner, "SleeveLeftInner", "Sleeve Left Inner"},
		{SleeveRightInner, "SleeveRightInner", "Sleeve Right Inner"},
		{ShoulderLeftInner, "ShoulderLeftInner", "Shoulder Left Inner"},
		{ShoulderRightInner, "ShoulderRightInner", "Shoulder Right Inner"},
		{SleeveCenterLeft, "SleeveCenterLeft", "Sleeve Center Left"},
		{SleeveCenterRight, "SleeveCenterRight", "Sleeve Center Right"},
	}

	for _, tt := range tests {
		if got := tt.part.String(); got != tt.name {
			t.Errorf("String failed: expected %q, got %q", tt.name, got)
		}
		if got := tt.part.Label(); got != tt.label {
			t.Errorf("Label failed: expected %q, got %q", tt.label, got)
		}
	}

	if got := PartCount.Label(); got != "Part(15)" {
		t.Errorf("Label of invalid part failed: expected %q, got %q", "Part(15)", got)
	}
}

func TestParsePart(t *testing.T) {
	part, err := ParsePart("shoulderright")
	if err != nil {
		t.Fatalf("ParsePart failed: %v", err)
	}
	if part != ShoulderRight {
		t.Errorf("ParsePart failed: expected %s, got %s", ShoulderRight, part)
	}

	for _, input := range []string{"ShoulderRight", "Shoulder Right", " shoulder right "} {
		part, err := ParsePart(input)
		if err != nil || part != ShoulderRight {
			t.Errorf("ParsePart(%q) failed: expected %s, got %s (%v)", input, ShoulderRight, part, err)
		}
	}

	if _, err := ParsePart("collar"); !errors.Is(err, ErrUnknownPart) {
		t.Errorf("ParsePart failed: expected ErrUnknownPart, got %v", err)
	}
}

func TestEveryDraggablePartHasRule(t *testing.T) {
	for _, part := range Parts() {
		if DragExcluded.Contains(part) {
			if HasRule(part) {
				t.Errorf("%s is excluded from dragging but has a rule", part)
			}
			continue
		}
		if !HasRule(part) {
			t.Errorf("%s can be hit but has no transform rule", part)
		}
	}
}

func TestParametersValidate(t *testing.T) {
	policy := DefaultClampPolicy()
	if err := DefaultParameters().Validate(policy); err != nil {
		t.Fatalf("Validate failed for defaults: %v", err)
	}

	p := DefaultParameters()
	p.HemLength = 0.001
	if err := p.Validate(policy); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("Validate failed: expected ErrInvalidParameters, got %v", err)
	}

	// Sleeve values may go through zero
	p = DefaultParameters()
	p.SleeveThickness = -0.1
	p.SleeveVector.X = 0
	if err := p.Validate(policy); err != nil {
		t.Errorf("Validate failed: unclamped sleeve values rejected: %v", err)
	}

	for _, bound := range []float64{math.NaN(), math.Inf(1), 0} {
		if err := DefaultParameters().Validate(ClampPolicy{MinLength: bound}); !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("Validate failed: expected ErrInvalidParameters for min length %v, got %v", bound, err)
		}
	}
}
