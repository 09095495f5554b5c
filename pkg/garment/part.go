package garment

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Part identifies a landmark on the garment silhouette.
// The declaration order is the hit-test order.
type Part int

const (
	ShoulderLeft Part = iota
	ShoulderRight
	WaistLeft
	WaistRight
	FlareLeft
	FlareRight
	SleeveLeft
	SleeveRight
	Hem
	SleeveLeftInner
	SleeveRightInner
	ShoulderLeftInner
	ShoulderRightInner
	SleeveCenterLeft
	SleeveCenterRight

	// PartCount is the number of parts, not a part itself
	PartCount
)

// partWords spells every part in lower case; identifiers and labels are
// derived from it with the title caser
var partWords = [PartCount]string{
	ShoulderLeft:       "shoulder left",
	ShoulderRight:      "shoulder right",
	WaistLeft:          "waist left",
	WaistRight:         "waist right",
	FlareLeft:          "flare left",
	FlareRight:         "flare right",
	SleeveLeft:         "sleeve left",
	SleeveRight:        "sleeve right",
	Hem:                "hem",
	SleeveLeftInner:    "sleeve left inner",
	SleeveRightInner:   "sleeve right inner",
	ShoulderLeftInner:  "shoulder left inner",
	ShoulderRightInner: "shoulder right inner",
	SleeveCenterLeft:   "sleeve center left",
	SleeveCenterRight:  "sleeve center right",
}

var partNames, partLabels = buildPartNames()

func buildPartNames() (names, labels [PartCount]string) {
	caser := cases.Title(language.English)
	for i, words := range partWords {
		labels[i] = caser.String(words)
		names[i] = strings.ReplaceAll(labels[i], " ", "")
	}
	return names, labels
}

// Parts returns every part in enumeration order
func Parts() []Part {
	parts := make([]Part, PartCount)
	for i := range parts {
		parts[i] = Part(i)
	}
	return parts
}

// Valid reports whether p is one of the declared parts
func (p Part) Valid() bool {
	return p >= 0 && p < PartCount
}

func (p Part) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// Label returns a human readable name, e.g. "Sleeve Left Inner"
func (p Part) Label() string {
	if !p.Valid() {
		return p.String()
	}
	return partLabels[p]
}

// ParsePart resolves a part identifier or label, ignoring case.
// "ShoulderRight", "shoulderright" and "Shoulder Right" all match.
func ParsePart(s string) (Part, error) {
	s = strings.TrimSpace(s)
	for i := range partNames {
		if strings.EqualFold(partNames[i], s) || strings.EqualFold(partWords[i], s) {
			return Part(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
}

// PartSet is a fixed-size membership set of parts
type PartSet [PartCount]bool

// NewPartSet creates a set holding the given parts
func NewPartSet(parts ...Part) PartSet {
	var s PartSet
	for _, p := range parts {
		if p.Valid() {
			s[p] = true
		}
	}
	return s
}

// Contains reports whether p is in the set
func (s PartSet) Contains(p Part) bool {
	return p.Valid() && s[p]
}

// Union returns a set holding the members of both sets
func (s PartSet) Union(other PartSet) PartSet {
	for i := range s {
		s[i] = s[i] || other[i]
	}
	return s
}

// DragExcluded holds the parts the hit tester never returns for a drag.
// The inner shoulder points only close the sleeve outline.
var DragExcluded = NewPartSet(ShoulderLeftInner, ShoulderRightInner)

// OverlayExcluded holds the parts that get no overlay marker.
// Inner sleeve points stay draggable but are not highlighted.
var OverlayExcluded = DragExcluded.Union(NewPartSet(SleeveLeftInner, SleeveRightInner))
