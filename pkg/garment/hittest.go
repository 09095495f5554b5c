package garment

import "github.com/philipparndt/gogarment/pkg/geometry"

// HitTest returns the first part, in enumeration order, whose control point
// lies strictly closer than tolerance to pos. Parts in excluded are skipped.
//
// This is a first-match policy: when hit zones overlap the earlier-declared
// part wins even if a later one is closer.
func HitTest(pos geometry.Vector2, points ControlPoints, tolerance float64, excluded PartSet) (Part, bool) {
	for _, part := range Parts() {
		if excluded.Contains(part) {
			continue
		}
		if pos.Distance(points[part]) < tolerance {
			return part, true
		}
	}
	return 0, false
}

// Tolerance returns the hit radius in pixels for a surface height
func Tolerance(height, ratio float64) float64 {
	return height * ratio
}
