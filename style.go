package zigzag

import (
	"image/color"
	"math"
)

// MaxElevation is the largest supported elevation, in pixels.
// It bounds both the inset and the shadow blur radius.
const MaxElevation = 25.0

// Style holds the three values that shape the surface. A Style is
// read-only once built; build it with NewStyle.
type Style struct {
	// ToothHeight is the height of one zigzag tooth. Fractions are
	// dropped when the outline is built.
	ToothHeight float64

	// Elevation is the depth cue in pixels, within [0, MaxElevation].
	Elevation float64

	// Fill is the color the outline is filled with.
	Fill color.Color
}

// NewStyle creates a Style, clamping elevation to [0, MaxElevation],
// negative or NaN tooth heights to 0 and a nil fill to DefaultFill.
func NewStyle(toothHeight, elevation float64, fill color.Color) Style {
	if !(toothHeight > 0) {
		toothHeight = 0
	}
	if fill == nil {
		fill = DefaultFill
	}
	return Style{
		ToothHeight: toothHeight,
		Elevation:   clampElevation(elevation),
		Fill:        fill,
	}
}

// DefaultStyle returns the style of an unconfigured surface:
// no teeth, no elevation, white fill.
func DefaultStyle() Style {
	return NewStyle(0, 0, nil)
}

// ShadowOffset returns the downward shift of the shadow in whole pixels.
func (s Style) ShadowOffset() int {
	return int(math.Round(clampElevation(s.Elevation) / 2))
}

// clampElevation clamps e to [0, MaxElevation]. NaN maps to 0.
func clampElevation(e float64) float64 {
	if !(e > 0) {
		return 0
	}
	return math.Min(e, MaxElevation)
}
