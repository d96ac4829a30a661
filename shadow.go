package zigzag

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrNoBlur is returned by SynthesizeShadow when no blur engine is given.
var ErrNoBlur = errors.New("zigzag: blur capability unavailable")

// SynthesizeShadow renders the shadow mask for an outline.
//
// The mask is a new w×h alpha-only raster. The outline is filled into it
// at ShadowAlpha and then blurred with min(radius, MaxElevation) through
// a session opened on eng. The session is closed before returning on
// every path. Pixels beyond the blurred footprint stay fully transparent.
//
// The mask is not offset; the compositor draws it shifted down by half
// the elevation.
func SynthesizeShadow(o Outline, w, h int, radius float64, eng BlurEngine) (mask *image.Alpha, err error) {
	if eng == nil {
		return nil, ErrNoBlur
	}

	mask = image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if o.Empty() || mask.Rect.Empty() {
		return mask, nil
	}
	fillOutline(mask, o, shadowCoverage)

	radius = clampElevation(radius)
	if radius == 0 {
		return mask, nil
	}

	s, err := eng.Open()
	if err != nil {
		return nil, fmt.Errorf("zigzag: open blur session: %w", err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			mask, err = nil, fmt.Errorf("zigzag: close blur session: %w", cerr)
		}
	}()

	// Only the footprint can receive coverage, so the rest is left alone.
	fp := mask.SubImage(shadowFootprint(o, w, h, radius)).(*image.Alpha)
	if err := s.Blur(fp, radius); err != nil {
		return nil, fmt.Errorf("zigzag: blur shadow (radius %v): %w", radius, err)
	}
	return mask, nil
}

// shadowFootprint returns the region of a w×h mask the blurred outline
// can touch. Everything outside it is transparent.
func shadowFootprint(o Outline, w, h int, radius float64) image.Rectangle {
	if o.Empty() {
		return image.Rectangle{}
	}
	l := o.layout
	reach := math.Ceil(clampElevation(radius))
	r := image.Rect(
		int(math.Floor(l.Left-reach)),
		int(math.Floor(l.Top-reach)),
		int(math.Ceil(l.Right+reach)),
		int(math.Ceil(l.Bottom+reach)),
	)
	return r.Intersect(image.Rect(0, 0, w, h))
}
