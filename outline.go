package zigzag

import "math"

// Insets is the padding between the view edges and its content.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Bounds is the current view size and padding, supplied by the host on
// every redraw.
type Bounds struct {
	Width, Height float64
	Padding       Insets
}

// MaxExtent is the largest width or height, in pixels, that produces
// geometry. Anything larger is treated like a zero-sized view.
const MaxExtent = 1 << 16

// PixelSize returns the raster dimensions that cover the bounds.
// Non-positive, non-finite or oversized dimensions yield 0.
func (b Bounds) PixelSize() (w, h int) {
	return pixelExtent(b.Width), pixelExtent(b.Height)
}

func pixelExtent(v float64) int {
	if !(v > 0) || v > MaxExtent {
		return 0
	}
	return int(math.Ceil(v))
}

// Layout is the geometry an Outline is derived from: the drawable
// rectangle after padding and elevation insets, and how the teeth fit
// across its width.
type Layout struct {
	Left, Top, Right, Bottom float64

	// Usable is the drawable width, Right - Left.
	Usable float64

	// ToothHeight is the effective tooth height: floored, and clamped
	// to the drawable height. Zero means a plain rectangle.
	ToothHeight float64

	// Seed is the width of one tooth period, 2 * ToothHeight.
	Seed float64

	// Teeth is the number of whole periods that fit in Usable.
	Teeth int

	// Remainder is the width left over after the whole periods.
	Remainder float64

	// SideRemainder is the flat margin added to each of the two edge teeth.
	SideRemainder float64
}

// Empty reports whether the layout leaves no drawable area, or an area
// wider or taller than MaxExtent.
func (l Layout) Empty() bool {
	w, h := l.Usable, l.Bottom-l.Top
	return !(w > 0 && w <= MaxExtent && h > 0 && h <= MaxExtent)
}

// Span returns the drawable height, Bottom - Top.
func (l Layout) Span() float64 {
	return l.Bottom - l.Top
}

// ComputeLayout insets the bounds by padding and elevation and fits the
// teeth across the remaining width. Elevation is clamped to
// [0, MaxElevation].
//
// Degenerate input never produces undefined geometry:
//   - no drawable area (negative width or height, NaN, Inf) or a drawable
//     area beyond MaxExtent: empty layout
//   - tooth height < 1: no teeth
//   - tooth height above the drawable height: clamped to that height
func ComputeLayout(b Bounds, toothHeight, elevation float64) Layout {
	e := clampElevation(elevation)
	l := Layout{
		Left:   b.Padding.Left + e,
		Right:  b.Width - b.Padding.Right - e,
		Top:    b.Padding.Top + e/2,
		Bottom: b.Height - b.Padding.Bottom - e - e/2,
	}
	l.Usable = l.Right - l.Left
	if l.Empty() {
		return l
	}

	h := math.Floor(toothHeight)
	if span := math.Floor(l.Span()); h > span {
		h = span
	}
	if !(h > 0) {
		return l
	}

	l.ToothHeight = h
	l.Seed = 2 * h
	l.Teeth = int(math.Floor(l.Usable / l.Seed))
	l.Remainder = l.Usable - l.Seed*float64(l.Teeth)
	l.SideRemainder = math.Floor(l.Remainder / 2)
	return l
}

// Outline is a closed polygon: a rectangle whose bottom edge is a row of
// triangular teeth. It is immutable; every build returns a new one.
type Outline struct {
	points []Point
	layout Layout
}

// BuildOutline computes the zigzag outline for the given bounds.
//
// The points trace the right, top and left edges starting at the
// bottom-right corner, then run along the bottom edge from left to right
// as peak/valley pairs. The polygon is closed implicitly from the last
// point back to the first. A non-empty outline always has
// 4 + 2*Teeth points.
func BuildOutline(b Bounds, toothHeight, elevation float64) Outline {
	l := ComputeLayout(b, toothHeight, elevation)
	if l.Empty() {
		return Outline{layout: l}
	}

	pts := make([]Point, 0, 4+2*l.Teeth)
	pts = append(pts,
		Pt(l.Right, l.Bottom),
		Pt(l.Right, l.Top),
		Pt(l.Left, l.Top),
		Pt(l.Left, l.Bottom),
	)

	half := l.Seed / 2
	peak := l.Bottom - l.ToothHeight
	for i := 0; i < l.Teeth; i++ {
		start := float64(i)*l.Seed + l.SideRemainder + l.Left
		if i == 0 {
			start = l.Left + l.SideRemainder
		}
		end := start + l.Seed
		if i == l.Teeth-1 {
			end += l.SideRemainder
		}
		pts = append(pts, Pt(start+half, peak), Pt(end, l.Bottom))
	}

	return Outline{points: pts, layout: l}
}

// Points returns a copy of the outline vertices.
func (o Outline) Points() []Point {
	if len(o.points) == 0 {
		return nil
	}
	return append([]Point(nil), o.points...)
}

// Len returns the number of vertices.
func (o Outline) Len() int { return len(o.points) }

// Teeth returns the number of teeth along the bottom edge.
func (o Outline) Teeth() int {
	if o.Empty() {
		return 0
	}
	return o.layout.Teeth
}

// Empty reports whether the outline has no area to draw.
func (o Outline) Empty() bool { return len(o.points) == 0 }

// Layout returns the geometry the outline was built from.
func (o Outline) Layout() Layout { return o.layout }
