package zigzag

import (
	"image"
	"image/color"
	"image/draw"
)

// View is a container surface with a zigzag bottom edge.
//
// A View holds only its style and configuration. Every redraw computes a
// fresh outline and shadow from the bounds it is given, so a View may be
// rendered from several goroutines at once.
type View struct {
	style         Style
	blur          BlurEngine
	blurAvailable bool
	observer      func(Frame)
}

// NewView creates a View with the given style.
// By default the shadow is blurred with GaussianBlur.
func NewView(style Style, opts ...Option) *View {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		style:         NewStyle(style.ToothHeight, style.Elevation, style.Fill),
		blur:          o.blur,
		blurAvailable: o.blur != nil,
		observer:      o.observer,
	}

	Logger().Debug("zigzag: view created",
		"tooth_height", v.style.ToothHeight,
		"elevation", v.style.Elevation,
		"blur", v.blurAvailable)
	return v
}

// Style returns the view style.
func (v *View) Style() Style { return v.style }

// BlurAvailable reports whether the view can draw a shadow.
func (v *View) BlurAvailable() bool { return v.blurAvailable }

// Frame is everything one redraw puts on screen.
type Frame struct {
	// Outline is the filled polygon.
	Outline Outline

	// Shadow is the blurred alpha mask, or nil when no shadow is drawn.
	Shadow *image.Alpha

	// ShadowOffset is the downward shift of the shadow, in pixels.
	ShadowOffset int

	// Fill is the polygon color.
	Fill color.Color
}

// Render computes the frame for the given bounds.
//
// The shadow is produced only when elevation is positive and the blur
// capability is present. If the blur engine fails the shadow is dropped
// and a warning is logged; the frame is still drawable.
func (v *View) Render(b Bounds) Frame {
	s := v.style
	f := Frame{
		Outline:      BuildOutline(b, s.ToothHeight, s.Elevation),
		ShadowOffset: s.ShadowOffset(),
		Fill:         s.Fill,
	}

	if s.Elevation <= 0 || !v.blurAvailable || f.Outline.Empty() {
		return f
	}

	w, h := b.PixelSize()
	mask, err := SynthesizeShadow(f.Outline, w, h, s.Elevation, v.blur)
	if err != nil {
		Logger().Warn("zigzag: shadow skipped", "err", err)
		return f
	}
	f.Shadow = mask
	return f
}

// Draw composites the frame onto dst: the shadow (if any) first, shifted
// down by ShadowOffset, then the filled outline on top.
// Frame coordinates are relative to dst.Bounds().Min.
func (f Frame) Draw(dst draw.Image) {
	if f.Outline.Empty() {
		return
	}

	if f.Shadow != nil {
		r := dst.Bounds()
		sr := f.Shadow.Bounds().Sub(f.Shadow.Bounds().Min).Add(r.Min).Add(image.Pt(0, f.ShadowOffset))
		draw.DrawMask(dst, sr, image.NewUniform(shadowColor), image.Point{}, f.Shadow, f.Shadow.Bounds().Min, draw.Over)
	}

	fill := f.Fill
	if fill == nil {
		fill = DefaultFill
	}
	fillOutline(dst, f.Outline, fill)
}

// Draw is the redraw entry point: it renders the view for the current
// bounds and composites the result onto dst.
func (v *View) Draw(dst draw.Image, b Bounds) {
	f := v.Render(b)
	f.Draw(dst)

	if v.observer != nil {
		v.observer(f)
	}
}
