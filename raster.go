package zigzag

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// fillOutline rasterizes o onto dst with an anti-aliased solid fill.
// Outline coordinates are relative to dst.Bounds().Min.
func fillOutline(dst draw.Image, o Outline, c color.Color) {
	if o.Empty() {
		return
	}
	r := dst.Bounds()
	if r.Empty() {
		return
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over

	pts := o.points
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()

	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}
