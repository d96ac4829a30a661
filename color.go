package zigzag

import "image/color"

// ShadowAlpha is the opacity of the shadow before blurring (20%).
const ShadowAlpha = 51

// DefaultFill is the fill color used when none is configured.
var DefaultFill color.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// shadowColor is the color the blurred mask is tinted with when composited.
var shadowColor color.Color = color.Black

// shadowCoverage is the source the outline is rasterized with into the mask.
var shadowCoverage = color.Alpha{A: ShadowAlpha}
