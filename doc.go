// Package zigzag draws a rectangular container surface whose bottom edge is a
// zigzag (triangular wave), with an optional soft drop shadow under that edge.
//
// # Overview
//
// The package has two pieces of real logic:
//   - [BuildOutline] computes the closed zigzag polygon from the current
//     bounds, padding, tooth height and elevation.
//   - [SynthesizeShadow] rasterizes that polygon into an alpha-only mask,
//     blurs it and hands it back for compositing under the fill.
//
// [View] ties both together for a host that redraws on every frame:
//
//	v := zigzag.NewView(zigzag.NewStyle(10, 6, color.White))
//
//	dst := image.NewRGBA(image.Rect(0, 0, 300, 120))
//	v.Draw(dst, zigzag.Bounds{Width: 300, Height: 120})
//
// # Coordinate System
//
// Standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Blur
//
// The shadow needs a blur primitive. It is injected as a [BlurEngine]; a nil
// engine means the capability is absent and only the flat polygon is drawn.
// [GaussianBlur] is the default, [BildBlur] delegates to
// github.com/anthonynsimon/bild.
package zigzag

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
