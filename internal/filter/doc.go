// Package filter provides the blur engines used to soften shadow masks.
//
// Engines work on single-channel alpha masks (*image.Alpha) and hand out
// scoped sessions: any scratch memory an engine needs is acquired by Open
// and given back by Close, so nothing outlives one redraw.
//
// Two engines are available:
//   - Gaussian: separable Gaussian blur, O(w*h*r) per mask, cached kernels
//   - Bild: delegates to github.com/anthonynsimon/bild/blur
//
// Blur radius follows the platform convention for shadow blur:
// the kernel spans ceil(r) pixels on each side and sigma = 0.4*r + 0.6.
package filter
