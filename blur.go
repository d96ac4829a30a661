package zigzag

import "github.com/gogpu/zigzag/internal/filter"

// BlurEngine provides the blur primitive the shadow needs. A nil engine
// means the capability is absent.
type BlurEngine = filter.Engine

// BlurSession blurs alpha masks in place. It is acquired from a
// BlurEngine for a single shadow and must be closed afterwards.
type BlurSession = filter.Session

// NoBlur is the absent blur capability. Views built with it draw the
// flat polygon only.
var NoBlur BlurEngine

// GaussianBlur returns the built-in separable Gaussian blur engine.
func GaussianBlur() BlurEngine {
	return filter.NewGaussian()
}

// BildBlur returns a blur engine backed by github.com/anthonynsimon/bild.
func BildBlur() BlurEngine {
	return filter.NewBild()
}
