package zigzag

// Option configures a View during creation.
// Use functional options to customize View behavior.
//
// Example:
//
//	// Default: built-in Gaussian blur
//	v := zigzag.NewView(style)
//
//	// Flat polygon only, no shadow
//	v := zigzag.NewView(style, zigzag.WithoutBlur())
type Option func(*viewOptions)

// viewOptions holds optional configuration for View creation.
type viewOptions struct {
	blur     BlurEngine
	observer func(Frame)
}

// defaultOptions returns the default view options.
func defaultOptions() viewOptions {
	return viewOptions{
		blur: GaussianBlur(),
	}
}

// WithBlurEngine sets the blur engine used to soften the shadow.
// Passing nil is the same as WithoutBlur.
//
// Example:
//
//	v := zigzag.NewView(style, zigzag.WithBlurEngine(zigzag.BildBlur()))
func WithBlurEngine(e BlurEngine) Option {
	return func(o *viewOptions) {
		o.blur = e
	}
}

// WithoutBlur marks the blur capability as absent. The shadow is then
// skipped and only the filled polygon is drawn.
func WithoutBlur() Option {
	return WithBlurEngine(NoBlur)
}

// WithFrameObserver registers a function called with every frame after
// it has been composited. Use it for diagnostics; it runs on the drawing
// goroutine.
func WithFrameObserver(fn func(Frame)) Option {
	return func(o *viewOptions) {
		o.observer = fn
	}
}
