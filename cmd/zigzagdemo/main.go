// Command zigzagdemo renders a zigzag surface to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/zigzag"
	"github.com/gogpu/zigzag/style"
)

func main() {
	var (
		width     = flag.Int("width", 360, "view width")
		height    = flag.Int("height", 160, "view height")
		tooth     = flag.Float64("tooth", 8, "zigzag tooth height")
		elevation = flag.Float64("elevation", 6, "edge elevation (0-25)")
		fill      = flag.String("color", "#FFFFFF", "fill color")
		styleFile = flag.String("style", "", "style file (.toml, .yaml); overrides -tooth, -elevation and -color")
		density   = flag.Float64("density", 1, "pixels per dp for style file lengths")
		blur      = flag.String("blur", "gaussian", "blur engine: gaussian, bild or none")
		padding   = flag.Float64("padding", 0, "padding on every side of the view")
		margin    = flag.Int("margin", 24, "background margin around the view")
		output    = flag.String("output", "zigzag.png", "output file")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		zigzag.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := loadStyle(*styleFile, *density, *tooth, *elevation, *fill)
	if err != nil {
		log.Fatalf("Failed to load style: %v", err)
	}

	engine, err := blurEngine(*blur)
	if err != nil {
		log.Fatal(err)
	}

	v := zigzag.NewView(s, zigzag.WithBlurEngine(engine), zigzag.WithFrameObserver(func(f zigzag.Frame) {
		zigzag.Logger().Debug("frame",
			"points", f.Outline.Len(),
			"teeth", f.Outline.Teeth(),
			"shadow", f.Shadow != nil)
	}))

	canvas := image.NewRGBA(image.Rect(0, 0, *width+2**margin, *height+2**margin))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.NRGBA{R: 0xec, G: 0xef, B: 0xf1, A: 0xff}), image.Point{}, draw.Src)

	viewRect := image.Rect(*margin, *margin, *margin+*width, *margin+*height)
	dst := canvas.SubImage(viewRect).(*image.RGBA)
	v.Draw(dst, zigzag.Bounds{
		Width:   float64(*width),
		Height:  float64(*height),
		Padding: zigzag.Insets{Left: *padding, Top: *padding, Right: *padding, Bottom: *padding},
	})

	if err := savePNG(*output, canvas); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Zigzag saved to %s (%dx%d)\n", *output, canvas.Bounds().Dx(), canvas.Bounds().Dy())
}

func loadStyle(path string, density, tooth, elevation float64, fill string) (zigzag.Style, error) {
	if path != "" {
		return style.Load(path, style.WithDensity(density))
	}
	c, err := style.ParseColor(fill)
	if err != nil {
		return zigzag.Style{}, err
	}
	return zigzag.NewStyle(tooth, elevation, c), nil
}

func blurEngine(name string) (zigzag.BlurEngine, error) {
	switch name {
	case "gaussian":
		return zigzag.GaussianBlur(), nil
	case "bild":
		return zigzag.BildBlur(), nil
	case "none":
		return zigzag.NoBlur, nil
	default:
		return nil, fmt.Errorf("unknown blur engine %q (want gaussian, bild or none)", name)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}
