// Package style reads zigzag surface styles from configuration files.
//
// A style file sets up to three attributes:
//
//	zigzagHeight          = "8dp"       # length, default 0
//	zigzagElevation       = 6           # length, default 0, clamped to 25px
//	zigzagBackgroundColor = "#FFF3E0"   # color, default opaque white
//
// TOML and YAML documents are supported. Lengths are a bare number
// (pixels) or a number with a px, dp, dip or sp suffix; density
// independent units are multiplied by the configured density. Colors are
// #RGB, #RRGGBB or #AARRGGBB, an SVG color name such as red or gray, or
// transparent.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/zigzag"
)

// Attribute names as they appear in style files.
const (
	AttrHeight     = "zigzagHeight"
	AttrElevation  = "zigzagElevation"
	AttrBackground = "zigzagBackgroundColor"
)

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("style: unknown format")

	// ErrInvalidLength is returned for malformed length values.
	ErrInvalidLength = errors.New("style: invalid length")

	// ErrInvalidColor is returned for malformed color values.
	ErrInvalidColor = errors.New("style: invalid color")
)

// Format is a style file encoding.
type Format int

const (
	// TOML is a TOML document (.toml).
	TOML Format = iota
	// YAML is a YAML document (.yaml, .yml).
	YAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Option configures decoding.
type Option func(*options)

type options struct {
	density float64
}

// WithDensity sets the pixels-per-dp factor for density independent
// lengths. Non-positive values are ignored. The default is 1.
func WithDensity(d float64) Option {
	return func(o *options) {
		if d > 0 && !math.IsInf(d, 0) {
			o.density = d
		}
	}
}

// Load reads a style file. The format is taken from the file extension.
func Load(path string, opts ...Option) (zigzag.Style, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return zigzag.Style{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return zigzag.Style{}, fmt.Errorf("style: read %s: %w", path, err)
	}
	s, err := Decode(data, format, opts...)
	if err != nil {
		return zigzag.Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses a style document. Missing attributes take their
// defaults; unknown keys are ignored.
func Decode(data []byte, format Format, opts ...Option) (zigzag.Style, error) {
	o := options{density: 1}
	for _, opt := range opts {
		opt(&o)
	}

	raw := map[string]any{}
	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return zigzag.Style{}, fmt.Errorf("style: decode toml: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return zigzag.Style{}, fmt.Errorf("style: decode yaml: %w", err)
		}
	default:
		return zigzag.Style{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	var (
		height, elevation float64
		fill              color.Color = zigzag.DefaultFill
		err               error
	)
	for key, v := range raw {
		switch key {
		case AttrHeight:
			height, err = lengthValue(v, o.density)
		case AttrElevation:
			elevation, err = lengthValue(v, o.density)
		case AttrBackground:
			s, ok := v.(string)
			if !ok {
				return zigzag.Style{}, fmt.Errorf("%s: %w: %v", key, ErrInvalidColor, v)
			}
			fill, err = ParseColor(s)
		default:
			zigzag.Logger().Debug("style: ignoring unknown attribute", "key", key)
			continue
		}
		if err != nil {
			return zigzag.Style{}, fmt.Errorf("%s: %w", key, err)
		}
	}

	return zigzag.NewStyle(height, elevation, fill), nil
}

// lengthValue converts a decoded scalar into pixels.
func lengthValue(v any, density float64) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidLength, n)
		}
		return n, nil
	case string:
		return ParseLength(n, density)
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidLength, v)
	}
}

// ParseLength parses a length such as "12", "12px" or "8dp" into pixels.
func ParseLength(s string, density float64) (float64, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	scale := 1.0
	for _, unit := range []string{"px", "dip", "dp", "sp"} {
		if strings.HasSuffix(str, unit) {
			str = strings.TrimSpace(strings.TrimSuffix(str, unit))
			if unit != "px" {
				scale = density
			}
			break
		}
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return v * scale, nil
}

// ParseColor parses #RGB, #RRGGBB, #AARRGGBB, an SVG color name or
// "transparent". The leading '#' is optional.
func ParseColor(s string) (color.NRGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[str]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	str = strings.TrimPrefix(str, "#")

	alpha := uint8(0xff)
	if len(str) == 8 {
		a, err := strconv.ParseUint(str[:2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		str = str[2:]
	}

	if len(str) != 3 && len(str) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex("#" + str)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
