package filter

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// Bild blurs alpha masks with github.com/anthonynsimon/bild.
// The mask is widened to RGBA by bild, blurred there, and the alpha
// channel is copied back.
//
// bild extends the border pixels past the mask edge, where Gaussian
// treats them as transparent. The two engines agree wherever the
// covered area sits at least one kernel reach inside the mask; next to
// an edge that clips the coverage, Bild leaves it denser.
type Bild struct{}

// NewBild creates a bild-backed blur engine.
func NewBild() *Bild {
	return &Bild{}
}

// Open starts a session. Bild sessions hold no resources.
func (b *Bild) Open() (Session, error) {
	return &bildSession{}, nil
}

type bildSession struct {
	closed bool
}

func (s *bildSession) Blur(m *image.Alpha, radius float64) error {
	if s.closed {
		return ErrSessionClosed
	}
	if m == nil || !(radius > 0) || m.Rect.Empty() {
		return nil
	}

	// bild weights its kernel with exp(-x²/4r), i.e. sigma² = 2r.
	sigma := Sigma(radius)
	out := blur.Gaussian(m, max(math.Round(sigma*sigma/2), 1))

	ob := out.Bounds()
	if ob.Dx() != m.Rect.Dx() || ob.Dy() != m.Rect.Dy() {
		return fmt.Errorf("filter: bild returned %v for a %v mask", ob.Size(), m.Rect.Size())
	}

	for y := 0; y < ob.Dy(); y++ {
		src := out.Pix[out.PixOffset(ob.Min.X, ob.Min.Y+y):]
		dst := m.Pix[m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y):]
		for x := 0; x < ob.Dx(); x++ {
			dst[x] = src[x*4+3]
		}
	}
	return nil
}

func (s *bildSession) Close() error {
	s.closed = true
	return nil
}
