package filter

import (
	"errors"
	"image"
	"math"
	"testing"
)

// newBlockMask returns a w×h mask with a filled square block of value v.
func newBlockMask(w, h int, block image.Rectangle, v uint8) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := block.Min.Y; y < block.Max.Y; y++ {
		for x := block.Min.X; x < block.Max.X; x++ {
			m.Pix[m.PixOffset(x, y)] = v
		}
	}
	return m
}

func maskSum(m *image.Alpha) int {
	sum := 0
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			sum += int(m.AlphaAt(x, y).A)
		}
	}
	return sum
}

func engines() map[string]Engine {
	return map[string]Engine{
		"gaussian": NewGaussian(),
		"bild":     NewBild(),
	}
}

func TestEngineBlurSpreadsAndPreservesMass(t *testing.T) {
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			m := newBlockMask(40, 40, image.Rect(15, 15, 25, 25), 200)
			before := maskSum(m)

			s, err := eng.Open()
			if err != nil {
				t.Fatalf("Open() = %v", err)
			}
			defer s.Close()

			if err := s.Blur(m, 3); err != nil {
				t.Fatalf("Blur() = %v", err)
			}

			after := maskSum(m)
			if diff := math.Abs(float64(after - before)); diff > float64(before)*0.03 {
				t.Errorf("mass changed from %d to %d", before, after)
			}
			if a := m.AlphaAt(14, 20).A; a == 0 {
				t.Error("blur should spread coverage outside the block")
			}
			if a := m.AlphaAt(15, 20).A; a >= 200 {
				t.Errorf("block edge alpha = %d, want < 200 after blur", a)
			}
			if a := m.AlphaAt(0, 0).A; a != 0 {
				t.Errorf("far corner alpha = %d, want 0", a)
			}
		})
	}
}

func TestEngineBlurZeroRadius(t *testing.T) {
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			m := newBlockMask(10, 10, image.Rect(3, 3, 6, 6), 255)
			want := append([]uint8(nil), m.Pix...)

			s, _ := eng.Open()
			defer s.Close()

			for _, r := range []float64{0, -2} {
				if err := s.Blur(m, r); err != nil {
					t.Fatalf("Blur(%v) = %v", r, err)
				}
			}
			for i := range want {
				if m.Pix[i] != want[i] {
					t.Fatalf("pixel %d changed from %d to %d", i, want[i], m.Pix[i])
				}
			}
		})
	}
}

func TestEngineBlurNilAndEmpty(t *testing.T) {
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			s, _ := eng.Open()
			defer s.Close()

			if err := s.Blur(nil, 5); err != nil {
				t.Errorf("Blur(nil) = %v, want nil", err)
			}
			if err := s.Blur(image.NewAlpha(image.Rectangle{}), 5); err != nil {
				t.Errorf("Blur(empty) = %v, want nil", err)
			}
		})
	}
}

func TestEngineSessionClosed(t *testing.T) {
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			s, _ := eng.Open()
			if err := s.Close(); err != nil {
				t.Fatalf("Close() = %v", err)
			}
			if err := s.Close(); err != nil {
				t.Errorf("second Close() = %v, want nil", err)
			}

			m := newBlockMask(4, 4, image.Rect(1, 1, 3, 3), 255)
			if err := s.Blur(m, 2); !errors.Is(err, ErrSessionClosed) {
				t.Errorf("Blur after Close = %v, want ErrSessionClosed", err)
			}
		})
	}
}

func TestGaussianSessionsReleased(t *testing.T) {
	base := activeSessions.Load()
	eng := NewGaussian()

	sessions := make([]Session, 3)
	for i := range sessions {
		s, err := eng.Open()
		if err != nil {
			t.Fatalf("Open() = %v", err)
		}
		sessions[i] = s
	}
	if got := activeSessions.Load() - base; got != 3 {
		t.Errorf("open sessions delta = %d, want 3", got)
	}

	for _, s := range sessions {
		_ = s.Blur(newBlockMask(8, 8, image.Rect(2, 2, 6, 6), 255), 2)
		_ = s.Close()
	}
	if got := activeSessions.Load() - base; got != 0 {
		t.Errorf("open sessions delta after Close = %d, want 0", got)
	}
}

func TestEnginesEdgePadding(t *testing.T) {
	blurred := func(eng Engine) *image.Alpha {
		m := newBlockMask(20, 20, image.Rect(0, 0, 20, 20), 255)
		s, err := eng.Open()
		if err != nil {
			t.Fatalf("Open() = %v", err)
		}
		defer func() { _ = s.Close() }()
		if err := s.Blur(m, 4); err != nil {
			t.Fatalf("Blur() = %v", err)
		}
		return m
	}

	g := blurred(NewGaussian())
	b := blurred(NewBild())

	// Gaussian fades toward the transparent outside; bild repeats the
	// border and stays dense.
	if ga, ba := g.AlphaAt(0, 10).A, b.AlphaAt(0, 10).A; ga >= ba {
		t.Errorf("edge alpha gaussian %d, bild %d; want gaussian lower", ga, ba)
	}
	if a := b.AlphaAt(0, 10).A; a < 250 {
		t.Errorf("bild edge alpha = %d, want ~255", a)
	}
	if a := g.AlphaAt(10, 10).A; a < 250 {
		t.Errorf("gaussian center alpha = %d, want ~255", a)
	}
}

func TestGaussianEdgesStayTransparentOutside(t *testing.T) {
	// A fully covered mask loses coverage at the borders because
	// everything beyond the mask counts as transparent.
	m := newBlockMask(20, 20, image.Rect(0, 0, 20, 20), 255)

	s, _ := NewGaussian().Open()
	defer s.Close()
	if err := s.Blur(m, 4); err != nil {
		t.Fatalf("Blur() = %v", err)
	}

	if a := m.AlphaAt(10, 10).A; a != 255 {
		t.Errorf("interior alpha = %d, want 255", a)
	}
	if a := m.AlphaAt(0, 10).A; a >= 255 {
		t.Errorf("edge alpha = %d, want < 255", a)
	}
}

func TestGaussianSubImage(t *testing.T) {
	parent := newBlockMask(40, 40, image.Rect(15, 15, 25, 25), 255)
	sub := parent.SubImage(image.Rect(10, 10, 30, 30)).(*image.Alpha)

	s, _ := NewGaussian().Open()
	defer s.Close()
	if err := s.Blur(sub, 2); err != nil {
		t.Fatalf("Blur() = %v", err)
	}

	if a := parent.AlphaAt(14, 20).A; a == 0 {
		t.Error("blur through a sub-image should reach the parent pixels")
	}
	if a := parent.AlphaAt(5, 5).A; a != 0 {
		t.Errorf("pixel outside the sub-image = %d, want 0", a)
	}
}

func TestClampUint8(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{0.4, 0},
		{0.6, 1},
		{254.6, 255},
		{300, 255},
	}

	for _, tt := range tests {
		if got := clampUint8(tt.in); got != tt.want {
			t.Errorf("clampUint8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func BenchmarkGaussianBlur(b *testing.B) {
	m := newBlockMask(300, 120, image.Rect(20, 10, 280, 100), 51)
	s, _ := NewGaussian().Open()
	defer s.Close()

	b.ReportAllocs()
	for b.Loop() {
		_ = s.Blur(m, 12)
	}
}
