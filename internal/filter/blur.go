package filter

import (
	"image"
	"sync"
	"sync/atomic"
)

// Gaussian applies separable Gaussian blur to alpha masks.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*r) complexity instead of O(w*h*r²).
//
// Pixels outside the mask are treated as fully transparent, so blurring
// never spreads coverage in from the edges.
type Gaussian struct{}

// NewGaussian creates a Gaussian blur engine.
func NewGaussian() *Gaussian {
	return &Gaussian{}
}

// Open starts a session. The session borrows a scratch buffer from a
// shared pool on first use and returns it on Close.
func (g *Gaussian) Open() (Session, error) {
	activeSessions.Add(1)
	return &gaussianSession{}, nil
}

// activeSessions counts sessions that have been opened but not closed.
var activeSessions atomic.Int64

type gaussianSession struct {
	buf    *floatBuffer
	closed bool
}

// Blur blurs m in place with the given radius.
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row into the scratch buffer
//  2. Vertical pass: convolve each column back into m
func (s *gaussianSession) Blur(m *image.Alpha, radius float64) error {
	if s.closed {
		return ErrSessionClosed
	}
	if m == nil || !(radius > 0) {
		return nil
	}

	width, height := m.Rect.Dx(), m.Rect.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	kernel := CachedGaussianKernel(radius)
	temp := s.scratch(width * height)

	blurHorizontal(m, temp, width, height, kernel)
	blurVertical(temp, m, width, height, kernel)
	return nil
}

// Close returns the scratch buffer to the pool. Closing twice is a no-op.
func (s *gaussianSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.buf != nil {
		putTempBuffer(s.buf)
		s.buf = nil
	}
	activeSessions.Add(-1)
	return nil
}

// scratch returns a zeroed buffer of at least n elements owned by the session.
func (s *gaussianSession) scratch(n int) []float32 {
	if s.buf == nil || len(s.buf.data) < n {
		if s.buf != nil {
			putTempBuffer(s.buf)
		}
		s.buf = getTempBuffer(n)
	}
	data := s.buf.data[:n]
	clear(data)
	return data
}

// blurHorizontal applies 1D horizontal convolution.
// Reads from src, writes to temp.
func blurHorizontal(src *image.Alpha, temp []float32, width, height int, kernel []float32) {
	halfKernel := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width]
		out := temp[y*width : (y+1)*width]

		for x := 0; x < width; x++ {
			var sum float32

			for k, weight := range kernel {
				kx := x + k - halfKernel
				if kx < 0 || kx >= width {
					continue
				}
				sum += float32(row[kx]) * weight
			}

			out[x] = sum
		}
	}
}

// blurVertical applies 1D vertical convolution.
// Reads from temp, writes to dst.
func blurVertical(temp []float32, dst *image.Alpha, width, height int, kernel []float32) {
	halfKernel := len(kernel) / 2

	for y := 0; y < height; y++ {
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width]

		for x := 0; x < width; x++ {
			var sum float32

			for k, weight := range kernel {
				ky := y + k - halfKernel
				if ky < 0 || ky >= height {
					continue
				}
				sum += temp[ky*width+x] * weight
			}

			out[x] = clampUint8(sum)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur sessions.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 512*512)}
	},
}

// getTempBuffer retrieves a temporary buffer from the pool.
// The buffer is guaranteed to have at least size elements.
func getTempBuffer(size int) *floatBuffer {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return &floatBuffer{data: make([]float32, size)}
	}
	return wrapper
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf *floatBuffer) {
	// Only pool reasonably-sized buffers (64MB max).
	if cap(buf.data) <= 16*1024*1024 {
		tempBufferPool.Put(buf)
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
