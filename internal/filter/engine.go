package filter

import (
	"errors"
	"image"
)

// ErrSessionClosed is returned when a session is used after Close.
var ErrSessionClosed = errors.New("filter: blur session closed")

// Engine hands out blur sessions. Implementations must be safe for
// concurrent Open calls.
type Engine interface {
	Open() (Session, error)
}

// Session blurs alpha masks in place. A session is owned by one caller
// and must be closed once the caller is done with it.
type Session interface {
	Blur(m *image.Alpha, radius float64) error
	Close() error
}
