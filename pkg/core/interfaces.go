package core

import "errors"

// Logger interface for raycaster logging
type Logger interface {
	Printf(format string, args ...interface{})
}

var (
	// ErrDegenerateRay is returned for rays whose direction has zero length
	ErrDegenerateRay = errors.New("degenerate ray: zero-length direction")

	// ErrInvalidConfig wraps render configuration validation failures
	ErrInvalidConfig = errors.New("invalid render config")
)
