package multipart

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

const (
	// MaxBoundaryLength is the RFC 2046 limit on boundary length.
	MaxBoundaryLength = 70

	// DefaultBoundaryPrefix starts every generated boundary.
	DefaultBoundaryPrefix = "hitpart.boundary."
)

// RandomBoundary returns DefaultBoundaryPrefix followed by 16 random hex digits.
func RandomBoundary() string {
	return NewBoundary(DefaultBoundaryPrefix)
}

// NewBoundary returns prefix followed by two random 8-digit hex values.
// Boundaries are not secret; they only need to be unique within one body.
func NewBoundary(prefix string) string {
	return fmt.Sprintf("%s%08x%08x", prefix, rand.Uint32(), rand.Uint32())
}

// ValidateBoundary checks b against rfc2046#section-5.1.1.
func ValidateBoundary(b string) error {
	if len(b) == 0 {
		return errors.Wrap(ErrInvalidBoundary, "boundary is empty")
	}
	if len(b) > MaxBoundaryLength {
		return errors.Wrapf(ErrInvalidBoundary, "boundary is %d characters long", len(b))
	}
	for i := 0; i < len(b); i++ {
		if !isBoundaryChar(b[i]) {
			return errors.Wrapf(ErrInvalidBoundary, "character %q at offset %d", b[i], i)
		}
	}
	return nil
}

func isBoundaryChar(c byte) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}
