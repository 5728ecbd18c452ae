package multipart

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidBoundary is returned when a boundary is empty, longer than
	// 70 characters, or contains a character outside the RFC 2046 set.
	ErrInvalidBoundary = errors.New("multipart: invalid boundary")

	// ErrHeaderEncoding is returned when a header field cannot be written
	// as UTF-8 header text.
	ErrHeaderEncoding = errors.New("multipart: header not encodable")

	// ErrPayloadLengthUnavailable is returned by EstimatedContentLength
	// when a part's body length cannot be determined.
	ErrPayloadLengthUnavailable = errors.New("multipart: payload length unavailable")

	// ErrEmptyName is returned when a part is created without a name.
	ErrEmptyName = errors.New("multipart: part name is empty")

	// ErrUnknownCharset is returned by NewTextPart for an unrecognized charset label.
	ErrUnknownCharset = errors.New("multipart: unknown charset")

	// ErrInvalidJSON is returned by NewJSONPart when the payload is not valid JSON.
	ErrInvalidJSON = errors.New("multipart: invalid json payload")
)

// SpoolError is returned when an encode fails after its temporary file was
// created. The file is left on disk; removing it is up to the caller.
type SpoolError struct {
	Path string
	Err  error
}

func (e *SpoolError) Error() string {
	return fmt.Sprintf("multipart: spooling to %s: %v", e.Path, e.Err)
}

func (e *SpoolError) Unwrap() error {
	return e.Err
}
