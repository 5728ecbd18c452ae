package body

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultChunkSize is the read size used by Stream when none is given.
const DefaultChunkSize = 32 * 1024

// ErrTooLarge is returned by Materialize when the payload exceeds the limit.
var ErrTooLarge = errors.New("body: payload exceeds memory limit")

// Kind tags which variant a Value holds.
type Kind int

const (
	KindInMemory Kind = iota
	KindAtLocation
)

func (k Kind) String() string {
	switch k {
	case KindInMemory:
		return "in-memory"
	case KindAtLocation:
		return "at-location"
	default:
		return "unknown"
	}
}

// Value is either an in-memory byte buffer or a reference to a file.
// The zero Value is an empty in-memory body.
type Value struct {
	kind      Kind
	data      []byte
	path      string
	temporary bool
}

// InMemory wraps data. The slice is not copied.
func InMemory(data []byte) Value {
	return Value{kind: KindInMemory, data: data}
}

// AtLocation references bytes stored at path. The file is not opened.
func AtLocation(path string) Value {
	return Value{kind: KindAtLocation, path: path}
}

// Spooled references a temporary file that the Value owns.
func Spooled(path string) Value {
	return Value{kind: KindAtLocation, path: path, temporary: true}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsInMemory() bool {
	return v.kind == KindInMemory
}

// Bytes returns the in-memory payload, or nil for a file-backed Value.
func (v Value) Bytes() []byte {
	return v.data
}

// Path returns the file location, or "" for an in-memory Value.
func (v Value) Path() string {
	return v.path
}

// IsTemporary reports whether the Value owns a spooled file.
func (v Value) IsTemporary() bool {
	return v.temporary
}

// ContentLength returns the payload size without reading file contents.
func (v Value) ContentLength() (int64, error) {
	if v.kind == KindInMemory {
		return int64(len(v.data)), nil
	}
	info, err := os.Stat(v.path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to stat body file %s", v.path)
	}
	return info.Size(), nil
}

// Materialize returns the whole payload, refusing anything over maxBytes.
func (v Value) Materialize(maxBytes int64) ([]byte, error) {
	if v.kind == KindInMemory {
		if int64(len(v.data)) > maxBytes {
			return nil, ErrTooLarge
		}
		return v.data, nil
	}

	size, err := v.ContentLength()
	if err != nil {
		return nil, err
	}
	if size > maxBytes {
		return nil, ErrTooLarge
	}

	f, err := os.Open(v.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open body file %s", v.path)
	}
	defer f.Close()

	// The file may have grown since the stat.
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read body file %s", v.path)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// Open returns a single-pass reader over the payload.
func (v Value) Open() (io.ReadCloser, error) {
	if v.kind == KindInMemory {
		return io.NopCloser(bytes.NewReader(v.data)), nil
	}
	f, err := os.Open(v.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open body file %s", v.path)
	}
	return f, nil
}

// Stream passes the payload to fn in order, in chunks of at most chunkSize
// bytes. The chunk slice is reused between calls. An error from fn stops
// the stream and is returned unchanged.
func (v Value) Stream(chunkSize int, fn func(chunk []byte) error) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if v.kind == KindInMemory {
		for data := v.data; len(data) > 0; {
			n := min(chunkSize, len(data))
			if err := fn(data[:n]); err != nil {
				return err
			}
			data = data[n:]
		}
		return nil
	}

	f, err := os.Open(v.path)
	if err != nil {
		return errors.Wrapf(err, "failed to open body file %s", v.path)
	}
	defer f.Close()

	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if ferr := fn(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read body file %s", v.path)
		}
	}
}

// Cleanup removes the file of a spooled Value. Other Values are left alone.
func (v Value) Cleanup() error {
	if v.kind != KindAtLocation || !v.temporary {
		return nil
	}
	if err := os.Remove(v.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove spooled body %s", v.path)
	}
	return nil
}
