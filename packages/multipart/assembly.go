package multipart

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/abdul-hamid-achik/hitpart/packages/body"
	"github.com/abdul-hamid-achik/hitpart/packages/header"
	"github.com/abdul-hamid-achik/hitpart/packages/mediatype"
)

// DefaultMaxMemoryBytes is the default in-memory budget for an encode.
const DefaultMaxMemoryBytes int64 = 40_000_000 - 1

// Assembly is an ordered set of parts to be encoded as multipart/form-data.
// Encoding reads the Assembly and never modifies it.
type Assembly struct {
	Header   header.Map
	Boundary string
	Preamble []byte // nil means no preamble
	Epilogue []byte // nil means no epilogue
	Parts    []Part

	// MaxMemoryBytes bounds the in-memory buffer; non-positive means
	// DefaultMaxMemoryBytes.
	MaxMemoryBytes int64
	TempDir        string
	ChunkSize      int
	Logger         *slog.Logger
}

// New creates an Assembly with a random boundary and default limits.
func New(opts ...Option) *Assembly {
	a := &Assembly{
		Boundary:       RandomBoundary(),
		MaxMemoryBytes: DefaultMaxMemoryBytes,
		ChunkSize:      body.DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Append adds parts after the existing ones.
func (a *Assembly) Append(parts ...Part) {
	a.Parts = append(a.Parts, parts...)
}

// ValidatedBoundary returns the boundary or ErrInvalidBoundary.
func (a *Assembly) ValidatedBoundary() (string, error) {
	if err := ValidateBoundary(a.Boundary); err != nil {
		return "", err
	}
	return a.Boundary, nil
}

// ContentType returns multipart/form-data with the assembly's boundary.
func (a *Assembly) ContentType() mediatype.ContentType {
	return mediatype.MultipartFormData(a.Boundary)
}

func (a *Assembly) maxMemoryBytes() int64 {
	if a.MaxMemoryBytes <= 0 {
		return DefaultMaxMemoryBytes
	}
	return a.MaxMemoryBytes
}

func (a *Assembly) chunkSize() int {
	if a.ChunkSize <= 0 {
		return body.DefaultChunkSize
	}
	return a.ChunkSize
}

func (a *Assembly) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *Assembly) spoolPath() string {
	dir := a.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "hitpart-"+uuid.NewString()+".multipart")
}

// EstimatedContentLength returns the exact size JoinAsFormData would
// produce, using file sizes instead of reading part bodies.
func (a *Assembly) EstimatedContentLength() (int64, error) {
	boundary, err := a.ValidatedBoundary()
	if err != nil {
		return 0, err
	}
	delimiter := int64(len(boundary) + 4) // "--" boundary CRLF, or "--" boundary "--"

	var total int64
	if a.Preamble != nil {
		total += int64(len(a.Preamble)) + 2
	}
	for i, p := range a.Parts {
		hd, err := HeaderData(p.FormDataHeaders())
		if err != nil {
			return 0, errors.Wrapf(err, "part %d (%s)", i, p.Name)
		}
		n, err := p.Body.ContentLength()
		if err != nil {
			return 0, errors.Wrapf(ErrPayloadLengthUnavailable, "part %d (%s): %v", i, p.Name, err)
		}
		total += delimiter + int64(len(hd)) + n + 2
	}
	total += delimiter
	if a.Epilogue != nil {
		total += 2 + int64(len(a.Epilogue))
	}
	return total, nil
}

// JoinAsFormData encodes the assembly. The body stays in memory unless a
// payload chunk would push the buffer past MaxMemoryBytes, in which case
// the output continues in a temporary file and a spooled body.Value is
// returned. The returned headers are the assembly's own plus
// Content-Length and Content-Type.
//
// A failure after the temporary file was created is reported as a
// *SpoolError; the partial file is not removed.
func (a *Assembly) JoinAsFormData() (body.Value, header.Map, error) {
	boundary, err := a.ValidatedBoundary()
	if err != nil {
		return body.Value{}, header.Map{}, err
	}

	logger := a.logger()
	sp := newSpooler(a.maxMemoryBytes(), a.spoolPath(), logger)
	defer sp.close()

	fail := func(err error) (body.Value, header.Map, error) {
		return body.Value{}, header.Map{}, sp.fail(err)
	}

	if a.Preamble != nil {
		sp.write(a.Preamble)
		sp.writeString(crlf)
	}

	chunkSize := a.chunkSize()
	for i, p := range a.Parts {
		sp.writeString("--" + boundary + crlf)

		hd, err := HeaderData(p.FormDataHeaders())
		if err != nil {
			return fail(errors.Wrapf(err, "part %d (%s)", i, p.Name))
		}
		sp.write(hd)

		if err := p.Body.Stream(chunkSize, sp.writeChunk); err != nil {
			return fail(errors.Wrapf(err, "part %d (%s)", i, p.Name))
		}
		sp.writeString(crlf)
	}

	sp.writeString("--" + boundary + "--")
	if a.Epilogue != nil {
		sp.writeString(crlf)
		sp.write(a.Epilogue)
	}

	result, total, err := sp.finish()
	if err != nil {
		return fail(err)
	}

	logger.Debug("multipart body assembled",
		"parts", len(a.Parts),
		"content_length", total,
		"spooled", !result.IsInMemory(),
	)

	h := a.Header.Clone()
	h.Set(header.ContentLength, strconv.FormatInt(total, 10))
	h.Set(header.ContentType, mediatype.MultipartFormData(boundary).String())
	return result, h, nil
}
