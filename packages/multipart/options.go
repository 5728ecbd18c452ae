package multipart

import "log/slog"

// Option configures an Assembly.
type Option func(*Assembly)

func WithBoundary(boundary string) Option {
	return func(a *Assembly) {
		a.Boundary = boundary
	}
}

// WithMaxMemoryBytes sets the in-memory budget before output spools to disk.
func WithMaxMemoryBytes(n int64) Option {
	return func(a *Assembly) {
		a.MaxMemoryBytes = n
	}
}

// WithTempDir sets the directory for spool files. Empty means os.TempDir.
func WithTempDir(dir string) Option {
	return func(a *Assembly) {
		a.TempDir = dir
	}
}

// WithChunkSize sets the read size used when copying part bodies.
func WithChunkSize(n int) Option {
	return func(a *Assembly) {
		a.ChunkSize = n
	}
}

func WithPreamble(preamble []byte) Option {
	return func(a *Assembly) {
		a.Preamble = preamble
	}
}

func WithEpilogue(epilogue []byte) Option {
	return func(a *Assembly) {
		a.Epilogue = epilogue
	}
}

// WithHeader sets a header returned alongside the encoded body.
func WithHeader(name, value string) Option {
	return func(a *Assembly) {
		a.Header.Set(name, value)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembly) {
		a.Logger = logger
	}
}

// WithParts appends parts in order.
func WithParts(parts ...Part) Option {
	return func(a *Assembly) {
		a.Parts = append(a.Parts, parts...)
	}
}
