package multipart

import (
	"bufio"
	"bytes"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/abdul-hamid-achik/hitpart/packages/body"
)

type spoolState int

const (
	stateBuffering spoolState = iota
	stateSpooling
)

// spooler accumulates encoded output in memory until a payload chunk would
// push the buffer past max. That single transition writes the buffer to a
// new file at path and clears it; every later write goes to the file.
//
// The first error is sticky: later writes are dropped and err is returned
// from writeChunk and finish.
type spooler struct {
	state   spoolState
	max     int64
	path    string
	buf     bytes.Buffer
	file    *os.File
	created bool
	w       *bufio.Writer
	written int64
	err     error
	logger  *slog.Logger
}

func newSpooler(limit int64, path string, logger *slog.Logger) *spooler {
	return &spooler{max: limit, path: path, logger: logger}
}

func (s *spooler) write(p []byte) {
	if s.err != nil {
		return
	}
	switch s.state {
	case stateBuffering:
		s.buf.Write(p)
	case stateSpooling:
		if _, err := s.w.Write(p); err != nil {
			s.err = errors.Wrap(err, "failed to write spool file")
			return
		}
	}
	s.written += int64(len(p))
}

func (s *spooler) writeString(str string) {
	s.write([]byte(str))
}

// writeChunk writes payload bytes, spilling to disk first if they would not
// fit in memory.
func (s *spooler) writeChunk(p []byte) error {
	if s.err == nil && s.state == stateBuffering && int64(s.buf.Len())+int64(len(p)) > s.max {
		s.spill()
	}
	s.write(p)
	return s.err
}

func (s *spooler) spill() {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		s.err = errors.Wrap(err, "failed to create spool file")
		return
	}
	s.file = f
	s.created = true
	s.w = bufio.NewWriterSize(f, body.DefaultChunkSize)

	s.logger.Debug("spooling multipart body to disk", "path", s.path, "buffered", s.buf.Len())

	if _, err := s.w.Write(s.buf.Bytes()); err != nil {
		s.err = errors.Wrap(err, "failed to write spool file")
		return
	}
	s.buf.Reset()
	s.state = stateSpooling
}

func (s *spooler) spooled() bool {
	return s.created
}

// fail attaches the spool path to err once a file exists on disk.
func (s *spooler) fail(err error) error {
	if s.spooled() {
		return &SpoolError{Path: s.path, Err: err}
	}
	return err
}

// finish returns the encoded body and its total length. The spool file, if
// any, is flushed and closed.
func (s *spooler) finish() (body.Value, int64, error) {
	if s.err != nil {
		return body.Value{}, 0, s.err
	}
	if s.state == stateBuffering {
		return body.InMemory(s.buf.Bytes()), s.written, nil
	}

	if err := s.w.Flush(); err != nil {
		return body.Value{}, 0, errors.Wrap(err, "failed to flush spool file")
	}
	if err := s.file.Close(); err != nil {
		s.file = nil
		return body.Value{}, 0, errors.Wrap(err, "failed to close spool file")
	}
	s.file = nil
	return body.Spooled(s.path), s.written, nil
}

// close releases the file handle after a failed encode. The file stays.
func (s *spooler) close() {
	if s.file != nil {
		s.file.Close()
	}
}
