package multipart

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html/charset"

	"github.com/abdul-hamid-achik/hitpart/packages/body"
	"github.com/abdul-hamid-achik/hitpart/packages/header"
	"github.com/abdul-hamid-achik/hitpart/packages/mediatype"
)

// Part is one named segment of a form-data body.
type Part struct {
	Name     string
	Body     body.Value
	Filename string // empty means no filename parameter
	Header   header.Map
}

type PartOption func(*Part)

func WithFilename(filename string) PartOption {
	return func(p *Part) {
		p.Filename = filename
	}
}

// WithPartHeader sets an extra header on the part. Content-Disposition is
// always regenerated and cannot be overridden this way.
func WithPartHeader(name, value string) PartOption {
	return func(p *Part) {
		p.Header.Set(name, value)
	}
}

func WithContentType(ct mediatype.ContentType) PartOption {
	return func(p *Part) {
		p.Header.Set(header.ContentType, ct.String())
	}
}

// NewPart creates a part. The name must be non-empty.
func NewPart(name string, b body.Value, opts ...PartOption) (Part, error) {
	if name == "" {
		return Part{}, ErrEmptyName
	}
	p := Part{Name: name, Body: b}
	for _, opt := range opts {
		opt(&p)
	}
	return p, nil
}

// NewFieldPart creates a plain form field.
func NewFieldPart(name, value string) (Part, error) {
	return NewPart(name, body.InMemory([]byte(value)))
}

// NewFilePart references the file at path without reading it. The filename
// is the base name of path and the content type is guessed from its
// extension, falling back to application/octet-stream.
func NewFilePart(name, path string) (Part, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Part{}, errors.Wrapf(err, "failed to create file part %q", name)
	}
	if info.IsDir() {
		return Part{}, errors.Errorf("failed to create file part %q: path %s is a directory", name, path)
	}

	ct, ok := mediatype.Parse(mime.TypeByExtension(strings.ToLower(filepath.Ext(path))))
	if !ok {
		ct = mediatype.OctetStream()
	}

	return NewPart(name, body.AtLocation(path),
		WithFilename(info.Name()),
		WithContentType(ct),
	)
}

// NewTextPart encodes text in the named charset and labels the part
// text/plain with the canonical charset name. An empty label means UTF-8.
func NewTextPart(name, text, charsetLabel string) (Part, error) {
	if charsetLabel == "" {
		charsetLabel = "utf-8"
	}
	enc, canonical := charset.Lookup(charsetLabel)
	if enc == nil {
		return Part{}, errors.Wrapf(ErrUnknownCharset, "%q", charsetLabel)
	}
	data, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return Part{}, errors.Wrapf(err, "failed to encode part %q as %s", name, canonical)
	}
	return NewPart(name, body.InMemory(data), WithContentType(mediatype.TextPlain(canonical)))
}

// NewJSONPart creates an application/json part from an encoded document.
func NewJSONPart(name string, data []byte) (Part, error) {
	if !gjson.ValidBytes(data) {
		return Part{}, errors.Wrapf(ErrInvalidJSON, "part %q", name)
	}
	return NewPart(name, body.InMemory(data), WithContentType(mediatype.ApplicationJSON()))
}

// ContentDisposition returns the form-data disposition value for p.
func (p Part) ContentDisposition() string {
	v := "form-data; name=" + mediatype.Quote(p.Name)
	if p.Filename != "" {
		v += "; filename=" + mediatype.Quote(p.Filename)
	}
	return v
}

// FormDataHeaders returns the part's headers led by a generated
// Content-Disposition, which replaces any the part carries itself.
func (p Part) FormDataHeaders() header.Map {
	h := header.New(header.Field{Name: header.ContentDisposition, Value: p.ContentDisposition()})
	for _, f := range p.Header.Fields() {
		if strings.EqualFold(f.Name, header.ContentDisposition) {
			continue
		}
		h.Set(f.Name, f.Value)
	}
	return h
}
