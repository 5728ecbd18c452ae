package multipart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/hitpart/packages/body"
	"github.com/abdul-hamid-achik/hitpart/packages/header"
	"github.com/abdul-hamid-achik/hitpart/packages/mediatype"
)

func TestNewPart_EmptyName(t *testing.T) {
	_, err := NewPart("", body.InMemory([]byte("x")))
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestPart_FormDataHeaders(t *testing.T) {
	p, err := NewPart("file", body.InMemory([]byte("xy")), WithFilename("a.txt"))
	require.NoError(t, err)

	data, err := HeaderData(p.FormDataHeaders())
	require.NoError(t, err)
	assert.Equal(t, "Content-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\n\r\n", string(data))
}

func TestPart_FormDataHeaders_OverridesDisposition(t *testing.T) {
	p, err := NewPart("field", body.InMemory(nil),
		WithContentType(mediatype.TextPlain("utf-8")),
		WithPartHeader("content-disposition", "attachment"),
		WithPartHeader("X-Custom", "1"),
	)
	require.NoError(t, err)

	h := p.FormDataHeaders()
	assert.Equal(t, []header.Field{
		{Name: "Content-Disposition", Value: `form-data; name="field"`},
		{Name: "Content-Type", Value: "text/plain; charset=utf-8"},
		{Name: "X-Custom", Value: "1"},
	}, h.Fields())

	// the part's own headers are untouched
	assert.Equal(t, "attachment", p.Header.Get("Content-Disposition"))
}

func TestPart_ContentDisposition_Escapes(t *testing.T) {
	p, err := NewPart(`say "hi"`, body.InMemory(nil), WithFilename(`c:\tmp\x.txt`))
	require.NoError(t, err)

	assert.Equal(t, `form-data; name="say \"hi\""; filename="c:\\tmp\\x.txt"`, p.ContentDisposition())
}

func TestNewFilePart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	p, err := NewFilePart("file", path)
	require.NoError(t, err)

	assert.Equal(t, "a.json", p.Filename)
	assert.Equal(t, body.KindAtLocation, p.Body.Kind())
	ct, ok := mediatype.ParseHeader(p.Header)
	require.True(t, ok)
	assert.Equal(t, "application/json", ct.MIMEType())
}

func TestNewFilePart_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.hitpartunknown")
	require.NoError(t, os.WriteFile(path, []byte{0, 1, 2}, 0644))

	p, err := NewFilePart("blob", path)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", p.Header.Get("Content-Type"))
}

func TestNewFilePart_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFilePart("file", dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")

	_, err = NewFilePart("file", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFieldPart(t *testing.T) {
	p, err := NewFieldPart("field", "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), p.Body.Bytes())
	assert.Equal(t, 0, p.Header.Len())
}

func TestNewTextPart(t *testing.T) {
	p, err := NewTextPart("note", "café", "latin1")
	require.NoError(t, err)

	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, p.Body.Bytes())
	assert.Equal(t, "text/plain; charset=windows-1252", p.Header.Get("Content-Type"))
}

func TestNewTextPart_DefaultsToUTF8(t *testing.T) {
	p, err := NewTextPart("note", "café", "")
	require.NoError(t, err)

	assert.Equal(t, []byte("café"), p.Body.Bytes())
	assert.Equal(t, "text/plain; charset=utf-8", p.Header.Get("Content-Type"))
}

func TestNewTextPart_UnknownCharset(t *testing.T) {
	_, err := NewTextPart("note", "x", "no-such-charset")
	assert.ErrorIs(t, err, ErrUnknownCharset)
}

func TestNewJSONPart(t *testing.T) {
	p, err := NewJSONPart("meta", []byte(`{"id": 1, "tags": ["a"]}`))
	require.NoError(t, err)
	assert.Equal(t, "application/json", p.Header.Get("Content-Type"))

	_, err = NewJSONPart("meta", []byte(`{"id": `))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}
