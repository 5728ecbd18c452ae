package multipart

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/abdul-hamid-achik/hitpart/packages/header"
)

const crlf = "\r\n"

// HeaderData renders h as a header block: one "Name: Value" line per field,
// each terminated by CRLF, followed by an empty CRLF line.
func HeaderData(h header.Map) ([]byte, error) {
	var b bytes.Buffer
	for _, f := range h.Fields() {
		if !isHeaderText(f.Name) || !isHeaderText(f.Value) {
			return nil, errors.Wrapf(ErrHeaderEncoding, "field %q", f.Name)
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString(crlf)
	}
	b.WriteString(crlf)
	return b.Bytes(), nil
}

// isHeaderText rejects invalid UTF-8 and embedded line breaks.
func isHeaderText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsAny(s, "\r\n")
}
