package mediatype

import (
	"strings"

	"github.com/abdul-hamid-achik/hitpart/packages/header"
)

// ContentType is a parsed Content-Type header value.
type ContentType struct {
	Type    Token
	Subtype Token
	Params  Params
}

// New builds a ContentType, validating every token.
func New(typ, subtype string, params ...Param) (ContentType, error) {
	t, err := ParseToken(typ)
	if err != nil {
		return ContentType{}, err
	}
	s, err := ParseToken(subtype)
	if err != nil {
		return ContentType{}, err
	}
	ct := ContentType{Type: t, Subtype: s}
	for _, p := range params {
		if !IsToken(string(p.Key)) {
			return ContentType{}, ErrInvalidToken
		}
		ct.Params.Set(p.Key, p.Value)
	}
	return ct, nil
}

// MIMEType returns "type/subtype".
func (c ContentType) MIMEType() string {
	return string(c.Type) + "/" + string(c.Subtype)
}

// Param returns the value of the named parameter.
func (c ContentType) Param(key string) (string, bool) {
	return c.Params.Get(key)
}

func (c ContentType) Boundary() string {
	v, _ := c.Params.Get("boundary")
	return v
}

func (c ContentType) Charset() string {
	v, _ := c.Params.Get("charset")
	return v
}

// Equal compares type, subtype and parameters in order. Token case matters.
func (c ContentType) Equal(other ContentType) bool {
	if c.Type != other.Type || c.Subtype != other.Subtype || c.Params.Len() != other.Params.Len() {
		return false
	}
	for i, p := range c.Params.list {
		if p != other.Params.list[i] {
			return false
		}
	}
	return true
}

func (c ContentType) String() string {
	var b strings.Builder
	b.WriteString(c.MIMEType())
	for _, p := range c.Params.list {
		b.WriteString("; ")
		b.WriteString(string(p.Key))
		b.WriteByte('=')
		b.WriteString(formatValue(p.Value))
	}
	return b.String()
}

// Parse parses a raw header value. It reports false for empty or
// malformed input; a missing header is an expected case, not an error.
func Parse(raw string) (ContentType, bool) {
	slash := strings.IndexByte(raw, '/')
	if slash < 0 {
		return ContentType{}, false
	}
	typ := strings.TrimSpace(raw[:slash])
	if !IsToken(typ) {
		return ContentType{}, false
	}

	rest := raw[slash+1:]
	params := ""
	if semi := strings.IndexByte(rest, ';'); semi >= 0 {
		params = rest[semi+1:]
		rest = rest[:semi]
	}
	subtype := strings.TrimSpace(rest)
	if !IsToken(subtype) {
		return ContentType{}, false
	}

	ct := ContentType{Type: Token(typ), Subtype: Token(subtype)}
	if !parseParams(params, &ct.Params) {
		return ContentType{}, false
	}
	return ct, true
}

// ParseHeader parses the Content-Type field of h.
func ParseHeader(h header.Map) (ContentType, bool) {
	raw, ok := h.Lookup(header.ContentType)
	if !ok {
		return ContentType{}, false
	}
	return Parse(raw)
}

func parseParams(s string, params *Params) bool {
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return true
		}
		if s[0] == ';' {
			s = s[1:]
			continue
		}

		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			return false
		}
		key := strings.TrimSpace(s[:eq])
		if !IsToken(key) {
			return false
		}
		s = strings.TrimLeft(s[eq+1:], " \t")

		var value string
		if strings.HasPrefix(s, `"`) {
			v, n, ok := consumeQuoted(s)
			if !ok {
				return false
			}
			value = v
			s = strings.TrimLeft(s[n:], " \t")
			if s != "" && s[0] != ';' {
				return false
			}
		} else {
			end := strings.IndexByte(s, ';')
			if end < 0 {
				end = len(s)
			}
			value = strings.TrimSpace(s[:end])
			if !IsToken(value) {
				return false
			}
			s = s[end:]
		}
		params.Set(Token(key), value)
	}
}

// consumeQuoted reads a quoted-string at the start of s and returns the
// unescaped value and the number of bytes consumed.
func consumeQuoted(s string) (string, int, bool) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 >= len(s) {
				return "", 0, false
			}
			i++
			b.WriteByte(s[i])
		case '"':
			return b.String(), i + 1, true
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, false
}
