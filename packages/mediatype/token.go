package mediatype

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned when a string is not a valid RFC 2045 token.
var ErrInvalidToken = errors.New("mediatype: invalid token")

// tspecials from RFC 2045 section 5.1
const tspecials = `()<>@,;:\"/[]?=`

// Token is a string restricted to printable ASCII without tspecials.
type Token string

// IsToken reports whether s can be used unquoted in a header value.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 || strings.IndexByte(tspecials, c) >= 0 {
			return false
		}
	}
	return true
}

// ParseToken validates s as a Token.
func ParseToken(s string) (Token, error) {
	if !IsToken(s) {
		return "", ErrInvalidToken
	}
	return Token(s), nil
}

func (t Token) String() string {
	return string(t)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote returns s as a quoted-string with backslash and double quote escaped.
func Quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

// formatValue emits s bare when it is a token, quoted otherwise.
func formatValue(s string) string {
	if IsToken(s) {
		return s
	}
	return Quote(s)
}
