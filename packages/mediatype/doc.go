// Package mediatype parses and generates Content-Type header values.
//
// It implements the RFC 2045 grammar used by HTTP and MIME:
//
//	content-type := type "/" subtype *( ";" parameter )
//	parameter    := token "=" ( token / quoted-string )
//
// Parsing is strict: an unterminated quoted string, a dangling escape or a
// bare value that is not a token all cause Parse to report failure. Values
// produced by this package always satisfy Parse(v.String()) == v.
package mediatype
