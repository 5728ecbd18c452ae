// Package header provides an ordered, case-insensitive header map.
//
// Unlike net/http.Header, a Map keeps fields in insertion order so that
// serialized header blocks are reproducible byte for byte. Names are compared
// through a lower-cased key; the spelling used on the last Set is the one
// that is written out.
package header
