package header

import "strings"

// Common header names
const (
	ContentType        = "Content-Type"
	ContentLength      = "Content-Length"
	ContentDisposition = "Content-Disposition"
)

// Field is a single header line.
type Field struct {
	Name  string
	Value string
}

// Map is an ordered collection of header fields with unique,
// case-insensitive names. The zero value is ready to use.
type Map struct {
	fields []Field
}

// New creates a Map from name/value pairs given in order.
func New(fields ...Field) Map {
	var m Map
	for _, f := range fields {
		m.Set(f.Name, f.Value)
	}
	return m
}

func key(name string) string {
	return strings.ToLower(name)
}

func (m *Map) index(name string) int {
	k := key(name)
	for i, f := range m.fields {
		if key(f.Name) == k {
			return i
		}
	}
	return -1
}

// Set adds a field or overwrites an existing one in place.
func (m *Map) Set(name, value string) {
	if i := m.index(name); i >= 0 {
		m.fields[i] = Field{Name: name, Value: value}
		return
	}
	m.fields = append(m.fields, Field{Name: name, Value: value})
}

// Get returns the value for name, or "" when absent.
func (m Map) Get(name string) string {
	v, _ := m.Lookup(name)
	return v
}

// Lookup returns the value for name and whether it was present.
func (m Map) Lookup(name string) (string, bool) {
	if i := m.index(name); i >= 0 {
		return m.fields[i].Value, true
	}
	return "", false
}

// Has reports whether name is present.
func (m Map) Has(name string) bool {
	return m.index(name) >= 0
}

// Del removes name, keeping the order of the remaining fields.
func (m *Map) Del(name string) {
	if i := m.index(name); i >= 0 {
		m.fields = append(m.fields[:i:i], m.fields[i+1:]...)
	}
}

func (m Map) Len() int {
	return len(m.fields)
}

// Fields returns a copy of the fields in order.
func (m Map) Fields() []Field {
	if len(m.fields) == 0 {
		return nil
	}
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	return Map{fields: m.Fields()}
}

// Merge sets every field of other on m, other taking precedence.
func (m *Map) Merge(other Map) {
	for _, f := range other.fields {
		m.Set(f.Name, f.Value)
	}
}
