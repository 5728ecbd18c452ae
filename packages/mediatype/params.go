package mediatype

import "strings"

// Param is a single key=value parameter.
type Param struct {
	Key   Token
	Value string
}

// Params is an ordered parameter list. Keys are unique under a
// case-insensitive comparison. Params is copy-on-write, so copies of a
// ContentType never observe each other's mutations.
type Params struct {
	list []Param
}

func (p Params) index(key string) int {
	k := strings.ToLower(key)
	for i, param := range p.list {
		if strings.ToLower(string(param.Key)) == k {
			return i
		}
	}
	return -1
}

// Get returns the value for key.
func (p Params) Get(key string) (string, bool) {
	if i := p.index(key); i >= 0 {
		return p.list[i].Value, true
	}
	return "", false
}

// Set adds key=value or overwrites an existing key in place.
func (p *Params) Set(key Token, value string) {
	if i := p.index(string(key)); i >= 0 {
		list := make([]Param, len(p.list))
		copy(list, p.list)
		list[i] = Param{Key: key, Value: value}
		p.list = list
		return
	}
	p.list = append(p.list[:len(p.list):len(p.list)], Param{Key: key, Value: value})
}

// Del removes key.
func (p *Params) Del(key string) {
	if i := p.index(key); i >= 0 {
		list := make([]Param, 0, len(p.list)-1)
		list = append(list, p.list[:i]...)
		list = append(list, p.list[i+1:]...)
		if len(list) == 0 {
			list = nil
		}
		p.list = list
	}
}

func (p Params) Len() int {
	return len(p.list)
}

// All returns the parameters in order.
func (p Params) All() []Param {
	if len(p.list) == 0 {
		return nil
	}
	out := make([]Param, len(p.list))
	copy(out, p.list)
	return out
}
