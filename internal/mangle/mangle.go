// Package mangle converts Forth identifiers plus a role prefix into unique
// target C identifiers.
package mangle

import "strconv"

// digraphs are tried before single-character substitutions, longest match
// first.
var digraphs = []struct{ from, to string }{
	{"->", "_to_"},
}

var singles = map[byte]string{
	'=': "_equal",
	'@': "_fetch",
	'!': "_store",
	'+': "_plus",
	'*': "_star",
	'/': "_slash",
	'?': "_p",
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Pool tracks every target identifier issued so far. The zero value is a
// valid, empty pool.
type Pool struct {
	issued map[string]struct{}
}

// Mangle returns a target identifier unique across this pool: prefix is
// prepended verbatim, then word is transliterated character-by-character
// (digraphs first, then single-character substitutions, then
// pass-through/underscore), and finally de-duplicated with a numeric
// suffix if needed. The chosen identifier is recorded in the pool before
// being returned.
func (p *Pool) Mangle(prefix, word string) string {
	base := prefix + transliterate(word)
	name := base
	for n := 1; p.contains(name); n++ {
		name = base + "_" + strconv.Itoa(n)
	}
	p.add(name)
	return name
}

func transliterate(word string) string {
	var out []byte
	for i := 0; i < len(word); {
		matched := false
		for _, d := range digraphs {
			if i+len(d.from) <= len(word) && word[i:i+len(d.from)] == d.from {
				out = append(out, d.to...)
				i += len(d.from)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		c := word[i]
		if sub, ok := singles[c]; ok {
			out = append(out, sub...)
		} else if isAlnum(c) {
			out = append(out, c)
		} else {
			out = append(out, '_')
		}
		i++
	}
	return string(out)
}

func (p *Pool) contains(name string) bool {
	_, ok := p.issued[name]
	return ok
}

func (p *Pool) add(name string) {
	if p.issued == nil {
		p.issued = make(map[string]struct{})
	}
	p.issued[name] = struct{}{}
}
