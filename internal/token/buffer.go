// Package token implements the source buffer and tokenizer for the
// Forth-dialect front end: it turns a loaded byte buffer into a finite,
// ordered stream of tokens.
package token

import (
	"fmt"
	"io"
)

// Buffer holds the fully-loaded source text plus a read cursor and a mark
// cursor. Neither cursor ever exceeds len(Buffer.b); mark <= pos at the start
// of each token read.
type Buffer struct {
	b    []byte
	pos  uint
	mark uint
}

// ErrNullByte is returned by Load when the source contains an embedded null
// byte; the whole file is loaded eagerly and such input is refused.
var ErrNullByte = fmt.Errorf("source contains a null byte")

// Load reads r to completion and returns a Buffer over its contents. It
// fails if the input contains a null byte anywhere.
func Load(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	for _, c := range data {
		if c == 0 {
			return nil, ErrNullByte
		}
	}
	return &Buffer{b: data}, nil
}

func (buf *Buffer) len() uint { return uint(len(buf.b)) }

func (buf *Buffer) atEOF() bool { return buf.pos >= buf.len() }

// peek returns the byte at pos without consuming it, or 0 at end of input.
func (buf *Buffer) peek() byte {
	if buf.atEOF() {
		return 0
	}
	return buf.b[buf.pos]
}

// peekAt returns the byte at an offset from pos, or 0 past the end.
func (buf *Buffer) peekAt(off uint) byte {
	i := buf.pos + off
	if i >= buf.len() {
		return 0
	}
	return buf.b[i]
}

func (buf *Buffer) advance() byte {
	c := buf.b[buf.pos]
	buf.pos++
	return c
}

// markHere sets the mark to the current position, the start of a new token.
func (buf *Buffer) markHere() { buf.mark = buf.pos }

// marked returns the bytes between the mark and the current position.
func (buf *Buffer) marked() []byte { return buf.b[buf.mark:buf.pos] }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
