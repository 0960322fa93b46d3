package mangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassik/thirdc/internal/mangle"
)

func TestMangleSubstitution(t *testing.T) {
	var p mangle.Pool
	assert.Equal(t, "word__plus", p.Mangle("word_", "+"))
	assert.Equal(t, "word__plus_store", p.Mangle("word_", "+!"))
}

func TestMangleRepeatedRegistrationGetsFreshSuffix(t *testing.T) {
	// The mangler has no notion of "redefinition" -- it is a pure function
	// of (prefix, word, pool state). Registering "+" again after it is
	// already in the pool collides and gets the next numeric suffix; it is
	// the symbol table, not the mangler, that treats the redefinition as
	// overwriting the prior slot (see internal/symtab).
	var p mangle.Pool
	plus := p.Mangle("word_", "+")
	plusStore := p.Mangle("word_", "+!")
	plusAgain := p.Mangle("word_", "+")

	assert.Equal(t, "word__plus", plus)
	assert.Equal(t, "word__plus_store", plusStore)
	assert.Equal(t, "word__plus_1", plusAgain)
}

func TestMangleUniqueOnCollision(t *testing.T) {
	var p mangle.Pool
	a := p.Mangle("word_", "->")
	b := p.Mangle("word_", "to")
	assert.NotEqual(t, a, b)

	// force a collision deliberately, exercising the _1, _2, ... suffixing
	var p2 mangle.Pool
	p2.Mangle("", "ab")
	dup := p2.Mangle("", "ab")
	assert.Equal(t, "ab_1", dup)
}

func TestMangleDigraphPriority(t *testing.T) {
	var p mangle.Pool
	assert.Equal(t, "_to_", p.Mangle("", "->"))
}

func TestManglePassthroughAndFallback(t *testing.T) {
	var p mangle.Pool
	assert.Equal(t, "abc123", p.Mangle("", "abc123"))
	assert.Equal(t, "a_b", p.Mangle("", "a.b"))
}

func TestMangleDeterministic(t *testing.T) {
	var p1, p2 mangle.Pool
	assert.Equal(t, p1.Mangle("word_", "foo?"), p2.Mangle("word_", "foo?"))
}
