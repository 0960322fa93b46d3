// Package compiler drives the top-level compilation loop and implements
// every compile form over the lower-level token, mangle, symtab, locals,
// emit, and runtimec packages.
package compiler

import (
	"fmt"
	"io"

	"github.com/lassik/thirdc/internal/emit"
	"github.com/lassik/thirdc/internal/locals"
	"github.com/lassik/thirdc/internal/mangle"
	"github.com/lassik/thirdc/internal/runtimec"
	"github.com/lassik/thirdc/internal/symtab"
	"github.com/lassik/thirdc/internal/token"
)

// Option configures a Compiler at construction time.
type Option interface{ apply(c *Compiler) }

type stackSizeOption int

func (n stackSizeOption) apply(c *Compiler) { c.stackSize = int(n) }

// WithStackSize overrides the emitted runtime's data stack depth (default
// runtimec.DefaultStackSize).
func WithStackSize(n int) Option { return stackSizeOption(n) }

// Compiler holds the state shared while translating one loaded source file
// into one emitted C file: the token stream, the definition table, the
// mangle pool, the local scope of whichever ":" word is currently being
// read, and the emitter the compile forms write through.
type Compiler struct {
	stream    *token.Stream
	syms      symtab.Table
	pool      mangle.Pool
	locals    locals.Scope
	out       *emit.Emitter
	rawOut    io.Writer
	stackSize int
}

// New loads src, tokenizes it to completion, and registers every compile
// form and primitive against a fresh definition table. It does not write
// anything yet; call Run to drive compilation and produce output.
func New(src io.Reader, out io.Writer, opts ...Option) (*Compiler, error) {
	buf, err := token.Load(src)
	if err != nil {
		if err == token.ErrNullByte {
			return nil, &token.LexError{Reason: err.Error()}
		}
		return nil, &ResourceError{Reason: fmt.Sprintf("reading source: %v", err)}
	}
	stream, err := token.Lex(buf)
	if err != nil {
		return nil, err
	}

	c := &Compiler{
		stream:    stream,
		out:       emit.New(out),
		rawOut:    out,
		stackSize: runtimec.DefaultStackSize,
	}
	for _, opt := range opts {
		opt.apply(c)
	}

	registerForms(&c.syms)
	for _, p := range runtimec.Primitives() {
		c.syms.DefinePrimitive(p.ForthWord, p.CFunc)
	}
	return c, nil
}

// Run writes the runtime preamble to out, then drives compilation to
// completion: read a WORD (EOF ends the loop); look it up requiring the
// top-level bit; invoke its compile action. Any other token, or a
// top-level word registered with some other role, is fatal -- a role
// mismatch is an error in its own right, not absence.
func (c *Compiler) Run() error {
	src := runtimec.Source{StackSize: c.stackSize}
	if _, err := src.WriteTo(c.rawOut); err != nil {
		return &ResourceError{Reason: fmt.Sprintf("writing runtime preamble: %v", err)}
	}

	for {
		tok := c.stream.Next()
		if tok.Tag == token.EOF {
			break
		}
		if tok.Tag != token.Word {
			return structuralf("unexpected %v at top level", tok.Tag)
		}
		def, err := c.syms.Lookup(tok.Text, symtab.TopLevel)
		if err != nil {
			return &SymbolError{Word: tok.Text, Err: err}
		}
		if def == nil {
			return undefinedf(tok.Text)
		}
		c.out.Blank()
		if err := def.Compile(c); err != nil {
			return err
		}
		if err := c.out.Err(); err != nil {
			return &ResourceError{Reason: fmt.Sprintf("writing output: %v", err)}
		}
	}

	if err := c.emitEntryPoint(); err != nil {
		return err
	}
	if err := c.out.Err(); err != nil {
		return &ResourceError{Reason: fmt.Sprintf("writing output: %v", err)}
	}
	return nil
}

// emitEntryPoint writes "int main(void) { <target>(); return 0; }" when
// the source registered a USER word named "main". A source defining no
// "main" (e.g. a library of variable/: declarations meant to be linked
// elsewhere) emits none.
func (c *Compiler) emitEntryPoint() error {
	def, err := c.syms.Lookup("main", symtab.User)
	if err != nil {
		return &SymbolError{Word: "main", Err: err}
	}
	if def == nil {
		return nil
	}
	c.out.Blank()
	c.out.Line("int main(void)")
	c.out.Line("{")
	c.out.Indent()
	c.out.Call(def.Target)
	c.out.Line("return 0;")
	c.out.Dedent()
	c.out.Line("}")
	return nil
}

// defineUser registers word as a USER definition with a freshly mangled
// "word_"-prefixed target identifier. Mangling happens on every
// registration, redefinitions included, so a redefined word gets a new
// target name while reusing its table slot.
func (c *Compiler) defineUser(word string) *symtab.Definition {
	def := c.syms.DefineUser(word)
	def.Target = c.pool.Mangle("word_", word)
	return def
}

// acceptWord consumes and returns the next token's text if it is a WORD.
func (c *Compiler) acceptWord() (string, bool) {
	if tok := c.stream.Peek(); tok.Tag == token.Word {
		c.stream.Next()
		return tok.Text, true
	}
	return "", false
}

// acceptExactWord consumes the next token if it is the WORD word.
func (c *Compiler) acceptExactWord(word string) bool {
	if tok := c.stream.Peek(); tok.Tag == token.Word && tok.Text == word {
		c.stream.Next()
		return true
	}
	return false
}

// expectWord requires a WORD next, returning a StructuralError tagged
// with context otherwise.
func (c *Compiler) expectWord(context string) (string, error) {
	word, ok := c.acceptWord()
	if !ok {
		return "", structuralf("%s: expected a word", context)
	}
	return word, nil
}
