package compiler

import (
	"fmt"

	"github.com/lassik/thirdc/internal/emit"
	"github.com/lassik/thirdc/internal/symtab"
	"github.com/lassik/thirdc/internal/token"
)

// registerForms wires the two top-level and five inner compile forms into
// a fresh definition table. Each CompileFunc's driver argument is always
// the *Compiler that invoked it -- kept opaque at the symtab layer to avoid
// a dependency cycle.
func registerForms(syms *symtab.Table) {
	syms.DefineCompile("variable", true, func(d interface{}) error { return compileVariable(d.(*Compiler)) })
	syms.DefineCompile(":", true, func(d interface{}) error { return compileDefinition(d.(*Compiler)) })

	syms.DefineCompile("(", false, func(d interface{}) error { return compileParens(d.(*Compiler)) })
	syms.DefineCompile("'", false, func(d interface{}) error { return compileQuote(d.(*Compiler)) })
	syms.DefineCompile("&", false, func(d interface{}) error { return compileAnd(d.(*Compiler)) })
	syms.DefineCompile("|", false, func(d interface{}) error { return compileOr(d.(*Compiler)) })
	syms.DefineCompile("recurse", false, func(d interface{}) error { return compileRecurse(d.(*Compiler)) })
}

// compileVariable implements "variable <name>": a file-scope slot, a
// getter USER word named after it, and a "<name>!" setter USER word.
func compileVariable(c *Compiler) error {
	name, err := c.expectWord("variable")
	if err != nil {
		return err
	}
	varName := c.pool.Mangle("var_", name)
	c.out.StaticVar(varName)
	c.out.Blank()

	getter := c.defineUser(name)
	c.out.FuncDef(getter.Target, func() { c.out.Push(varName) })
	c.out.Blank()

	setter := c.defineUser(name + "!")
	c.out.FuncDef(setter.Target, func() { c.out.PopInto(varName) })
	return nil
}

// compileDefinition implements ": <name> … ;": a USER function whose
// body is each inner token compiled via compileBodyToken, until a
// literal ";" closes it and any locals declared inside are rolled back.
func compileDefinition(c *Compiler) error {
	name, err := c.expectWord(":")
	if err != nil {
		return err
	}
	def := c.defineUser(name)

	var bodyErr error
	c.out.FuncDef(def.Target, func() {
		for !c.acceptExactWord(";") {
			if c.stream.Peek().Tag == token.EOF {
				bodyErr = structuralf(": %s: unexpected end of input before ;", name)
				return
			}
			if err := c.compileBodyToken(); err != nil {
				bodyErr = err
				return
			}
		}
	})
	c.locals.Rollback()
	return bodyErr
}

// compileBodyToken compiles one token inside a ":" body.
func (c *Compiler) compileBodyToken() error {
	tok := c.stream.Next()
	switch tok.Tag {
	case token.Word:
		return c.compileBodyWord(tok.Text)
	case token.String:
		c.out.Push(fmt.Sprintf("(uintptr_t)(unsigned char *)%s", emit.StringLiteral(tok.Text)))
		return nil
	case token.Char, token.Uint:
		c.out.Push(fmt.Sprintf("%dUL", tok.Num))
		return nil
	case token.Negint:
		c.out.Push(fmt.Sprintf("(uintptr_t)-(intptr_t)%dUL", tok.Num))
		return nil
	default:
		return structuralf("unexpected %v inside a definition", tok.Tag)
	}
}

// compileBodyWord resolves a bare WORD inside a ":" body: a matching
// local (read or, for the "!"-suffixed form, write), else a COMPILE form
// invoked inline, else a call to a PRIMITIVE/USER target, else fatal.
func (c *Compiler) compileBodyWord(word string) error {
	if local, isWrite, ok := c.locals.Lookup(word); ok {
		if isWrite {
			c.out.PopInto(local.Var)
		} else {
			c.out.Push(local.Var)
		}
		return nil
	}

	def, err := c.syms.Lookup(word, 0)
	if err != nil {
		return &SymbolError{Word: word, Err: err}
	}
	if def == nil {
		return undefinedf(word)
	}
	switch {
	case def.Tags&symtab.Compile != 0:
		return def.Compile(c)
	case def.Tags&(symtab.Primitive|symtab.User) != 0:
		c.out.Call(def.Target)
		return nil
	default:
		return structuralf("cannot use %q in a definition", word)
	}
}

// compileParens implements "(": byte:, bytes:, or (the default) a locals
// declaration binding the data stack's top N values, rightmost name first,
// to freshly mangled local variables.
func compileParens(c *Compiler) error {
	switch {
	case c.acceptExactWord("byte:"):
		return compileByteForm(c)
	case c.acceptExactWord("bytes:"):
		return compileBytesForm(c)
	default:
		return compileLocalsForm(c)
	}
}

// compileByteForm consumes a single STRING and the closing ")"; the byte
// literal it names is reserved for future use and not emitted.
func compileByteForm(c *Compiler) error {
	if tok := c.stream.Next(); tok.Tag != token.String {
		return structuralf("byte: expects a string")
	}
	if !c.acceptExactWord(")") {
		return structuralf("byte: expects a closing )")
	}
	return nil
}

// compileBytesForm accumulates a byte vector from a run of STRING and
// UINT (0..255) tokens up to the closing ")", then emits it as a static
// const array and pushes a pointer to it, so words can build string
// tables without spelling them out byte by byte.
func compileBytesForm(c *Compiler) error {
	var data []byte
	for !c.acceptExactWord(")") {
		tok := c.stream.Next()
		switch tok.Tag {
		case token.String:
			data = append(data, tok.Text...)
		case token.Uint:
			if tok.Num > 0xff {
				return structuralf("bytes: byte literal %d out of range", tok.Num)
			}
			data = append(data, byte(tok.Num))
		case token.EOF:
			return structuralf("bytes: unexpected end of input before )")
		default:
			return structuralf("bytes: unexpected %v", tok.Tag)
		}
	}
	name := c.pool.Mangle("bytes_", "")
	c.out.ByteArray(name, data)
	c.out.Push(fmt.Sprintf("(uintptr_t)(const unsigned char *)%s", name))
	return nil
}

// compileLocalsForm reads WORD tokens up to ")", adding each as a local
// in declaration order, then emits pops binding the rightmost-declared
// local to the top of the data stack.
func compileLocalsForm(c *Compiler) error {
	c.locals.SetMark(c.locals.Mark())
	for !c.acceptExactWord(")") {
		word, ok := c.acceptWord()
		if !ok {
			if c.stream.Peek().Tag == token.EOF {
				return structuralf("(: unexpected end of input before )")
			}
			return structuralf("(: expected a local name")
		}
		c.locals.Add(&c.pool, word)
	}
	pending := c.locals.PendingSinceMark()
	for i := len(pending) - 1; i >= 0; i-- {
		c.out.DeclPopInto(pending[i].Var)
	}
	return nil
}

// compileQuote implements "'": a first-class reference to a USER word's
// target function, used by "call".
func compileQuote(c *Compiler) error {
	name, err := c.expectWord("'")
	if err != nil {
		return err
	}
	def, lookErr := c.syms.Lookup(name, symtab.User)
	if lookErr != nil {
		return &SymbolError{Word: name, Err: lookErr}
	}
	if def == nil {
		return undefinedf(name)
	}
	c.out.Push(fmt.Sprintf("(uintptr_t)%s", def.Target))
	return nil
}

// compileAnd implements "&": return from the enclosing word if the flag
// is false.
func compileAnd(c *Compiler) error {
	c.out.Line("if (!thirdc_flag) return;")
	return nil
}

// compileOr implements "|": return from the enclosing word if the flag
// is true.
func compileOr(c *Compiler) error {
	c.out.Line("if (thirdc_flag) return;")
	return nil
}

// compileRecurse implements "recurse": a call to the target of the last
// definition slot in the table -- in practice the USER word whose body is
// currently being compiled.
func compileRecurse(c *Compiler) error {
	def := c.syms.Last()
	if def == nil {
		return structuralf("recurse: no enclosing definition")
	}
	c.out.Call(def.Target)
	return nil
}
