// Package emit writes the C source the compiler produces: one
// "static void word_xxx(void)" function per compiled definition, plus the
// static variables backing "variable" words and the locals of each word.
package emit

import (
	"fmt"
	"io"
	"strings"
)

// Emitter is a thin, stateful wrapper over an io.Writer: it tracks an
// indentation level and exposes the handful of statement shapes the
// compiler ever needs to produce. It does not buffer beyond what the
// underlying Writer does; callers wanting flush control wrap w themselves
// (see internal/flushio).
type Emitter struct {
	w      io.Writer
	indent int
	err    error
}

// New returns an Emitter writing to w.
func New(w io.Writer) *Emitter { return &Emitter{w: w} }

// Err returns the first write error encountered, if any. Every method is a
// no-op once Err is non-nil, so callers can emit a whole definition and
// check once at the end.
func (e *Emitter) Err() error { return e.err }

// Indent increases the indentation level used by Line.
func (e *Emitter) Indent() { e.indent++ }

// Dedent decreases the indentation level used by Line, never below zero.
func (e *Emitter) Dedent() {
	if e.indent > 0 {
		e.indent--
	}
}

// Line writes one indented, newline-terminated statement.
func (e *Emitter) Line(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	for i := 0; i < e.indent; i++ {
		if _, e.err = io.WriteString(e.w, "    "); e.err != nil {
			return
		}
	}
	if _, e.err = fmt.Fprintf(e.w, format, args...); e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, "\n")
}

// StaticVar emits a file-scope "static uintptr_t <name>;" declaration, the
// shape every "variable" word's backing storage takes.
func (e *Emitter) StaticVar(name string) {
	e.Line("static uintptr_t %s;", name)
}

// ByteArray emits a "static const unsigned char <name>[] = { ... };"
// initializer, the storage a "(bytes: ...)" form accumulates into. It is
// emitted at whatever indentation is current, which lets a
// caller declare it as a local static inside the enclosing word's body --
// valid C, initialized once, and addressable for the lifetime of the
// program exactly like a file-scope array would be.
func (e *Emitter) ByteArray(name string, data []byte) {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	e.Line("static const unsigned char %s[] = { %s };", name, strings.Join(parts, ", "))
}

// FuncDef emits "static void <name>(void) {", runs body with the
// indentation level bumped by one, then closes the brace. Every compiled
// word (USER or top-level ":") takes this shape.
func (e *Emitter) FuncDef(name string, body func()) {
	e.Line("static void %s(void)", name)
	e.Line("{")
	e.Indent()
	body()
	e.Dedent()
	e.Line("}")
}

// Push emits a push of expr onto the runtime data stack.
func (e *Emitter) Push(expr string) {
	e.Line("push(%s);", expr)
}

// PopInto emits "<expr> = pop();", the inverse of Push -- expr must be an
// lvalue (a bare identifier or a prior PopInto target).
func (e *Emitter) PopInto(expr string) {
	e.Line("%s = pop();", expr)
}

// DeclPopInto emits "uintptr_t <name> = pop();", declaring a fresh local
// variable bound to the popped value. Locals declarations use this; a later
// write to the same local goes through PopInto.
func (e *Emitter) DeclPopInto(name string) {
	e.Line("uintptr_t %s = pop();", name)
}

// Blank emits an empty separator line between file-scope definitions.
func (e *Emitter) Blank() {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, "\n")
}

// Call emits a call to another compiled or primitive word.
func (e *Emitter) Call(name string) {
	e.Line("%s();", name)
}

// StringLiteral returns s rendered as a C string literal, escaped byte by
// byte: non-printable and non-ASCII bytes become \xHH sequences, '"' and
// '\\' are backslash-escaped, and the rest pass through verbatim, so the
// emitted literal holds exactly the bytes of the source lexeme.
func StringLiteral(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			out = append(out, '\\', c)
		case c >= 0x20 && c < 0x7f:
			out = append(out, c)
		default:
			out = append(out, fmt.Sprintf(`\x%02x`, c)...)
		}
	}
	out = append(out, '"')
	return string(out)
}

// ByteLiteral returns a single byte rendered as a C char constant: printable
// ASCII other than '\'' and '\\' as itself, anything else as '\xHH'.
func ByteLiteral(b byte) string {
	if b >= 0x20 && b < 0x7f && b != '\'' && b != '\\' {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("'\\x%02x'", b)
}
