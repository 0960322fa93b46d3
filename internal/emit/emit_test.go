package emit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassik/thirdc/internal/emit"
)

func TestFuncDefIndentsBody(t *testing.T) {
	var buf strings.Builder
	e := emit.New(&buf)
	e.FuncDef("word__foo", func() {
		e.Push("1")
		e.Call("prim_dup")
	})

	want := "static void word__foo(void)\n{\n    push(1);\n    prim_dup();\n}\n"
	assert.Equal(t, want, buf.String())
	assert.NoError(t, e.Err())
}

func TestStaticVarAndPopInto(t *testing.T) {
	var buf strings.Builder
	e := emit.New(&buf)
	e.StaticVar("var_counter")
	e.PopInto("var_counter")

	want := "static uintptr_t var_counter;\nvar_counter = pop();\n"
	assert.Equal(t, want, buf.String())
}

func TestDeclPopIntoDeclaresTheLocal(t *testing.T) {
	var buf strings.Builder
	e := emit.New(&buf)
	e.Indent()
	e.DeclPopInto("local_a")

	assert.Equal(t, "    uintptr_t local_a = pop();\n", buf.String())
}

func TestBlankSeparatesDefinitions(t *testing.T) {
	var buf strings.Builder
	e := emit.New(&buf)
	e.StaticVar("var_x")
	e.Blank()
	e.StaticVar("var_y")

	assert.Equal(t, "static uintptr_t var_x;\n\nstatic uintptr_t var_y;\n", buf.String())
}

func TestIndentDedentNestsAndFloorsAtZero(t *testing.T) {
	var buf strings.Builder
	e := emit.New(&buf)
	e.Dedent() // no-op below zero
	e.Indent()
	e.Indent()
	e.Line("nested();")
	e.Dedent()
	e.Line("one_deep();")
	e.Dedent()
	e.Dedent() // no-op below zero
	e.Line("top();")

	want := "        nested();\n    one_deep();\ntop();\n"
	assert.Equal(t, want, buf.String())
}

func TestStringLiteralEscaping(t *testing.T) {
	assert.Equal(t, `"hello"`, emit.StringLiteral("hello"))
	assert.Equal(t, `"a\"b\\c"`, emit.StringLiteral(`a"b\c`))
	assert.Equal(t, `"\x07"`, emit.StringLiteral("\a"))
}

func TestByteLiteral(t *testing.T) {
	assert.Equal(t, "'A'", emit.ByteLiteral('A'))
	assert.Equal(t, `'\x00'`, emit.ByteLiteral(0))
	assert.Equal(t, `'\x27'`, emit.ByteLiteral('\''))
}

func TestErrShortCircuitsFurtherWrites(t *testing.T) {
	e := emit.New(failingWriter{})
	e.Line("first();")
	assert.Error(t, e.Err())
	e.Line("second();") // must not panic or overwrite the error
	assert.Error(t, e.Err())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, assertErr }

var assertErr = errBoom{}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
