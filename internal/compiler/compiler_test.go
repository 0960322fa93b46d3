package compiler_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassik/thirdc/internal/compiler"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	var out strings.Builder
	c, err := compiler.New(strings.NewReader(src), &out)
	require.NoError(t, err)
	require.NoError(t, c.Run())
	return out.String()
}

func TestVariableEmitsSlotGetterAndSetter(t *testing.T) {
	out := compile(t, "variable x")
	assert.Contains(t, out, "static uintptr_t var_x;")
	assert.Contains(t, out, "push(var_x);")
	assert.Contains(t, out, "var_x = pop();")
}

func TestDefinitionCallsPrimitivesAndLiterals(t *testing.T) {
	out := compile(t, `: two 1 1 + ;`)
	assert.Contains(t, out, "static void word_two(void)")
	assert.Contains(t, out, "push(1UL);")
	assert.Contains(t, out, "prim_plus();")
}

func TestLocalsDeclarationPopsRightmostFirst(t *testing.T) {
	out := compile(t, `: add-three ( a b c ) a b c ;`)
	popA := strings.Index(out, "uintptr_t local_a = pop();")
	popB := strings.Index(out, "uintptr_t local_b = pop();")
	popC := strings.Index(out, "uintptr_t local_c = pop();")
	require.True(t, popC >= 0 && popB >= 0 && popA >= 0)
	assert.Less(t, popC, popB, "rightmost-declared local must pop first")
	assert.Less(t, popB, popA)
}

func TestLocalSetterAssignsWithoutRedeclaring(t *testing.T) {
	out := compile(t, `: bump ( n ) n 1 + n! n ;`)
	assert.Contains(t, out, "uintptr_t local_n = pop();")
	assert.Contains(t, out, "\n    local_n = pop();")
	assert.Contains(t, out, "push(local_n);")
}

func TestLocalsDoNotLeakAcrossDefinitions(t *testing.T) {
	var sb strings.Builder
	c, err := compiler.New(strings.NewReader(`: first ( a ) a ; : second a ;`), &sb)
	require.NoError(t, err)
	err = c.Run()
	assert.Error(t, err, "a local from one definition must be undefined in the next")
}

func TestSecondLocalsGroupInOneWord(t *testing.T) {
	out := compile(t, `: f ( a ) a 1 + ( b ) b a ;`)
	assert.Contains(t, out, "uintptr_t local_a = pop();")
	assert.Contains(t, out, "uintptr_t local_b = pop();")

	// both groups are gone once the word finishes compiling
	var sb strings.Builder
	c, err := compiler.New(strings.NewReader(`: f ( a ) a 1 + ( b ) b a ; : g b ;`), &sb)
	require.NoError(t, err)
	assert.Error(t, c.Run())
}

func TestAndOrEmitFlagGuards(t *testing.T) {
	out := compile(t, `: eq? = & 1 show | 0 show ;`)
	assert.Contains(t, out, "if (!thirdc_flag) return;")
	assert.Contains(t, out, "if (thirdc_flag) return;")
}

func TestQuoteAndRecurse(t *testing.T) {
	out := compile(t, `: loop recurse ; : caller ' loop call ;`)
	assert.Contains(t, out, "(uintptr_t)word_loop")
	assert.Contains(t, out, "word_loop();") // recurse target
}

func TestStringLiteralPushesPointerToCLiteral(t *testing.T) {
	out := compile(t, `: greet "hi" show-bytes ;`)
	assert.Contains(t, out, `(uintptr_t)(unsigned char *)"hi"`)
}

func TestNegintEmitsTwosComplementNegation(t *testing.T) {
	out := compile(t, `: neg -5 ;`)
	assert.Contains(t, out, "(uintptr_t)-(intptr_t)5UL")
}

func TestUndefinedWordFailsDuringRun(t *testing.T) {
	var out strings.Builder
	c, err := compiler.New(strings.NewReader(`: f nope ;`), &out)
	require.NoError(t, err)
	err = c.Run()
	assert.Error(t, err)
}

func TestByteFormConsumesAndEmitsNothing(t *testing.T) {
	out := compile(t, `: f ( byte: "x" ) 1 ;`)
	assert.NotContains(t, out, "\"x\"")
	assert.Contains(t, out, "push(1UL);")
}

func TestBytesFormEmitsStaticArrayAndPushesPointer(t *testing.T) {
	out := compile(t, `: f ( bytes: "ab" 0 255 ) ;`)
	assert.Contains(t, out, "static const unsigned char bytes_[] = { 0x61, 0x62, 0x00, 0xff };")
	assert.Contains(t, out, "(uintptr_t)(const unsigned char *)bytes_")
}

// Only "variable" and ":" are legal at the top level, so a program's
// trailing invocations ("two show") live inside an explicit ": main ... ;"
// entry-point word.

func TestEndToEndScenarioTwoShow(t *testing.T) {
	out := compile(t, `: two 1 1 + ; : main two show ;`)
	assert.Contains(t, out, "int main(void)")
	snaps.MatchSnapshot(t, "two_show", out)
}

func TestEndToEndScenarioVariable(t *testing.T) {
	out := compile(t, `variable x : main 5 x! x show ;`)
	assert.Contains(t, out, "int main(void)")
	snaps.MatchSnapshot(t, "variable_x", out)
}

func TestEndToEndScenarioAddOrPanic(t *testing.T) {
	out := compile(t, `: add-or-panic ( a b ) a b +s ;`)
	assert.NotContains(t, out, "int main(void)")
	snaps.MatchSnapshot(t, "add_or_panic", out)
}
