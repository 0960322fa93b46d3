// Command thirdc compiles a Forth-dialect source file to C source text.
//
// See internal/compiler for the tokenizer, symbol table, and code emitter,
// and internal/runtimec for the runtime primitive layer the emitted C
// includes.
package main

import (
	"os"

	"github.com/lassik/thirdc/cmd/thirdc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
