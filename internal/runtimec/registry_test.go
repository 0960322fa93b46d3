package runtimec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The Forth-word table in primitives.go and the prim_* functions in the C
// template are maintained by hand; templatePrimFuncs (regenerated by
// scripts/gen_primitives.go) keeps them honest in both directions.

func TestRegistryTargetsExistInTemplate(t *testing.T) {
	defined := map[string]bool{}
	for _, name := range templatePrimFuncs {
		defined[name] = true
	}
	for _, p := range Primitives() {
		assert.True(t, defined[p.CFunc],
			"primitive %q targets %q, which the template never defines", p.ForthWord, p.CFunc)
	}
}

func TestEveryTemplateFunctionIsRegistered(t *testing.T) {
	registered := map[string]bool{}
	for _, p := range Primitives() {
		registered[p.CFunc] = true
	}
	for _, name := range templatePrimFuncs {
		assert.True(t, registered[name],
			"template defines %q but no Forth word targets it", name)
	}
}
