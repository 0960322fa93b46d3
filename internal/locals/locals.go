// Package locals implements the per-word stack of local variables used
// while compiling a single ":" definition.
package locals

import "github.com/lassik/thirdc/internal/mangle"

// Local names a single local slot: the Forth word used to read it, the
// derived "<word>!" form used to write it, and the unique target variable
// name it was mangled to.
type Local struct {
	Word    string
	SetWord string
	Var     string
}

// Scope is a stack of Locals with a mark denoting the base of the
// "( ... )" declaration group currently being read. Locals above the mark
// belong to that group; Rollback drops every local and resets the mark.
type Scope struct {
	stack []Local
	mark  int
}

// Add mangles word into a fresh "local_"-prefixed variable name and pushes
// it onto the scope.
func (s *Scope) Add(pool *mangle.Pool, word string) Local {
	l := Local{
		Word:    word,
		SetWord: word + "!",
		Var:     pool.Mangle("local_", word),
	}
	s.stack = append(s.stack, l)
	return l
}

// Lookup scans newest-first for a Local matching word either as a read (the
// bare Forth word) or a write (the word with "!" appended). isWrite reports
// which case matched.
func (s *Scope) Lookup(word string) (local Local, isWrite bool, ok bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		l := s.stack[i]
		if l.Word == word {
			return l, false, true
		}
		if l.SetWord == word {
			return l, true, true
		}
	}
	return Local{}, false, false
}

// Mark returns the current stack depth, the base for a new declaration group.
func (s *Scope) Mark() int { return len(s.stack) }

// SetMark resets the mark without touching the stack; each "( ... )"
// declaration group marks its own base so only its locals get popped.
func (s *Scope) SetMark(mark int) { s.mark = mark }

// PendingSinceMark returns the locals declared since the base recorded by
// SetMark, oldest first.
func (s *Scope) PendingSinceMark() []Local {
	if s.mark > len(s.stack) {
		return nil
	}
	return s.stack[s.mark:]
}

// Rollback drops every local and resets the mark to zero. The whole stack
// goes, not just the newest declaration group: a ":" definition owns every
// local declared anywhere in its body, and nothing outlives the word.
func (s *Scope) Rollback() {
	s.stack = s.stack[:0]
	s.mark = 0
}

// Empty reports whether the scope currently holds no locals at all -- true
// after every ":" definition finishes compiling.
func (s *Scope) Empty() bool { return len(s.stack) == 0 }
