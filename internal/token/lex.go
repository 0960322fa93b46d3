package token

import (
	"fmt"

	"github.com/lassik/thirdc/internal/runeio"
)

// LexError reports a fatal, unrecoverable lexical failure. No source
// position is attached -- callers format the bare message.
type LexError struct {
	Reason string
}

func (e *LexError) Error() string { return "lex error: " + e.Reason }

func lexErrorf(format string, args ...interface{}) *LexError {
	return &LexError{Reason: fmt.Sprintf(format, args...)}
}

// Lex tokenizes buf to completion, applying the lexical rules in order until
// end of input:
//
//  1. skip ASCII whitespace
//  2. '\' runs a line comment to (but not including) the newline
//  3. '"' reads a string literal; any non-printable byte or premature EOF
//     inside it is a fatal lex error
//  4. otherwise read a maximal run of non-whitespace, non-'"', non-'#' bytes
//     as a WORD; an empty run at this position is a fatal lex error
//
// A WORD is further classified as UINT or NEGINT when it parses as a number
// under parseNumber; otherwise it stays a WORD with its lexeme preserved.
func Lex(buf *Buffer) (*Stream, error) {
	var toks []Token
	for {
		skipSpace(buf)
		if buf.atEOF() {
			break
		}

		switch buf.peek() {
		case '\\':
			skipLineComment(buf)
			continue
		case '"':
			tok, err := lexString(buf)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			continue
		}

		tok, err := lexWord(buf)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return &Stream{toks: toks}, nil
}

func skipSpace(buf *Buffer) {
	for !buf.atEOF() && isSpace(buf.peek()) {
		buf.advance()
	}
}

func skipLineComment(buf *Buffer) {
	buf.advance() // the '\'
	for !buf.atEOF() && buf.peek() != '\n' {
		buf.advance()
	}
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

func lexString(buf *Buffer) (Token, error) {
	buf.advance() // opening '"'
	buf.markHere()
	for {
		if buf.atEOF() {
			return Token{}, lexErrorf("unterminated string literal")
		}
		c := buf.peek()
		if c == '"' {
			text := string(buf.marked())
			buf.advance() // closing '"'
			return Token{Tag: String, Text: text}, nil
		}
		if !isPrintable(c) {
			if name := runeio.ControlName(rune(c)); name != "" {
				return Token{}, lexErrorf("%s (%s) byte in string literal", name, runeio.CaretForm(rune(c)))
			}
			return Token{}, lexErrorf("non-printable byte 0x%02x in string literal", c)
		}
		buf.advance()
	}
}

func isWordBoundary(c byte) bool {
	return isSpace(c) || c == '"' || c == '#'
}

func lexWord(buf *Buffer) (Token, error) {
	buf.markHere()
	for !buf.atEOF() && !isWordBoundary(buf.peek()) {
		buf.advance()
	}
	if len(buf.marked()) == 0 {
		return Token{}, lexErrorf("empty word at byte %q", buf.peek())
	}
	text := string(buf.marked())

	if tag, num, ok := parseNumber(text); ok {
		return Token{Tag: tag, Text: text, Num: num}, nil
	}
	return Token{Tag: Word, Text: text}, nil
}

// parseNumber classifies word as UINT or NEGINT per the numeric grammar:
// optional leading '-' (NEGINT else UINT), optional base prefix 0b/0o/0x
// (default base 10), remainder non-empty and entirely valid digits for the
// chosen base (alphabet "0-9a-f", case-sensitive lower).
func parseNumber(word string) (Tag, uint64, bool) {
	tag := Uint
	rest := word
	if len(rest) > 0 && rest[0] == '-' {
		tag = Negint
		rest = rest[1:]
	}

	base := 10
	if len(rest) > 2 && rest[0] == '0' {
		switch rest[1] {
		case 'b':
			base, rest = 2, rest[2:]
		case 'o':
			base, rest = 8, rest[2:]
		case 'x':
			base, rest = 16, rest[2:]
		}
	}

	if len(rest) == 0 {
		return 0, 0, false
	}

	var val uint64
	for i := 0; i < len(rest); i++ {
		d, ok := digitValue(rest[i])
		if !ok || d >= base {
			return 0, 0, false
		}
		val = val*uint64(base) + uint64(d)
	}
	return tag, val, true
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}
