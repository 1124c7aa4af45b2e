/*
File    : ponylex/lexer/symbol.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/akashmaji946/ponylex/token"

// scanSymbol matches the longest prefix of the remaining input against
// token.Symbols(), in table order, and remaps a leading '(' '[' '-' to
// its newline variant when no real token has appeared since the last
// newline. An unmatched byte is reported and skipped.
func (l *Lexer) scanSymbol() token.Token {
	three := string([]byte{l.peek(1), orZero(l, 2), orZero(l, 3)})
	two := three[:2]
	one := three[:1]

	for _, cand := range []string{three, two, one} {
		cand = trimZero(cand)
		if cand == "" {
			continue
		}
		if kind, ok := matchSymbolText(cand); ok {
			l.consume(len(cand))
			return l.remapNewline(kind, cand)
		}
	}

	l.errorf("Unrecognized character: %c", l.peek(1))
	l.consume(1)
	return l.newToken(token.TK_LEX_ERROR)
}

// matchSymbolText finds the first symbolTable entry (earliest wins) whose
// text equals s, searching only the entries that are reachable from
// scanning (the trailing TK_UNARY_MINUS/_NEW duplicates are Print-only and
// never win here because their earlier twins match first).
func matchSymbolText(s string) (token.Kind, bool) {
	for _, e := range token.Symbols() {
		if e.Text == s {
			return e.Kind, true
		}
	}
	return 0, false
}

// remapNewline swaps '(' '[' '-' for their _NEW variant when the token
// immediately follows a newline with nothing else scanned in between,
// which lets the parser tell "f (x)" apart from "f\n(x)".
func (l *Lexer) remapNewline(kind token.Kind, text string) token.Token {
	if l.newline {
		switch text {
		case "(":
			kind = token.TK_LPAREN_NEW
		case "[":
			kind = token.TK_LSQUARE_NEW
		case "-":
			kind = token.TK_MINUS_NEW
		}
	}
	return l.newToken(kind)
}

// orZero peeks byte n, returning 0 past EOF instead of panicking the
// 3-byte lookahead window used for "...".
func orZero(l *Lexer, n int) byte { return l.peek(n) }

// trimZero trims trailing NUL placeholders introduced by orZero so that
// a short lookahead window near EOF doesn't get matched against a
// symbol text that happens to contain a literal zero byte (none do, but
// the trim keeps candidate strings exactly as long as the real input).
func trimZero(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == 0 {
		i--
	}
	return s[:i]
}
