/*
File    : ponylex/lexer/identifier.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/akashmaji946/ponylex/token"

// scanIdentifier reads a maximal run of identifier characters (the first
// byte was already classified as alpha or '_' by Next) and classifies the
// result as a keyword or a plain TK_ID.
func (l *Lexer) scanIdentifier() token.Token {
	for !l.isEOF() && isIdentTail(l.peek(1)) {
		l.appendByte(l.peek(1))
		l.consume(1)
	}

	text := l.bufText()
	if kind, ok := token.LookupKeyword(text); ok {
		return l.newToken(kind)
	}
	return l.newTokenWithText(token.TK_ID)
}

// scanTestIdentifier handles a leading '$': Pony reserves this prefix for
// a small set of test-only keywords. The '$' is consumed up front; the
// trailing letters are only consumed once matched against the test
// keyword table, so an unrecognised tail is left for whatever scans next
// rather than swallowed along with the error.
func (l *Lexer) scanTestIdentifier() token.Token {
	l.consume(1) // the '$'

	n := 0
	for {
		c := l.peek(n + 1)
		if c == 0 || !isIdentTail(c) {
			break
		}
		n++
	}

	text := make([]byte, 0, n+1)
	text = append(text, '$')
	for i := 1; i <= n; i++ {
		text = append(text, l.peek(i))
	}

	kind, ok := token.LookupTestKeyword(string(text))
	if !ok {
		l.errorf("Unrecognized character: $")
		return l.newToken(token.TK_LEX_ERROR)
	}

	l.consume(n)
	return l.newToken(kind)
}
