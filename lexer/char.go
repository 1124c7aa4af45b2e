/*
File    : ponylex/lexer/char.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"github.com/akashmaji946/ponylex/token"
	"github.com/akashmaji946/ponylex/uint128"
)

// scanChar reads a '...'-delimited character literal. Its value is built
// byte by byte with Uint128.ShiftLeft8Or, the same fold the original uses,
// which means literals longer than 16 bytes silently lose their high bits
// rather than erroring (see uint128.ShiftLeft8Or and the Open Question
// this preserves).
func (l *Lexer) scanChar() token.Token {
	l.consume(1) // opening quote
	var v uint128.Uint128

	for {
		if l.isEOF() {
			return l.literalDoesntTerminate()
		}

		c := l.peek(1)
		switch {
		case c == '\'':
			l.consume(1)
			t := l.newToken(token.TK_INT)
			t.SetInt(v)
			return t

		case c == '\\':
			before := len(l.buf)
			l.escape(false)
			for _, b := range l.buf[before:] {
				v = v.ShiftLeft8Or(b)
			}
			l.buf = l.buf[:before]

		default:
			v = v.ShiftLeft8Or(c)
			l.consume(1)
		}
	}
}
