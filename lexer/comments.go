/*
File    : ponylex/lexer/comments.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/akashmaji946/ponylex/token"

// slash handles the three things a '/' can start: a line comment ("//"),
// a nested block comment ("/*"), or the divide symbol on its own. The
// bool result tells Next whether a real token was produced (false for
// comments, which are skipped and never reach the parser).
func (l *Lexer) slash() (token.Token, bool) {
	if l.peek(2) == '/' {
		l.lineComment()
		return token.Token{}, false
	}
	if l.peek(2) == '*' {
		return l.nestedComment()
	}
	return l.scanSymbol(), true
}

// lineComment discards everything up to (but not including) the next
// newline or EOF.
func (l *Lexer) lineComment() {
	l.consume(2)
	for !l.isEOF() && l.peek(1) != '\n' {
		l.consume(1)
	}
}

// nestedComment discards a /* ... */ block comment, tracking nesting
// depth so "/* /* */ */" closes cleanly. An unterminated comment drains
// the rest of the source and reports a lex-error token, matching the
// original's treatment of EOF inside nested_comment.
func (l *Lexer) nestedComment() (token.Token, bool) {
	l.consume(2)
	depth := 1

	for depth > 0 {
		if l.isEOF() {
			l.errorf("Nested comment doesn't terminate")
			l.drain()
			return l.newToken(token.TK_LEX_ERROR), true
		}

		switch {
		case l.peek(1) == '/' && l.peek(2) == '*':
			l.consume(2)
			depth++
		case l.peek(1) == '*' && l.peek(2) == '/':
			l.consume(2)
			depth--
		default:
			l.consume(1)
		}
	}

	l.newline = false
	return token.Token{}, false
}
