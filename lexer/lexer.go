/*
File    : ponylex/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package lexer implements the Pony lexical scanner: a re-entrant,
pull-style state machine that turns a source.Source into a stream of
token.Token values. Next is the only entry point a parser needs; Open and
Close bracket a scanning session.
*/
package lexer

import (
	"github.com/akashmaji946/ponylex/diag"
	"github.com/akashmaji946/ponylex/intern"
	"github.com/akashmaji946/ponylex/source"
	"github.com/akashmaji946/ponylex/token"
)

const initialBufCap = 64

// Lexer holds everything needed to resume scanning at the next unread
// byte: the source it's scanning, the position within it, the
// currently-in-progress token's text buffer, and the collaborators
// (string interner, diagnostic sink) it calls out to.
type Lexer struct {
	src  *source.Source
	sink diag.Sink
	tab  *intern.Table

	offset    int
	remaining int
	line      int
	column    int
	newline   bool // true iff no real token has been emitted since the last '\n'

	tokenLine   int
	tokenColumn int

	buf []byte
}

// Open creates a Lexer over src, reporting errors through sink, with a
// private string table. Use OpenShared to intern across multiple sources
// into one table, the way a whole-program compile would.
func Open(src *source.Source, sink diag.Sink) *Lexer {
	return OpenShared(src, sink, &intern.Table{})
}

// OpenShared is Open but with an explicit, possibly shared, intern.Table.
func OpenShared(src *source.Source, sink diag.Sink, tab *intern.Table) *Lexer {
	return &Lexer{
		src:       src,
		sink:      sink,
		tab:       tab,
		remaining: len(src.Bytes),
		line:      1,
		column:    1,
		newline:   true,
		buf:       make([]byte, 0, initialBufCap),
	}
}

// Close releases the lexer's scratch buffer. It is safe to call on a nil
// Lexer, matching the original's lexer_close(NULL) no-op.
func (l *Lexer) Close() {
	if l == nil {
		return
	}
	l.buf = nil
}

// isEOF reports whether every byte of the source has been consumed.
func (l *Lexer) isEOF() bool { return l.remaining == 0 }

// peek returns the n-th unread byte (n>=1; peek(1) is the common case), or
// 0 if fewer than n bytes remain.
func (l *Lexer) peek(n int) byte {
	if l.remaining < n {
		return 0
	}
	return l.src.Bytes[l.offset+n-1]
}

// consume advances past count bytes. Only the first of those bytes may be
// a newline; line/column accounting happens at most once per call.
func (l *Lexer) consume(count int) {
	if count == 0 {
		return
	}
	if count > l.remaining {
		panic("lexer: consume beyond end of source")
	}
	for _, b := range l.src.Bytes[l.offset+1 : l.offset+count] {
		if b == '\n' {
			panic("lexer: newline consumed past the first byte of a consume call")
		}
	}

	if l.src.Bytes[l.offset] == '\n' {
		l.line++
		l.column = 0
	}

	l.offset += count
	l.remaining -= count
	l.column += count
}

// resetToken records the start position of the token about to be scanned.
// Next clears the text buffer right after calling it.
func (l *Lexer) resetToken() {
	l.tokenLine = l.line
	l.tokenColumn = l.column
}

// appendByte grows buf on demand (doubling from initialBufCap, via the
// slice runtime's own growth policy) and appends b, mirroring the
// original's append_to_token.
func (l *Lexer) appendByte(b byte) {
	l.buf = append(l.buf, b)
}

// bufText returns the accumulated token text as a string without
// consuming or clearing the buffer.
func (l *Lexer) bufText() string { return string(l.buf) }

// newToken builds a bare Token of the given kind at the current token
// position.
func (l *Lexer) newToken(kind token.Kind) token.Token {
	t := token.New(kind, l.src.Origin)
	t.SetPos(l.tokenLine, l.tokenColumn)
	return t
}

// newTokenWithText builds a Token of the given kind whose String payload
// is the interned contents of the text buffer.
func (l *Lexer) newTokenWithText(kind token.Kind) token.Token {
	t := l.newToken(kind)
	t.SetString(l.tab.InternString(l.bufText()))
	return t
}

// errorf reports a diagnostic at the current token's start position.
func (l *Lexer) errorf(format string, args ...any) {
	l.sink.Errorf(l.src.Origin, l.tokenLine, l.tokenColumn, format, args...)
}

// errorfAt reports a diagnostic at an explicit position, used by the
// escape-sequence scanner which must point at the backslash rather than
// at the start of the enclosing literal.
func (l *Lexer) errorfAt(line, column int, format string, args ...any) {
	l.sink.Errorf(l.src.Origin, line, column, format, args...)
}

// drain consumes every remaining byte, used after an unterminated literal
// or comment so the lexer reaches a clean EOF state.
func (l *Lexer) drain() {
	l.offset += l.remaining
	l.remaining = 0
}

// literalDoesntTerminate reports the standard unterminated-literal error,
// drains the remaining input, and returns a lex-error token.
func (l *Lexer) literalDoesntTerminate() token.Token {
	l.errorf("Literal doesn't terminate")
	l.drain()
	return l.newToken(token.TK_LEX_ERROR)
}

// Next returns the next token in the source. After EOF is first returned,
// subsequent calls keep returning EOF tokens at the same position.
func (l *Lexer) Next() token.Token {
	for {
		l.resetToken()
		l.buf = l.buf[:0]

		if l.isEOF() {
			t := l.newToken(token.TK_EOF)
			l.newline = false
			return t
		}

		c := l.peek(1)
		var t token.Token
		produced := true

		switch {
		case c == '\n':
			l.newline = true
			l.consume(1)
			produced = false

		case c == '\r' || c == '\t' || c == ' ':
			l.consume(1)
			produced = false

		case c == '/':
			t, produced = l.slash()

		case c == '"':
			t = l.scanString()

		case c == '\'':
			t = l.scanChar()

		case c == '$':
			t = l.scanTestIdentifier()

		case isDigit(c):
			t = l.scanNumber()

		case isAlpha(c) || c == '_':
			t = l.scanIdentifier()

		default:
			t = l.scanSymbol()
		}

		if produced {
			l.newline = false
			return t
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentTail(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '\''
}
