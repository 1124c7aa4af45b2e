/*
File    : ponylex/lexer/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"

	"github.com/akashmaji946/ponylex/token"
)

// scanString dispatches between a triple-quoted string (raw, whitespace
// normalised) and a regular double-quoted one (escape-processed), both
// starting with the '"' Next already peeked.
func (l *Lexer) scanString() token.Token {
	if l.peek(2) == '"' && l.peek(3) == '"' {
		return l.scanTripleString()
	}
	return l.scanPlainString()
}

// scanPlainString reads an escape-processed string literal. Raw newline
// bytes inside the quotes are kept as part of the string.
func (l *Lexer) scanPlainString() token.Token {
	l.consume(1) // opening quote

	for {
		if l.isEOF() {
			return l.literalDoesntTerminate()
		}

		c := l.peek(1)
		switch {
		case c == '"':
			l.consume(1)
			return l.newTokenWithText(token.TK_STRING)
		case c == '\\':
			l.escape(true)
		default:
			l.appendByte(c)
			l.consume(1)
		}
	}
}

// scanTripleString reads a """-delimited string verbatim (no escape
// processing) up to the closing """, then normalises indentation the way
// the original's normalise_string does: the common leading whitespace of
// every non-blank line is stripped, and a leading blank line immediately
// after the opening """ is dropped entirely. Quotes that follow the
// closing """ directly (as in """a"""") are part of the string.
func (l *Lexer) scanTripleString() token.Token {
	l.consume(3)

	for {
		if l.isEOF() {
			return l.literalDoesntTerminate()
		}
		if l.peek(1) == '"' && l.peek(2) == '"' && l.peek(3) == '"' {
			l.consume(3)
			for l.peek(1) == '"' {
				l.appendByte('"')
				l.consume(1)
			}
			l.buf = []byte(normaliseTripleString(l.bufText()))
			return l.newTokenWithText(token.TK_STRING)
		}
		l.appendByte(l.peek(1))
		l.consume(1)
	}
}

// normaliseTripleString implements the original lexer's triple-quoted
// string de-indentation: strip the minimum common leading whitespace from
// every line first, then drop a leading line that is left entirely empty
// (or holds only "\r") by that stripping. A string with no newline is
// returned unchanged.
func normaliseTripleString(raw string) string {
	if !strings.Contains(raw, "\n") {
		return raw
	}
	lines := strings.Split(raw, "\n")

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := 0
		for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
			indent++
		}
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent > 0 {
		for i, line := range lines {
			if len(line) >= minIndent {
				lines[i] = line[minIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	if len(lines) > 1 && (lines[0] == "" || lines[0] == "\r") {
		lines = lines[1:]
	}

	return strings.Join(lines, "\n")
}
