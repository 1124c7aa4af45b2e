/*
File    : ponylex/lexer/escape.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// singleCharEscapes maps the byte following a backslash to the literal
// byte it produces, for every escape that isn't a numeric code point.
var singleCharEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'e':  0x1B,
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
	'0':  0,
}

// escape consumes a backslash escape sequence starting at the current
// position (the backslash itself must still be unconsumed) and appends
// its decoded bytes to the token buffer. allowUnicode gates \u and \U,
// which character literals (but not string literals) reject, matching
// the original's escape(lexer, newline, true) vs character()'s own
// restricted handling.
func (l *Lexer) escape(allowUnicode bool) bool {
	line, column, start := l.line, l.column, l.offset
	l.consume(1) // the backslash

	if l.isEOF() {
		l.errorfAt(line, column, "Literal doesn't terminate")
		return false
	}

	c := l.peek(1)

	if b, ok := singleCharEscapes[c]; ok {
		l.consume(1)
		l.appendByte(b)
		return true
	}

	switch c {
	case 'x':
		l.consume(1)
		v, ok := l.readHexDigits(line, column, start, 2)
		if !ok {
			return false
		}
		l.appendByte(byte(v))
		return true

	case 'u':
		if !allowUnicode {
			l.errorfAt(line, column, "Unicode escapes are not allowed in character literals")
			l.consume(1)
			return false
		}
		l.consume(1)
		v, ok := l.readHexDigits(line, column, start, 4)
		if !ok {
			return false
		}
		if v > 0x10FFFF {
			l.errorfAt(line, column, "Escape sequence \"\\u%04X\" exceeds unicode range (0x10FFFF)", v)
			return false
		}
		l.appendUTF8(v)
		return true

	case 'U':
		if !allowUnicode {
			l.errorfAt(line, column, "Unicode escapes are not allowed in character literals")
			l.consume(1)
			return false
		}
		l.consume(1)
		v, ok := l.readHexDigits(line, column, start, 6)
		if !ok {
			return false
		}
		if v > 0x10FFFF {
			l.errorfAt(line, column, "Escape sequence \"\\U%06X\" exceeds unicode range (0x10FFFF)", v)
			return false
		}
		l.appendUTF8(v)
		return true

	default:
		l.errorfAt(line, column, "Invalid escape sequence \"\\%c\"", c)
		l.consume(1)
		return false
	}
}

// readHexDigits reads exactly n hex digits and returns their value. A
// short read (EOF or a non-hex digit before n digits are seen) reports
// an error anchored at the escape's start and returns ok=false; the
// caller still owns draining/continuing as it sees fit. start is the
// source offset of the escape's backslash, used to quote the examined
// text in the message.
func (l *Lexer) readHexDigits(line, column, start, n int) (uint32, bool) {
	var v uint32
	for i := 0; i < n; i++ {
		if l.isEOF() {
			l.errorfAt(line, column, "Invalid escape sequence \"%s\", %d hex digits required", l.src.Bytes[start:l.offset], n)
			return 0, false
		}
		d, ok := hexDigit(l.peek(1))
		if !ok {
			l.errorfAt(line, column, "Invalid escape sequence \"%s\", %d hex digits required", l.src.Bytes[start:l.offset+1], n)
			return 0, false
		}
		v = v<<4 | uint32(d)
		l.consume(1)
	}
	return v, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

// appendUTF8 encodes a Unicode code point as UTF-8 and appends the
// resulting bytes to the token buffer, as the \u and \U escapes of string
// literals need.
func (l *Lexer) appendUTF8(cp uint32) {
	switch {
	case cp < 0x80:
		l.appendByte(byte(cp))
	case cp < 0x800:
		l.appendByte(byte(0xC0 | (cp >> 6)))
		l.appendByte(byte(0x80 | (cp & 0x3F)))
	case cp < 0x10000:
		l.appendByte(byte(0xE0 | (cp >> 12)))
		l.appendByte(byte(0x80 | ((cp >> 6) & 0x3F)))
		l.appendByte(byte(0x80 | (cp & 0x3F)))
	default:
		l.appendByte(byte(0xF0 | (cp >> 18)))
		l.appendByte(byte(0x80 | ((cp >> 12) & 0x3F)))
		l.appendByte(byte(0x80 | ((cp >> 6) & 0x3F)))
		l.appendByte(byte(0x80 | (cp & 0x3F)))
	}
}
