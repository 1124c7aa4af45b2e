/*
File    : ponylex/lexer/numbers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"math"

	"github.com/akashmaji946/ponylex/token"
	"github.com/akashmaji946/ponylex/uint128"
)

// scanNumber dispatches on a 0x/0X/0b/0B prefix for non-decimal integers,
// else reads a decimal literal that may turn into a real (float) literal
// if a '.' or exponent follows.
func (l *Lexer) scanNumber() token.Token {
	if l.peek(1) == '0' && (l.peek(2) == 'x' || l.peek(2) == 'X') {
		l.consume(2)
		return l.scanNonDecimal(16, isHexDigit)
	}
	if l.peek(1) == '0' && (l.peek(2) == 'b' || l.peek(2) == 'B') {
		l.consume(2)
		return l.scanNonDecimal(2, isBinaryDigit)
	}
	return l.scanDecimalOrReal()
}

// scanNonDecimal accumulates digits (underscores are separators and are
// skipped, never counted) in the given base, reporting an overflow error
// if the value exceeds 128 bits.
func (l *Lexer) scanNonDecimal(base uint32, digitOK func(byte) bool) token.Token {
	var v uint128.Uint128
	count := 0
	overflowed := false

	for !l.isEOF() {
		c := l.peek(1)
		if c == '_' {
			l.consume(1)
			continue
		}
		if !digitOK(c) {
			break
		}
		d := hexValue(c)
		nv, overflow := uint128.MulAddOverflows(v, base, uint32(d))
		if overflow {
			overflowed = true
		} else {
			v = nv
		}
		count++
		l.consume(1)
	}

	if count == 0 {
		context := "binary number"
		if base == 16 {
			context = "hexadecimal number"
		}
		l.errorf("No digits in %s", context)
		return l.newToken(token.TK_LEX_ERROR)
	}
	if overflowed {
		l.errorf("overflow in numeric literal")
		return l.newToken(token.TK_LEX_ERROR)
	}

	t := l.newToken(token.TK_INT)
	t.SetInt(v)
	return t
}

// scanDecimalOrReal reads a decimal integer, then, if a '.' followed by a
// digit or an exponent marker follows, continues into a real (floating
// point) literal built from an exact mantissa and a power-of-ten exponent,
// matching the original's separation of integer accumulation from the
// final double construction.
func (l *Lexer) scanDecimalOrReal() token.Token {
	var mantissa uint128.Uint128
	digits := 0
	overflowed := false
	fracDigits := 0
	isReal := false

	for !l.isEOF() && (isDigit(l.peek(1)) || l.peek(1) == '_') {
		if l.peek(1) == '_' {
			l.consume(1)
			continue
		}
		nv, overflow := uint128.MulAddOverflows(mantissa, 10, uint32(l.peek(1)-'0'))
		if overflow {
			overflowed = true
		} else {
			mantissa = nv
		}
		digits++
		l.consume(1)
	}

	if digits == 0 {
		l.errorf("No digits in %s", "decimal number")
		return l.newToken(token.TK_LEX_ERROR)
	}

	if l.peek(1) == '.' && isDigit(l.peek(2)) {
		isReal = true
		l.consume(1)
		for !l.isEOF() && (isDigit(l.peek(1)) || l.peek(1) == '_') {
			if l.peek(1) == '_' {
				l.consume(1)
				continue
			}
			nv, overflow := uint128.MulAddOverflows(mantissa, 10, uint32(l.peek(1)-'0'))
			if overflow {
				overflowed = true
			} else {
				mantissa = nv
			}
			fracDigits++
			l.consume(1)
		}
	}

	exponent := 0
	if l.peek(1) == 'e' || l.peek(1) == 'E' {
		if c := l.peek(2); isDigit(c) || ((c == '+' || c == '-') && isDigit(l.peek(3))) {
			isReal = true
			l.consume(1)
			sign := 1
			if l.peek(1) == '+' {
				l.consume(1)
			} else if l.peek(1) == '-' {
				sign = -1
				l.consume(1)
			}
			for isDigit(l.peek(1)) {
				exponent = exponent*10 + int(l.peek(1)-'0')
				l.consume(1)
			}
			exponent *= sign
		}
	}

	if overflowed {
		l.errorf("overflow in numeric literal")
		return l.newToken(token.TK_LEX_ERROR)
	}

	if !isReal {
		t := l.newToken(token.TK_INT)
		t.SetInt(mantissa)
		return t
	}

	value := mantissa.Float64() * math.Pow10(exponent-fracDigits)
	t := l.newToken(token.TK_FLOAT)
	t.SetFloat(value)
	return t
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
