/*
File    : ponylex/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/ponylex/diag"
	"github.com/akashmaji946/ponylex/source"
	"github.com/akashmaji946/ponylex/token"
	"github.com/akashmaji946/ponylex/uint128"
)

func kindsOf(t *testing.T, src string) []token.Kind {
	t.Helper()
	l := Open(source.New("test", []byte(src)), diag.NopSink{})
	defer l.Close()

	var kinds []token.Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.TK_EOF {
			break
		}
	}
	return kinds
}

func TestEmptySourceYieldsEOF(t *testing.T) {
	l := Open(source.New("empty", nil), diag.NopSink{})
	tok := l.Next()
	assert.Equal(t, token.TK_EOF, tok.Kind)
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)

	// EOF is sticky.
	tok2 := l.Next()
	assert.Equal(t, token.TK_EOF, tok2.Kind)
	assert.Equal(t, tok.Line, tok2.Line)
	assert.Equal(t, tok.Column, tok2.Column)
}

func TestFunctionSignature(t *testing.T) {
	got := kindsOf(t, "fun foo(x: U32): U32 => x + 1")
	want := []token.Kind{
		token.TK_FUN, token.TK_ID, token.TK_LPAREN_NEW, token.TK_ID, token.TK_COLON,
		token.TK_ID, token.TK_RPAREN, token.TK_COLON, token.TK_ID, token.TK_DBLARROW,
		token.TK_ID, token.TK_PLUS, token.TK_INT, token.TK_EOF,
	}
	assert.Equal(t, want, got)
}

func TestNestedBlockComment(t *testing.T) {
	got := kindsOf(t, "/* a /* b */ c */ 1")
	assert.Equal(t, []token.Kind{token.TK_INT, token.TK_EOF}, got)
}

func TestUnterminatedNestedComment(t *testing.T) {
	sink := &diag.CollectingSink{}
	l := Open(source.New("t", []byte("/* never closes")), sink)
	tok := l.Next()
	assert.Equal(t, token.TK_LEX_ERROR, tok.Kind)
	require.Len(t, sink.Diagnostics, 1)
	assert.Contains(t, sink.Diagnostics[0].Message, "Nested comment doesn't terminate")
}

func TestTripleQuotedStringNormalisation(t *testing.T) {
	l := Open(source.New("t", []byte("\"\"\"\n  hello\n  world\n  \"\"\"")), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_STRING, tok.Kind)
	assert.Equal(t, "hello\nworld\n", tok.String.String())
}

func TestTripleQuotedFourQuotesClosesWithOneInside(t *testing.T) {
	l := Open(source.New("t", []byte(`"""""""`)), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_STRING, tok.Kind)
	assert.Equal(t, `"`, tok.String.String())
}

func TestDotWithNoFractionIsIntThenDot(t *testing.T) {
	got := kindsOf(t, "1.")
	assert.Equal(t, []token.Kind{token.TK_INT, token.TK_DOT, token.TK_EOF}, got)
}

func TestHexBinaryAndUnderscores(t *testing.T) {
	l := Open(source.New("t", []byte("0xFF 0b_1_0_1")), diag.NopSink{})

	tok1 := l.Next()
	require.Equal(t, token.TK_INT, tok1.Kind)
	assert.True(t, tok1.Int.Equal(uint128.FromUint64(255)))

	tok2 := l.Next()
	require.Equal(t, token.TK_INT, tok2.Kind)
	assert.True(t, tok2.Int.Equal(uint128.FromUint64(5)))
}

func TestInvalidHexDigitIsLexError(t *testing.T) {
	sink := &diag.CollectingSink{}
	l := Open(source.New("t", []byte("0xG")), sink)
	tok := l.Next()
	assert.Equal(t, token.TK_LEX_ERROR, tok.Kind)
	assert.NotEmpty(t, sink.Diagnostics)
}

func TestCharacterLiteralBigEndianFold(t *testing.T) {
	l := Open(source.New("t", []byte(`'ab'`)), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_INT, tok.Kind)
	assert.True(t, tok.Int.Equal(uint128.FromUint64(0x6162)))
}

func TestUnicodeEscapeInString(t *testing.T) {
	src := []byte{'"', '\\', 'u', '0', '0', '4', '1', '"'} // "A"
	l := Open(source.New("t", src), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_STRING, tok.Kind)
	assert.Equal(t, "A", tok.String.String())

	src2 := []byte{'"', '\\', 'u', '0', '0', 'F', 'F', '"'} // "ÿ"
	l2 := Open(source.New("t", src2), diag.NopSink{})
	tok2 := l2.Next()
	require.Equal(t, token.TK_STRING, tok2.Kind)
	assert.Equal(t, []byte{0xC3, 0xBF}, []byte(tok2.String.String()))
}

func TestUnicodeEscapeUpperU(t *testing.T) {
	src := []byte{'"', '\\', 'U', '0', '0', '0', '0', '4', '1', '"'} // "A"
	l := Open(source.New("t", src), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_STRING, tok.Kind)
	assert.Equal(t, "A", tok.String.String())
}

func TestUnicodeEscapeExceedingRangeIsReported(t *testing.T) {
	src := []byte{'"', '\\', 'U', '1', 'F', 'F', 'F', 'F', 'F', '"'} // 0x1FFFFF
	sink := &diag.CollectingSink{}
	l := Open(source.New("t", src), sink)
	tok := l.Next()
	assert.Equal(t, token.TK_STRING, tok.Kind)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Contains(t, sink.Diagnostics[0].Message, "exceeds unicode range")
}

func TestUnicodeEscapeDisallowedInCharLiteral(t *testing.T) {
	sink := &diag.CollectingSink{}
	l := Open(source.New("t", []byte(`'A'`)), sink)
	tok := l.Next()
	assert.Equal(t, token.TK_LEX_ERROR, tok.Kind)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Contains(t, sink.Diagnostics[0].Message, "not allowed in character literals")
}

func TestRealLiteralWithNegativeExponent(t *testing.T) {
	l := Open(source.New("t", []byte("3.14e-2")), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_FLOAT, tok.Kind)
	assert.InDelta(t, 0.0314, tok.Float, 1e-9)
}

func TestUnaryMinusAndMinusNewDisambiguation(t *testing.T) {
	got := kindsOf(t, "let x = -1\n-2")
	want := []token.Kind{
		token.TK_LET, token.TK_ID, token.TK_ASSIGN, token.TK_MINUS, token.TK_INT,
		token.TK_MINUS_NEW, token.TK_INT, token.TK_EOF,
	}
	assert.Equal(t, want, got)
}

func TestUnterminatedStringReportsAtOpeningQuote(t *testing.T) {
	sink := &diag.CollectingSink{}
	l := Open(source.New("t", []byte(`"unterminated`)), sink)
	tok := l.Next()
	assert.Equal(t, token.TK_LEX_ERROR, tok.Kind)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, 1, sink.Diagnostics[0].Line)
	assert.Equal(t, 1, sink.Diagnostics[0].Column)
}

func TestIdentifierInterningSharesHandle(t *testing.T) {
	l := Open(source.New("t", []byte("foo foo")), diag.NopSink{})
	tok1 := l.Next()
	tok2 := l.Next()
	require.Equal(t, token.TK_ID, tok1.Kind)
	require.Equal(t, token.TK_ID, tok2.Kind)
	assert.Equal(t, tok1.String, tok2.String)
}

func TestKeywordCarriesNoStringPayload(t *testing.T) {
	l := Open(source.New("t", []byte("true")), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_TRUE, tok.Kind)
	assert.True(t, tok.String.IsZero())
}

func TestRoundTripKeywordsAndSymbols(t *testing.T) {
	kinds := []token.Kind{
		token.TK_TRUE, token.TK_FALSE, token.TK_ACTOR, token.TK_CLASS,
		token.TK_ARROW, token.TK_DBLARROW, token.TK_ELLIPSIS, token.TK_LBRACE,
		token.TK_EQ, token.TK_NE,
	}
	for _, k := range kinds {
		text, ok := token.Print(k)
		require.True(t, ok, "kind %v has no textual form", k)

		got := kindsOf(t, text)
		require.Len(t, got, 2, "round trip of %q produced more than one real token", text)
		assert.Equal(t, k, got[0], "round trip of %q", text)
	}
}

func TestTestKeywordRecognized(t *testing.T) {
	l := Open(source.New("t", []byte("$seq")), diag.NopSink{})
	tok := l.Next()
	assert.Equal(t, token.TK_TEST_SEQ, tok.Kind)
}

func TestUnrecognizedTestKeywordLeavesTailUnconsumed(t *testing.T) {
	sink := &diag.CollectingSink{}
	l := Open(source.New("t", []byte("$bogus")), sink)
	tok := l.Next()
	assert.Equal(t, token.TK_LEX_ERROR, tok.Kind)
	require.NotEmpty(t, sink.Diagnostics)

	tok2 := l.Next()
	require.Equal(t, token.TK_ID, tok2.Kind)
	assert.Equal(t, "bogus", tok2.String.String())
}

func TestLineColumnTrackingAcrossNewlines(t *testing.T) {
	l := Open(source.New("t", []byte("a\nb\n\nc")), diag.NopSink{})

	tok1 := l.Next()
	assert.Equal(t, 1, tok1.Line)
	assert.Equal(t, 1, tok1.Column)

	tok2 := l.Next()
	assert.Equal(t, 2, tok2.Line)
	assert.Equal(t, 1, tok2.Column)

	tok3 := l.Next()
	assert.Equal(t, 4, tok3.Line)
	assert.Equal(t, 1, tok3.Column)
}

func TestPlainStringEscapes(t *testing.T) {
	l := Open(source.New("t", []byte(`"a\nb\tc"`)), diag.NopSink{})
	tok := l.Next()
	require.Equal(t, token.TK_STRING, tok.Kind)
	assert.Equal(t, "a\nb\tc", tok.String.String())
}

func TestOverflowingIntegerLiteralIsLexError(t *testing.T) {
	sink := &diag.CollectingSink{}
	l := Open(source.New("t", []byte("340282366920938463463374607431768211456")), sink) // 2^128
	tok := l.Next()
	assert.Equal(t, token.TK_LEX_ERROR, tok.Kind)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Contains(t, sink.Diagnostics[0].Message, "overflow")
}

func TestLineCommentStopsAtNewline(t *testing.T) {
	got := kindsOf(t, "1 // a comment\n2")
	assert.Equal(t, []token.Kind{token.TK_INT, token.TK_INT, token.TK_EOF}, got)
}

func TestUnrecognizedCharacterReportsAndSkips(t *testing.T) {
	sink := &diag.CollectingSink{}
	got := kindsOf2(t, "`1", sink)
	assert.Equal(t, []token.Kind{token.TK_LEX_ERROR, token.TK_INT, token.TK_EOF}, got)
	require.NotEmpty(t, sink.Diagnostics)
}

func kindsOf2(t *testing.T, src string, sink diag.Sink) []token.Kind {
	t.Helper()
	l := Open(source.New("test", []byte(src)), sink)
	var kinds []token.Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.TK_EOF {
			break
		}
	}
	return kinds
}
