/*
File    : ponylex/token/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package token defines the tokens produced by the ponylex lexer: the kind
space, the Token value itself, and the four static tables (symbols,
keywords, abstract keywords, test keywords) that drive both scanning and
pretty-printing.
*/
package token

import (
	"fmt"

	"github.com/akashmaji946/ponylex/intern"
	"github.com/akashmaji946/ponylex/uint128"
)

// Kind identifies the syntactic category of a Token. The zero value,
// TK_LEX_ERROR, doubles as the "no such kind" sentinel returned by
// LookupAbstract on a miss.
type Kind int

// Token is the unit the lexer produces. At most one of String/Int/Float is
// meaningful, depending on Kind; see the comment on each scanner for which
// kinds populate which field.
type Token struct {
	Kind   Kind
	Origin string
	Line   int
	Column int

	String intern.Handle   // set only for TK_ID and TK_STRING
	Int    uint128.Uint128 // set only for TK_INT
	Float  float64         // set only for TK_FLOAT
}

// New creates a Token with no payload. SetPos/SetString/SetInt/SetFloat are
// provided to match the setter-style construction the original C lexer
// uses (token_new/token_set_pos/...), even though in Go a single struct
// literal would do; the lexer builds tokens incrementally across several
// sub-scanners and the explicit setters keep that flow readable.
func New(kind Kind, origin string) Token {
	return Token{Kind: kind, Origin: origin}
}

// SetPos records the source position of the token being built.
func (t *Token) SetPos(line, column int) {
	t.Line = line
	t.Column = column
}

// SetString attaches an interned string payload (TK_ID, TK_STRING).
func (t *Token) SetString(h intern.Handle) {
	t.String = h
}

// SetInt attaches an integer payload (TK_INT).
func (t *Token) SetInt(v uint128.Uint128) {
	t.Int = v
}

// SetFloat attaches a float payload (TK_FLOAT).
func (t *Token) SetFloat(v float64) {
	t.Float = v
}

// GoString renders a Token the way %#v would if its fields were all
// exported scalars; used by cmd/ponylex's --debug dump via alecthomas/repr,
// which calls GoStringer when present.
func (t Token) GoString() string {
	text, _ := Print(t.Kind)
	switch t.Kind {
	case TK_ID, TK_STRING:
		return fmt.Sprintf("token.Token{Kind:%s, String:%q, Line:%d, Column:%d}",
			kindName(t.Kind), t.String.String(), t.Line, t.Column)
	case TK_INT:
		return fmt.Sprintf("token.Token{Kind:%s, Int:%s, Line:%d, Column:%d}",
			kindName(t.Kind), t.Int.String(), t.Line, t.Column)
	case TK_FLOAT:
		return fmt.Sprintf("token.Token{Kind:%s, Float:%v, Line:%d, Column:%d}",
			kindName(t.Kind), t.Float, t.Line, t.Column)
	default:
		return fmt.Sprintf("token.Token{Kind:%s(%q), Line:%d, Column:%d}",
			kindName(t.Kind), text, t.Line, t.Column)
	}
}
