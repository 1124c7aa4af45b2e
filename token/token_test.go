/*
File    : ponylex/token/token_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/ponylex/uint128"
)

func TestPrintSearchesAbstractBeforeKeywords(t *testing.T) {
	text, ok := Print(TK_ISO_BIND)
	assert.True(t, ok)
	assert.Equal(t, "iso", text)

	text, ok = Print(TK_ISO)
	assert.True(t, ok)
	assert.Equal(t, "iso", text)
}

func TestPrintUnknownKindReturnsFalse(t *testing.T) {
	_, ok := Print(Kind(99999))
	assert.False(t, ok)
}

func TestLookupAbstractRoundTrip(t *testing.T) {
	assert.Equal(t, TK_PROGRAM, LookupAbstract("program"))
	assert.Equal(t, TK_LEX_ERROR, LookupAbstract("not-a-real-abstract-kind"))
}

func TestLookupKeywordExactSpelling(t *testing.T) {
	kind, ok := LookupKeyword("actor")
	assert.True(t, ok)
	assert.Equal(t, TK_ACTOR, kind)

	_, ok = LookupKeyword("Actor")
	assert.False(t, ok)
}

func TestSymbolTableLongestPrefixOrdering(t *testing.T) {
	syms := Symbols()
	// "..." must appear before any entry whose text is a prefix of it.
	dotdotdotIdx := -1
	dotIdx := -1
	for i, e := range syms {
		if e.Text == "..." {
			dotdotdotIdx = i
		}
		if e.Text == "." {
			dotIdx = i
		}
	}
	assert.True(t, dotdotdotIdx < dotIdx, "... must be tried before .")
}

func TestSymbolTableHasNoUnexpectedDuplicateEntries(t *testing.T) {
	// The only entries allowed to duplicate earlier text are the
	// newline-sensitive variants and TK_UNARY_MINUS, which exist purely
	// for Print to find (see the comment on symbolTable).
	allowedDuplicates := []Entry{
		{"-", TK_UNARY_MINUS},
		{"(", TK_LPAREN_NEW},
		{"[", TK_LSQUARE_NEW},
		{"-", TK_MINUS_NEW},
	}

	seen := map[string]bool{}
	var dupes []Entry
	for _, e := range Symbols() {
		if seen[e.Text] {
			dupes = append(dupes, e)
		}
		seen[e.Text] = true
	}

	diff := cmp.Diff(allowedDuplicates, dupes, cmpopts.EquateComparable(Entry{}))
	assert.Empty(t, diff, "unexpected duplicate symbol-table entries (-want +got)")
}

func TestGoStringRendersPayloadByKind(t *testing.T) {
	tok := New(TK_INT, "t")
	tok.SetInt(uint128.FromUint64(42))
	assert.Contains(t, tok.GoString(), "Int:42")

	tok2 := New(TK_FLOAT, "t")
	tok2.SetFloat(3.5)
	assert.Contains(t, tok2.GoString(), "Float:3.5")
}
