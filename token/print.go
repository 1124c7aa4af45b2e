/*
File    : ponylex/token/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

// Print returns the canonical textual form of kind, searching abstract,
// then keywords, then symbols, then test keywords, in that order, and
// whether any table had an entry for it. Searching abstract first means a
// kind that shares text with an abstract entry (e.g. the ref-cap keywords
// also appearing as abstract-binder variants) resolves to the abstract
// table's text — intentional, not a bug; see DESIGN.md.
func Print(kind Kind) (string, bool) {
	for _, e := range abstractTable {
		if e.Kind == kind {
			return e.Text, true
		}
	}
	for _, e := range keywordTable {
		if e.Kind == kind {
			return e.Text, true
		}
	}
	for _, e := range symbolTable {
		if e.Kind == kind {
			return e.Text, true
		}
	}
	for _, e := range testKeywordTable {
		if e.Kind == kind {
			return e.Text, true
		}
	}
	return "", false
}

// LookupAbstract returns the Kind whose abstract-table text exactly matches
// text, or TK_LEX_ERROR if there is no such entry. Used by the AST
// deserialiser, never by the scanner itself.
func LookupAbstract(text string) Kind {
	for _, e := range abstractTable {
		if e.Text == text {
			return e.Kind
		}
	}
	return TK_LEX_ERROR
}
