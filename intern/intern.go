/*
File    : ponylex/intern/intern.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package intern implements the string table the lexer calls for every TK_ID
and TK_STRING token: equal byte sequences collapse to the same Handle, so
downstream code can compare identifiers and string literals by value
without re-hashing or re-comparing their bytes. No third-party library in
the retrieved examples provides this narrow a primitive (a handle-returning
string interner); see DESIGN.md.
*/
package intern

import "sync"

// Handle is an opaque reference to an interned string. The zero Handle is
// never returned by Intern and is reserved to mean "no string".
type Handle struct {
	table *Table
	id    int
}

// String returns the interned text the handle refers to, or "" for the
// zero Handle.
func (h Handle) String() string {
	if h.table == nil {
		return ""
	}
	return h.table.text[h.id]
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.table == nil }

// Table is a single string-interning table. The zero Table is ready to
// use. A Table is safe for concurrent use, though a Lexer is not itself
// concurrent — multiple Lexer instances may share one Table.
type Table struct {
	mu   sync.Mutex
	id   map[string]int
	text []string
}

// Intern returns the Handle for b's contents, allocating a new entry only
// if this exact byte sequence hasn't been seen before.
func (t *Table) Intern(b []byte) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.id == nil {
		t.id = make(map[string]int)
	}

	s := string(b)
	if id, ok := t.id[s]; ok {
		return Handle{table: t, id: id}
	}

	id := len(t.text)
	t.text = append(t.text, s)
	t.id[s] = id
	return Handle{table: t, id: id}
}

// InternString is a convenience wrapper over Intern for callers that
// already hold a string.
func (t *Table) InternString(s string) Handle {
	return t.Intern([]byte(s))
}

// Len reports how many distinct strings have been interned.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.text)
}
