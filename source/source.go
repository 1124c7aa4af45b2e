/*
File    : ponylex/source/source.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package source holds the immutable input a Lexer scans: an origin label
(typically a file path) and the raw bytes read from it. Loading a Source
from disk is the one place outside cmd/ponylex's config loader that
touches the filesystem directly, in the spirit of the teacher's file package (which wrapped os
file handles for its own language's runtime) but adapted here to the much
narrower job of reading a whole Pony source file once before lexing.
*/
package source

import (
	"fmt"
	"os"
)

// Source is an immutable byte buffer plus the label it came from. Once
// constructed it never changes; a Lexer only ever reads from it.
type Source struct {
	Origin string
	Bytes  []byte
}

// New wraps an already-loaded buffer under the given origin label. Useful
// for REPL input and tests, where there is no file on disk.
func New(origin string, data []byte) *Source {
	return &Source{Origin: origin, Bytes: data}
}

// Load reads the named file in full and returns a Source labelled with its
// path.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: could not read %q: %w", path, err)
	}
	return &Source{Origin: path, Bytes: data}, nil
}

// Len returns the number of bytes in the source.
func (s *Source) Len() int { return len(s.Bytes) }
