/*
File    : ponylex/diag/diag_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermSinkWritesFormattedLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewTermSink(&buf, false)
	s.Errorf("main.pony", 3, 7, "Unrecognized character: %q", "`")

	assert.Contains(t, buf.String(), "main.pony:3:7:")
	assert.Contains(t, buf.String(), "Unrecognized character")
}

func TestCollectingSinkAppends(t *testing.T) {
	s := &CollectingSink{}
	s.Errorf("a.pony", 1, 1, "first")
	s.Errorf("a.pony", 2, 4, "second: %d", 42)

	require.Len(t, s.Diagnostics, 2)
	assert.Equal(t, "first", s.Diagnostics[0].Message)
	assert.Equal(t, "second: 42", s.Diagnostics[1].Message)
	assert.Equal(t, "a.pony:2:4: second: 42", s.Diagnostics[1].String())
}

func TestNopSinkDiscards(t *testing.T) {
	var s NopSink
	assert.NotPanics(t, func() { s.Errorf("x", 1, 1, "whatever") })
}
