/*
File    : ponylex/cmd/ponylex/debug.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"

	"github.com/akashmaji946/ponylex/lexer"
	"github.com/akashmaji946/ponylex/token"
)

// dumpTokens drains l, writing one line per token to w. In debug mode it
// uses alecthomas/repr for a fully structured dump (kind, payload,
// position); otherwise it prints the token's canonical textual form where
// one exists, else its kind name.
func dumpTokens(w io.Writer, l *lexer.Lexer, debug bool) {
	for {
		tok := l.Next()
		if debug {
			fmt.Fprintln(w, repr.String(tok))
		} else {
			printPlain(w, tok)
		}
		if tok.Kind == token.TK_EOF {
			return
		}
	}
}

func printPlain(w io.Writer, tok token.Token) {
	if text, ok := token.Print(tok.Kind); ok {
		fmt.Fprintf(w, "%d:%d\t%s\n", tok.Line, tok.Column, text)
		return
	}

	switch tok.Kind {
	case token.TK_ID:
		fmt.Fprintf(w, "%d:%d\tID(%s)\n", tok.Line, tok.Column, tok.String.String())
	case token.TK_STRING:
		fmt.Fprintf(w, "%d:%d\tSTRING(%q)\n", tok.Line, tok.Column, tok.String.String())
	case token.TK_INT:
		fmt.Fprintf(w, "%d:%d\tINT(%s)\n", tok.Line, tok.Column, tok.Int.String())
	case token.TK_FLOAT:
		fmt.Fprintf(w, "%d:%d\tFLOAT(%v)\n", tok.Line, tok.Column, tok.Float)
	case token.TK_EOF:
		fmt.Fprintf(w, "%d:%d\tEOF\n", tok.Line, tok.Column)
	default:
		fmt.Fprintf(w, "%d:%d\tLEX_ERROR\n", tok.Line, tok.Column)
	}
}
