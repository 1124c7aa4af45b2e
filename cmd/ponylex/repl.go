/*
File    : ponylex/cmd/ponylex/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Interactive line-by-line lexing, in the shape of the teacher's repl
package: a banner, a readline-backed prompt with history, and colorized
feedback. Each line the user enters is lexed to EOF as its own source, so
a syntax error on one line never corrupts the next.
*/
package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/ponylex/diag"
	"github.com/akashmaji946/ponylex/lexer"
	"github.com/akashmaji946/ponylex/source"
)

var (
	blueColor = color.New(color.FgBlue)
	greenRepl = color.New(color.FgGreen)
)

func printBanner() {
	blueColor.Fprintf(os.Stdout, "%s\n", LINE)
	greenRepl.Fprintf(os.Stdout, "%s\n", BANNER)
	blueColor.Fprintf(os.Stdout, "%s\n", LINE)
	yellowColor.Fprintln(os.Stdout, "Version: "+VERSION+" | Author: "+AUTHOR+" | License: "+LICENCE)
	blueColor.Fprintf(os.Stdout, "%s\n", LINE)
	cyanColor.Fprintf(os.Stdout, "%s\n", "Enter a line of Pony source to see its tokens.")
	cyanColor.Fprintf(os.Stdout, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(os.Stdout, "%s\n", LINE)
}

// startRepl runs the interactive lexer loop until the user exits or EOF
// (Ctrl+D) is reached on stdin.
func startRepl(cfg *Config) {
	printBanner()

	rl, err := readline.New(PROMPT)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			os.Stdout.WriteString("Good bye!\n")
			return
		}

		line = strings.TrimRight(line, " \t\r\n")
		if line == "" {
			continue
		}
		if line == ".exit" {
			os.Stdout.WriteString("Good bye!\n")
			return
		}
		rl.SaveHistory(line)

		lexLine(line, cfg)
	}
}

func lexLine(line string, cfg *Config) {
	sink := diag.NewTermSink(os.Stderr, true)
	l := lexer.Open(source.New("<repl>", []byte(line)), sink)
	defer l.Close()

	dumpTokens(os.Stdout, l, cfg.Debug)
}
