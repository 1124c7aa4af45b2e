/*
File    : ponylex/cmd/ponylex/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for ponylex. It provides three modes of
operation:
1. File Mode (default, given a path argument): lex a single Pony source
   file and print its tokens.
2. REPL Mode (no arguments): interactive line-by-line lexing.
3. Server Mode ("ponylex server <port>"): lex everything a client sends
   over a TCP connection once the client stops sending, one token dump
   per connection.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/pborman/getopt"

	"github.com/akashmaji946/ponylex/diag"
	"github.com/akashmaji946/ponylex/lexer"
	"github.com/akashmaji946/ponylex/source"
)

// VERSION is the current ponylex release.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of ponylex's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "ponylex >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ██▓███   ▒█████   ███▄    █▓██   ██▓ ██▓    ▓█████ ▒██   ██▒
▓██░  ██▒▒██▒  ██▒ ██ ▀█   █▒▒██  ██▒▓██▒    ▓█   ▀ ▒▒ █ █ ▒░
▓██░ ██▓▒▒██░  ██▒▓██  ▀█ ██▒ ▒██ ██░▒██░    ▒███   ░░  █   ░
▒██▄█▓▒ ▒▒██   ██░▓██▒  ▐▌██▒ ░ ▐██▓░▒██░    ▒▓█  ▄  ░ █ █ ▒
▒██▒ ░  ░░ ████▓▒░▒██░   ▓██░ ░ ██▒▓░░██████▒░▒████▒▒██▒ ▒██▒
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	help := getopt.BoolLong("help", '?', "display help")
	version := getopt.BoolLong("version", 'v', "display version information")
	debug := getopt.BoolLong("debug", 'd', "print tokens with full repr detail instead of kind names")
	configPath := getopt.StringLong("config", 'c', "", "path to a ponylex.yaml configuration file", "FILE")
	getopt.SetParameters("[file | server <port>]")

	getopt.Parse()

	if *help {
		getopt.Usage()
		return
	}
	if *version {
		showVersion()
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}
	cfg.Debug = cfg.Debug || *debug

	args := getopt.Args()

	switch {
	case len(args) == 0:
		startRepl(cfg)

	case args[0] == "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: ponylex server <port>\n")
			os.Exit(1)
		}
		startServer(args[1], cfg)

	default:
		runFile(args[0], cfg)
	}
}

func showVersion() {
	cyanColor.Println("ponylex - a standalone Pony lexer")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and lexes a single Pony source file, printing every token
// to stdout and every diagnostic to stderr.
func runFile(path string, cfg *Config) {
	src, err := source.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	sink := diag.NewTermSink(os.Stderr, true)
	l := lexer.Open(src, sink)
	defer l.Close()

	dumpTokens(os.Stdout, l, cfg.Debug)
}

// startServer listens on port and lexes whatever a client sends down each
// connection, one token-stream dump per connection.
func startServer(port string, cfg *Config) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("ponylex server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleConn(conn, cfg)
	}
}

func handleConn(conn net.Conn, cfg *Config) {
	defer conn.Close()

	data, err := readAll(conn)
	if err != nil {
		fmt.Fprintf(conn, "[READ ERROR] %v\n", err)
		return
	}

	sink := diag.NewTermSink(conn, false)
	l := lexer.Open(source.New(conn.RemoteAddr().String(), data), sink)
	defer l.Close()

	dumpTokens(conn, l, cfg.Debug)
}

func readAll(conn net.Conn) ([]byte, error) {
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			return buf, nil
		}
	}
}
