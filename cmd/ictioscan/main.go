/*
Ictioscan runs a scanner built from a declaratively described token set
over a file or standard input, printing the resulting token stream.

Usage:

	ictioscan [flags]

The flags are:

	-v, --version
		Give the current version of ictioscan and then exit.

	-t, --tokens FILE
		Use the provided TOML token-set file to build the scanner. Required.

	-i, --input FILE
		Read source text from FILE instead of stdin.

	-I, --interactive
		Start a REPL: read a line at a time (via GNU readline where
		available) and print the tokens found in it.

	-d, --dump-dfa
		Print a table of the compiled DFA's states and transitions instead
		of scanning anything.

	-c, --cache FILE
		Load the combined DFA from FILE if present, or build it fresh and
		save it to FILE for next time.

Once built, the scanner tokenizes its input and prints one token per line
until EOF.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/ictioscan/scanner"
	"github.com/dekarrin/ictioscan/stream"
	"github.com/dekarrin/ictioscan/token"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = iota
	exitUsageError
	exitScanError
)

var (
	returnCode  int
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of ictioscan and exit")
	tokensFile  = pflag.StringP("tokens", "t", "", "TOML token-set file describing the scanner's token types")
	inputFile   = pflag.StringP("input", "i", "", "Read source text from this file instead of stdin")
	interactive = pflag.BoolP("interactive", "I", false, "Start a line-at-a-time REPL")
	dumpDFA     = pflag.BoolP("dump-dfa", "d", false, "Print the compiled DFA's states and transitions instead of scanning")
	cacheFile   = pflag.StringP("cache", "c", "", "Load/save the combined DFA from/to this file")
)

const version = "0.1.0"

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("ictioscan %s\n", version)
		return
	}

	if *tokensFile == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --tokens is required")
		returnCode = exitUsageError
		return
	}

	sc, err := loadTokenSet(*tokensFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = exitUsageError
		return
	}

	if *cacheFile != "" {
		if err := loadOrBuildCache(sc, *cacheFile); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = exitScanError
			return
		}
	}

	if *dumpDFA {
		fmt.Println(scanner.DumpDFA(sc))
		return
	}

	if *interactive {
		if err := runREPL(sc); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = exitScanError
		}
		return
	}

	var src string
	if *inputFile != "" {
		data, err := os.ReadFile(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = exitUsageError
			return
		}
		src = string(data)
	} else {
		data, err := readAllStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = exitScanError
			return
		}
		src = data
	}

	printTokens(sc, src)
}

func printTokens(sc *scanner.Scanner, src string) {
	ts := sc.Scan(stream.NewTextStream(src))
	for ts.HasNext() {
		tok := ts.Next()
		fmt.Println(formatToken(tok))
	}
}

func formatToken(tok token.Token) string {
	return fmt.Sprintf("%s %q @%d:%d", tok.Type().Human(), tok.Lexeme(), tok.Line(), tok.LinePos())
}

func readAllStdin() (string, error) {
	var sb strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		if n == 0 {
			break
		}
	}
	return sb.String(), nil
}

// runREPL reads one line at a time, via GNU readline where available
// (falling back to direct stdin reads when not attached to a TTY), and
// prints the tokens found on each line.
func runREPL(sc *scanner.Scanner) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "ictioscan> "})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		printTokens(sc, line)
	}
}
