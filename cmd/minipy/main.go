/*
File   : minipylang/cmd/minipy/main.go
Package: main

The MiniPyLang command-line entry point, grounded on the teacher's
main/main.go dispatch: no arguments starts the REPL, an argument names
a source file to run, and --help prints usage. The `--tree` flag
(spec.md §6's CLI contract) dumps the parsed AST via the printer
package before executing, the same opt-in debugging aid the teacher
gates behind a commented-out printAST call.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/minipylang/config"
	"github.com/akashmaji946/minipylang/eval"
	"github.com/akashmaji946/minipylang/parser"
	"github.com/akashmaji946/minipylang/printer"
	"github.com/akashmaji946/minipylang/repl"
	"github.com/fatih/color"
)

var redColor = color.New(color.FgRed)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		cfg, err := config.Load()
		if err != nil {
			redColor.Fprintf(os.Stderr, "config error: %s\n", err)
		}
		if err := repl.New(cfg).Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "repl error: %s\n", err)
			os.Exit(1)
		}
		return
	}

	if args[0] == "--help" || args[0] == "-h" {
		printUsage()
		return
	}

	showTree := false
	file := ""
	for _, a := range args {
		switch a {
		case "--tree":
			showTree = true
		default:
			file = a
		}
	}
	if file == "" {
		printUsage()
		os.Exit(1)
	}

	runFile(file, showTree)
}

func printUsage() {
	fmt.Println("MiniPyLang - a small imperative scripting language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  minipy                 Start the interactive REPL")
	fmt.Println("  minipy FILE            Run a MiniPyLang source file")
	fmt.Println("  minipy FILE --tree     Print the parsed AST, then run the file")
	fmt.Println("  minipy --help          Show this message")
}

func runFile(path string, showTree bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %s\n", path, err)
		os.Exit(1)
	}

	prog, err := parser.Parse(string(src))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	if showTree {
		fmt.Print(printer.Dump(prog))
	}

	it := eval.New()
	if err := it.Run(prog); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
