/*
File   : minipylang/repl/repl.go
Package: repl

Package repl implements MiniPyLang's interactive Read-Eval-Print Loop,
grounded on the teacher's repl.Repl (repl/repl.go): chzyer/readline for
line editing and history, fatih/color for categorized output (blue
separators, green banner, yellow results, cyan info, red errors), and
a per-line parse-then-evaluate-with-recovery pattern. Unlike the
teacher, a MiniPyLang REPL session keeps one Interpreter (and its
single global Environment) alive across lines, and adds the meta-
commands spec.md's external interfaces section names but leaves
unspecified: `tree on|off`, `vars`, `clear`, `help`, `quit`.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/minipylang/config"
	"github.com/akashmaji946/minipylang/eval"
	"github.com/akashmaji946/minipylang/parser"
	"github.com/akashmaji946/minipylang/printer"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

const banner = `  __  __ _       _ ____        _
 |  \/  (_)_ __ (_)  _ \ _   _| |
 | |\/| | | '_ \| | |_) | | | | |
 | |  | | | | | | |  __/| |_| |_|
 |_|  |_|_|_| |_|_|_|    \__, (_)
                         |___/
`

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const separator = "----------------------------------------------------------------"

// Repl holds one interactive session's presentation settings.
type Repl struct {
	cfg      config.Config
	showTree bool
}

// New creates a Repl using cfg for its prompt/banner/color settings.
func New(cfg config.Config) *Repl {
	if !cfg.ColorsOn {
		color.NoColor = true
	}
	return &Repl{cfg: cfg}
}

// printBanner shows the startup banner and basic usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	if !r.cfg.ShowBanner {
		return
	}
	blueColor.Fprintf(w, "%s\n", separator)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", separator)
	cyanColor.Fprintln(w, "MiniPyLang — type code and press enter")
	cyanColor.Fprintln(w, "Meta-commands: tree on|off, vars, clear, help, quit")
	blueColor.Fprintf(w, "%s\n", separator)
}

// Start runs the REPL loop against stdin (via readline) and w, keeping
// one Interpreter alive across input lines.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.cfg.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	it := eval.New()
	it.Out = w

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Goodbye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		switch r.handleMeta(w, it, line) {
		case metaExit:
			return nil
		case metaHandled:
			continue
		}

		r.evalLine(w, it, line)
	}
}

// metaResult reports how handleMeta disposed of a line: left it for
// the evaluator, handled it and stayed in the loop, or handled it by
// ending the session.
type metaResult int

const (
	metaNotHandled metaResult = iota
	metaHandled
	metaExit
)

// handleMeta recognizes a REPL meta-command and reports what became
// of line.
func (r *Repl) handleMeta(w io.Writer, it *eval.Interpreter, line string) metaResult {
	switch line {
	case "quit", "exit":
		fmt.Fprintln(w, "Goodbye!")
		return metaExit
	case "tree on":
		r.showTree = true
		cyanColor.Fprintln(w, "AST printing enabled")
		return metaHandled
	case "tree off":
		r.showTree = false
		cyanColor.Fprintln(w, "AST printing disabled")
		return metaHandled
	case "vars":
		r.printVars(w, it)
		return metaHandled
	case "clear":
		it.Env.Reset()
		cyanColor.Fprintln(w, "Environment cleared")
		return metaHandled
	case "help":
		r.printHelp(w)
		return metaHandled
	}
	return metaNotHandled
}

func (r *Repl) printVars(w io.Writer, it *eval.Interpreter) {
	snap := it.Env.Snapshot()
	if len(snap) == 0 {
		cyanColor.Fprintln(w, "(no bindings)")
		return
	}
	for name, v := range snap {
		yellowColor.Fprintf(w, "%s = %s\n", name, v.String())
	}
}

func (r *Repl) printHelp(w io.Writer) {
	cyanColor.Fprintln(w, "MiniPyLang REPL")
	cyanColor.Fprintln(w, "  tree on|off   toggle AST printing before evaluation")
	cyanColor.Fprintln(w, "  vars          list current environment bindings")
	cyanColor.Fprintln(w, "  clear         wipe the environment")
	cyanColor.Fprintln(w, "  help          show this message")
	cyanColor.Fprintln(w, "  quit          exit the REPL")
}

// evalLine parses and executes one submission, reporting any
// lexical/syntax/runtime error without aborting the session.
func (r *Repl) evalLine(w io.Writer, it *eval.Interpreter, line string) {
	prog, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}

	if r.showTree {
		blueColor.Fprint(w, printer.Dump(prog))
	}

	if err := it.Run(prog); err != nil {
		redColor.Fprintf(w, "%s\n", err)
	}
}
