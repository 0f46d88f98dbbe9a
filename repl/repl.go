/*
File    : mova/repl/repl.go
Package : repl

Package repl implements Mova's interactive read-eval-print loop. It
keeps one root scope alive across lines, so `let` declarations and `fn`
definitions from one line are visible to the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/upyrov/mova/runner"
	"github.com/upyrov/mova/scope"
	"github.com/upyrov/mova/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: its banner, version string,
// and prompt are set once by the caller (cmd/mova) and reused for every
// line read until exit.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
	Logger  *zap.SugaredLogger
}

// New creates a Repl with the given presentation strings. A nil Logger
// is replaced with a no-op one.
func New(banner, version, line, prompt string, logger *zap.SugaredLogger) *Repl {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, Logger: logger}
}

// printBanner writes the startup banner to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintf(writer, "Mova %s\n", r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type Mova code and press enter. Type '.exit' to quit.")
}

// Start runs the loop, writing the banner and results to out. Input is
// always read through readline's own terminal handle; in is accepted for
// interface symmetry and to let tests pass an explicit, unused source.
func (r *Repl) Start(in io.Reader, out io.Writer) error {
	r.printBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	run := runner.New(r.Logger)
	root := scope.New(nil)

	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl+D) or readline error
			out.Write([]byte("Goodbye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			out.Write([]byte("Goodbye!\n"))
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(out, line, run, root)
	}
}

// evalLine runs one line of input against the shared root scope and
// prints its result or error; either outcome leaves the REPL running.
func (r *Repl) evalLine(out io.Writer, line string, run *runner.Runner, root *scope.Scope) {
	v, err := run.RunOnScope(line, root)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err.Error())
		return
	}
	if v != value.Unit {
		yellowColor.Fprintf(out, "%s\n", v.String())
	}
}
