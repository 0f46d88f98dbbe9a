/*
File    : mova/runner/runner.go
Package : runner

Package runner glues the pipeline together: tokenize, parse, evaluate on
a root scope. It is the one piece of the core both the CLI's `run`
command and its `repl` command share, so a file and a REPL line are
evaluated identically.
*/
package runner

import (
	"go.uber.org/zap"

	"github.com/upyrov/mova/eval"
	"github.com/upyrov/mova/parser"
	"github.com/upyrov/mova/scope"
	"github.com/upyrov/mova/value"
)

// Runner parses and evaluates Mova source, tracing each stage through an
// optional logger.
type Runner struct {
	logger *zap.SugaredLogger
}

// New creates a Runner. A nil logger is replaced with a no-op one.
func New(logger *zap.SugaredLogger) *Runner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Runner{logger: logger}
}

// RunOnScope parses src and evaluates it against the given scope, so a
// caller (the REPL) can keep declarations alive across calls.
func (r *Runner) RunOnScope(src string, sc *scope.Scope) (value.Data, error) {
	r.logger.Debugw("parsing source", "bytes", len(src))
	p, err := parser.NewParser(src)
	if err != nil {
		return nil, err
	}
	program, err := p.Parse()
	if err != nil {
		return nil, err
	}
	r.logger.Debugw("evaluating program", "nodes", len(program.Nodes))
	return eval.New(r.logger).Eval(program, sc)
}

// Run parses and evaluates src on a fresh root scope.
func (r *Runner) Run(src string) (value.Data, error) {
	return r.RunOnScope(src, scope.New(nil))
}
