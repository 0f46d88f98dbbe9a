/*
File    : mova/repl/repl_test.go
Package : repl
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upyrov/mova/runner"
	"github.com/upyrov/mova/scope"
)

func TestRepl_EvalLinePrintsResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("banner", "v0", "----", "> ", nil)
	run := runner.New(nil)
	root := scope.New(nil)

	r.evalLine(&buf, "1 + 2", run, root)
	assert.Contains(t, buf.String(), "3")
}

func TestRepl_EvalLinePrintsErrorAndContinues(t *testing.T) {
	var buf bytes.Buffer
	r := New("banner", "v0", "----", "> ", nil)
	run := runner.New(nil)
	root := scope.New(nil)

	r.evalLine(&buf, "missing", run, root)
	assert.Contains(t, buf.String(), "Unable to resolve missing")
}

func TestRepl_DeclarationsPersistAcrossLines(t *testing.T) {
	var buf bytes.Buffer
	r := New("banner", "v0", "----", "> ", nil)
	run := runner.New(nil)
	root := scope.New(nil)

	r.evalLine(&buf, "let x = 41", run, root)
	buf.Reset()
	r.evalLine(&buf, "x + 1", run, root)
	assert.Contains(t, buf.String(), "42")
}
