/*
File    : mova/eval/statements.go
Package : eval
*/
package eval

import (
	"github.com/upyrov/mova/ast"
	"github.com/upyrov/mova/errs"
	"github.com/upyrov/mova/scope"
	"github.com/upyrov/mova/value"
)

// evalVariableStatement evaluates the right-hand side and declares it
// under name in the current scope only; `let` shadowing of a name already
// bound in this same scope is a silent rebind.
func (e *Evaluator) evalVariableStatement(n *ast.VariableStatement, sc *scope.Scope) (value.Data, error) {
	v, err := e.Eval(n.Value, sc)
	if err != nil {
		return nil, err
	}
	sc.Declare(n.Name, v)
	return value.Unit, nil
}

// evalFunctionStatement builds a Function value closing over a fresh
// child of sc (never sc itself; the body reaches sc through the parent
// chain, and resolving an affine binding there still moves it out of sc)
// and declares it under name in sc. Unlike `let`, redeclaring a function name
// already bound in this same scope is a Runtime error.
func (e *Evaluator) evalFunctionStatement(n *ast.FunctionStatement, sc *scope.Scope) (value.Data, error) {
	if _, exists := sc.Locals[n.Name]; exists {
		return nil, errs.Runtimef("function %s is already declared", n.Name)
	}
	fn := &scope.Function{
		Name:            n.Name,
		Parameters:      n.Parameters,
		Body:            n.Body,
		DefinitionScope: scope.New(sc),
	}
	sc.Declare(n.Name, fn)
	return value.Unit, nil
}
