/*
File    : mova/eval/expressions.go
Package : eval
*/
package eval

import (
	"github.com/upyrov/mova/ast"
	"github.com/upyrov/mova/errs"
	"github.com/upyrov/mova/scope"
	"github.com/upyrov/mova/value"
)

// evalBinary evaluates left then right, strictly in that order (left-to-right
// evaluation is observable here because a move on one side changes what the
// other can read), then applies op if both sides are numbers.
func (e *Evaluator) evalBinary(n *ast.BinaryExpression, sc *scope.Scope) (value.Data, error) {
	left, err := e.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, sc)
	if err != nil {
		return nil, err
	}

	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if lok && rok {
		switch n.Op {
		case ast.OpAdd:
			return value.Number{Value: ln.Value + rn.Value}, nil
		case ast.OpSub:
			return value.Number{Value: ln.Value - rn.Value}, nil
		case ast.OpMul:
			return value.Number{Value: ln.Value * rn.Value}, nil
		case ast.OpDiv:
			if rn.Value == 0 {
				return nil, errs.Runtimef("Division by zero")
			}
			return value.Number{Value: ln.Value / rn.Value}, nil
		}
	}
	return nil, errs.Runtimef("Unexpected operator '%s' for operands '%s' and '%s'", n.Op, left.String(), right.String())
}

// evalCall resolves name in the call-site scope, checks it is callable
// with the right arity, evaluates arguments left-to-right still in the
// call-site scope, then runs the body in a fresh scope parented at the
// function's captured definition scope.
func (e *Evaluator) evalCall(n *ast.Call, sc *scope.Scope) (value.Data, error) {
	callee, err := sc.Resolve(n.Name)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*scope.Function)
	if !ok {
		return nil, errs.Runtimef("%s is not callable", n.Name)
	}
	if len(n.Arguments) != len(fn.Parameters) {
		return nil, errs.Runtimef("Expected %d arguments but received %d", len(fn.Parameters), len(n.Arguments))
	}

	args := make([]value.Data, len(n.Arguments))
	for i, argNode := range n.Arguments {
		v, err := e.Eval(argNode, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	execScope := scope.New(fn.DefinitionScope)
	defer execScope.Release()
	for i, param := range fn.Parameters {
		execScope.Declare(param, args[i])
	}
	return e.Eval(fn.Body, execScope)
}
