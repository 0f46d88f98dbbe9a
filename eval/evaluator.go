/*
File    : mova/eval/evaluator.go
Package : eval

Package eval walks an ast.Node tree and drives the move/borrow rules
scope.Scope enforces. There is exactly one entry point, Eval, dispatching
on the concrete node type; the expression cases live in expressions.go and
the two statement cases in statements.go.
*/
package eval

import (
	"go.uber.org/zap"

	"github.com/upyrov/mova/ast"
	"github.com/upyrov/mova/errs"
	"github.com/upyrov/mova/scope"
	"github.com/upyrov/mova/value"
)

// Evaluator is the recursive tree-walker. It carries no state of its own
// beyond a logger: all binding state lives in the scope chain passed to
// Eval, so a single Evaluator is safely reused across calls and recursion.
type Evaluator struct {
	Logger *zap.SugaredLogger
}

// New creates an Evaluator. A nil logger is replaced with a no-op one, so
// trace logging is opt-in.
func New(logger *zap.SugaredLogger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Evaluator{Logger: logger}
}

// Eval evaluates node in sc. Expression nodes return the value they
// produce; statement nodes are evaluated for effect and return value.Unit.
func (e *Evaluator) Eval(node ast.Node, sc *scope.Scope) (value.Data, error) {
	e.Logger.Debugf("eval %T at %v", node, node.At())

	switch n := node.(type) {
	case *ast.NumberLiteral:
		return value.Number{Value: n.Value}, nil
	case *ast.BooleanLiteral:
		return value.Boolean{Value: n.Value}, nil
	case *ast.Identifier:
		return sc.Resolve(n.Name)
	case *ast.Reference:
		return sc.Borrow(n.Name)
	case *ast.BinaryExpression:
		return e.evalBinary(n, sc)
	case *ast.Call:
		return e.evalCall(n, sc)
	case *ast.Block:
		return e.evalBlock(n, sc)
	case *ast.Program:
		return e.evalProgram(n, sc)
	case *ast.VariableStatement:
		return e.evalVariableStatement(n, sc)
	case *ast.FunctionStatement:
		return e.evalFunctionStatement(n, sc)
	default:
		return nil, errs.Runtimef("cannot evaluate node of type %T", node)
	}
}

// evalSequence evaluates nodes in order against sc and returns the value
// of the last node that was an expression; statements update nothing, so
// a trailing statement leaves the previous expression's value standing
// (or value.Unit if no expression has run yet).
func (e *Evaluator) evalSequence(nodes []ast.Node, sc *scope.Scope) (value.Data, error) {
	result := value.Unit
	for _, n := range nodes {
		v, err := e.Eval(n, sc)
		if err != nil {
			return nil, err
		}
		if _, isExpr := n.(ast.Expression); isExpr {
			result = v
		}
	}
	return result, nil
}

// evalBlock creates a fresh child scope, evaluates its nodes, and releases
// the child scope on every exit path, error or not.
func (e *Evaluator) evalBlock(n *ast.Block, sc *scope.Scope) (value.Data, error) {
	child := scope.New(sc)
	defer child.Release()
	return e.evalSequence(n.Nodes, child)
}

// evalProgram evaluates the root of a source file directly in sc with no
// child scope of its own, still releasing sc's slots at program end.
func (e *Evaluator) evalProgram(n *ast.Program, sc *scope.Scope) (value.Data, error) {
	defer sc.Release()
	return e.evalSequence(n.Nodes, sc)
}
