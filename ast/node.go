/*
File    : mova/ast/node.go
Package : ast

Package ast defines the syntax tree the parser builds and the evaluator
walks. Mova's grammar is small enough that a plain interface plus type
switch is clearer than a visitor: there are eight expression kinds and two
statement kinds, not the dozens a general-purpose scripting language needs.
*/
package ast

// Pos is the source position a node was parsed from, used to build
// diagnostics that point back at the offending syntax.
type Pos struct {
	Line   int
	Column int
}

// Node is either an Expression or a Statement, modeled as a marker
// interface rather than a tagged union.
type Node interface {
	At() Pos
}

// Expression is a Node that, once evaluated, produces a Data value.
type Expression interface {
	Node
	expression()
}

// Statement is a Node that is evaluated for effect only; it never yields a
// value to its enclosing expression context.
type Statement interface {
	Node
	statement()
}

// NumberLiteral is an integer literal, e.g. 42.
type NumberLiteral struct {
	Pos   Pos
	Value int32
}

func (n *NumberLiteral) At() Pos { return n.Pos }
func (*NumberLiteral) expression() {}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Pos   Pos
	Value bool
}

func (n *BooleanLiteral) At() Pos { return n.Pos }
func (*BooleanLiteral) expression() {}

// Identifier is a bare name reference; evaluating it resolves (and may
// move) the named binding.
type Identifier struct {
	Pos  Pos
	Name string
}

func (n *Identifier) At() Pos { return n.Pos }
func (*Identifier) expression() {}

// Reference is `name&`; evaluating it borrows the named binding instead of
// resolving it.
type Reference struct {
	Pos  Pos
	Name string
}

func (n *Reference) At() Pos { return n.Pos }
func (*Reference) expression() {}

// BinaryOp enumerates the operators the grammar admits in a BinaryExpression.
type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
)

// BinaryExpression is `left op right`.
type BinaryExpression struct {
	Pos   Pos
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (n *BinaryExpression) At() Pos { return n.Pos }
func (*BinaryExpression) expression() {}

// Call is `name(arguments...)`.
type Call struct {
	Pos       Pos
	Name      string
	Arguments []Expression
}

func (n *Call) At() Pos { return n.Pos }
func (*Call) expression() {}

// Block is `{ statements... }`; its value is that of the last Expression
// node in Nodes, or Unit if it contains none.
type Block struct {
	Pos   Pos
	Nodes []Node
}

func (n *Block) At() Pos { return n.Pos }
func (*Block) expression() {}

// Program is the root of a parsed source file: a sequence of nodes
// evaluated directly in the root scope, with no child scope of its own.
type Program struct {
	Pos   Pos
	Nodes []Node
}

func (n *Program) At() Pos { return n.Pos }
func (*Program) expression() {}

// VariableStatement is `let name = value`.
type VariableStatement struct {
	Pos   Pos
	Name  string
	Value Expression
}

func (n *VariableStatement) At() Pos { return n.Pos }
func (*VariableStatement) statement() {}

// FunctionStatement is `fn name(parameters...) = body`.
type FunctionStatement struct {
	Pos        Pos
	Name       string
	Parameters []string
	Body       Expression
}

func (n *FunctionStatement) At() Pos { return n.Pos }
func (*FunctionStatement) statement() {}
