/*
File    : mova/value/data.go
Package : value

Package value defines Data, the runtime value model Mova's evaluator
produces and consumes. It holds the two primitives (Number, Boolean) and
the Moved sentinel; Function and Reference live in package scope because
they are defined in terms of a Slot or a Scope, and Slot's natural home is
beside the Scope that owns it (see scope.Slot, scope.Function,
scope.Reference).
*/
package value

import "fmt"

// DataType names a Data variant for diagnostics and type-mismatch errors.
type DataType string

const (
	NumberType    DataType = "number"
	BooleanType   DataType = "boolean"
	FunctionType  DataType = "function"
	ReferenceType DataType = "reference"
	MovedType     DataType = "moved"
)

// Data is any runtime value Mova's evaluator produces. Number, Boolean and
// scope.Function are copyable (Copyable reports true) and are duplicated
// when resolved from a scope; scope.Reference is affine and is consumed
// when resolved.
type Data interface {
	Type() DataType
	String() string
	Copyable() bool
}

// Number is a 32-bit signed integer value.
type Number struct {
	Value int32
}

func (Number) Type() DataType { return NumberType }
func (n Number) String() string { return fmt.Sprintf("%d", n.Value) }
func (Number) Copyable() bool { return true }

// Boolean is a true/false value. The "unit" value an empty block yields
// is represented as Boolean(false); see Unit.
type Boolean struct {
	Value bool
}

func (Boolean) Type() DataType { return BooleanType }
func (b Boolean) String() string { return fmt.Sprintf("%t", b.Value) }
func (Boolean) Copyable() bool { return true }

// Unit is the well-defined value an empty block evaluates to.
var Unit Data = Boolean{Value: false}

// Moved is the sentinel left behind in a slot whose affine value has
// already been read. Any further resolve or borrow against it fails.
type Moved struct{}

func (Moved) Type() DataType { return MovedType }
func (Moved) String() string { return "<moved>" }
func (Moved) Copyable() bool { return false }
