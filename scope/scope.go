/*
File    : mova/scope/scope.go
Package : scope

Package scope implements Mova's lexical environment and the affine
move/borrow bookkeeping the interpreter's runtime enforces. A Slot pairs
a value with its borrow metadata, and a Scope is a parent-linked map of
names to slots; every binding is read through the Resolve/Borrow pair so
the move and borrow rules cannot be bypassed.
*/
package scope

import (
	"github.com/upyrov/mova/ast"
	"github.com/upyrov/mova/errs"
	"github.com/upyrov/mova/value"
)

// Slot is the per-binding container: a value plus the borrow metadata the
// evaluator consults before letting it be read again.
type Slot struct {
	Value             value.Data
	BorrowCount       int
	IsMutablyBorrowed bool
}

// Scope is a lexically nested environment. Scopes form a singly-linked
// tree rooted at a global scope; each call and each block creates a
// fresh child.
type Scope struct {
	Parent *Scope
	Locals map[string]*Slot
}

// New creates a scope with the given parent (nil for the root scope).
func New(parent *Scope) *Scope {
	return &Scope{Parent: parent, Locals: make(map[string]*Slot)}
}

// Declare stores a new slot for name in this scope's locals only, never
// walking the parent chain. Re-declaring a name already present in this
// scope silently replaces the old slot, releasing its references first.
func (s *Scope) Declare(name string, v value.Data) {
	if old, ok := s.Locals[name]; ok {
		releaseSlot(old)
	}
	s.Locals[name] = &Slot{Value: v}
}

// FindSlot walks locals-then-parents looking for name.
func (s *Scope) FindSlot(name string) (*Slot, error) {
	for sc := s; sc != nil; sc = sc.Parent {
		if slot, ok := sc.Locals[name]; ok {
			return slot, nil
		}
	}
	return nil, errs.Runtimef("Unable to resolve %s", name)
}

// Resolve reads name: a mutably-borrowed or moved slot fails; a copyable
// value is duplicated in place; an affine value is moved out, leaving
// Moved behind, unless it has outstanding borrows.
func (s *Scope) Resolve(name string) (value.Data, error) {
	slot, err := s.FindSlot(name)
	if err != nil {
		return nil, err
	}
	if slot.IsMutablyBorrowed {
		return nil, errs.Runtimef("%s is mutably borrowed", name)
	}
	if slot.Value.Type() == value.MovedType {
		return nil, errs.Runtimef("%s is moved", name)
	}
	if slot.Value.Copyable() {
		return slot.Value, nil
	}
	if slot.BorrowCount > 0 {
		return nil, errs.Runtimef("%s is borrowed", name)
	}
	v := slot.Value
	slot.Value = value.Moved{}
	return v, nil
}

// Borrow produces a Reference to name's slot without consuming it,
// incrementing the slot's borrow_count.
func (s *Scope) Borrow(name string) (*Reference, error) {
	slot, err := s.FindSlot(name)
	if err != nil {
		return nil, err
	}
	if slot.Value.Type() == value.MovedType {
		return nil, errs.Runtimef("%s is moved", name)
	}
	if slot.IsMutablyBorrowed {
		return nil, errs.Runtimef("%s is mutably borrowed", name)
	}
	slot.BorrowCount++
	return &Reference{Source: slot}, nil
}

// releaseSlot drops any reference a slot currently holds. Go has no
// destructors, so callers that discard a slot (Declare's overwrite case,
// or a scope going out of evaluation) must call this explicitly.
func releaseSlot(slot *Slot) {
	if ref, ok := slot.Value.(*Reference); ok {
		ref.Release()
	}
}

// Release walks every local slot in s and releases any reference it
// holds. The evaluator runs this whenever a scope's evaluation ends,
// including when it ends via a propagated error, so borrows never
// outlive the scope that took them.
func (s *Scope) Release() {
	for _, slot := range s.Locals {
		releaseSlot(slot)
	}
}

// Reference is a handle to another scope's slot. Releasing it decrements
// the target slot's borrow count, saturating at zero.
type Reference struct {
	Source   *Slot
	released bool
}

func (*Reference) Type() value.DataType { return value.ReferenceType }
func (*Reference) String() string { return "<reference>" }
func (*Reference) Copyable() bool { return false }

// Release decrements the source slot's borrow_count. It is idempotent so
// that a reference threaded through multiple release points (e.g. both an
// explicit drop and a scope-exit sweep) is never double-released.
func (r *Reference) Release() {
	if r.released {
		return
	}
	r.released = true
	if r.Source.BorrowCount > 0 {
		r.Source.BorrowCount--
	}
}

// Function is a user-defined function value: its parameter names, its
// body expression, and the scope it closes over. DefinitionScope is
// always a fresh child of the scope in effect where `fn` was declared,
// never that scope itself. Nothing is declared into that layer: the body
// resolves names through the parent chain, and resolving an affine binding
// that lives in an enclosing scope moves it out of that scope's own slot.
type Function struct {
	Name            string
	Parameters      []string
	Body            ast.Expression
	DefinitionScope *Scope
}

func (*Function) Type() value.DataType { return value.FunctionType }
func (f *Function) String() string { return "fn " + f.Name }

// Copyable reports true: functions are cheap handle-clones, so repeated
// and recursive calls need no special-casing at the call site.
func (*Function) Copyable() bool { return true }
