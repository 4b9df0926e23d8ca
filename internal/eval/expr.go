package eval

import (
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/value"
)

// Expr is a SassScript expression. The set of node types is closed.
type Expr interface {
	Span() position.Span
	expr()
}

// Literal is an already-evaluated value: a number, color, string or keyword.
type Literal struct {
	Value value.Value
	Loc   position.Span
}

// Call is a function call. Args are evaluated lazily, when the callee binds them.
type Call struct {
	Name  string
	Args  []Expr
	Named []NamedArg
	Loc   position.Span
}

// NamedArg is a keyword argument, $name: value.
type NamedArg struct {
	Name  string
	Value Expr
}

// Binary is an infix operation.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
	Loc   position.Span
}

// Unary is a prefix operation: -, + or not.
type Unary struct {
	Op      Op
	Operand Expr
	Loc     position.Span
}

// ListExpr is a list literal.
type ListExpr struct {
	Elems    []Expr
	Sep      value.ListSeparator
	Brackets value.Brackets
	Loc      position.Span
}

// Paren is a parenthesized expression. Slash between two numbers inside
// parentheses is division rather than a separator.
type Paren struct {
	Inner Expr
	Loc   position.Span
}

// SpecialCall is a plain-CSS function such as calc() or var() that is
// carried through verbatim.
type SpecialCall struct {
	Name string
	Raw  string
	Loc  position.Span
}

func (e *Literal) Span() position.Span     { return e.Loc }
func (e *Call) Span() position.Span        { return e.Loc }
func (e *Binary) Span() position.Span      { return e.Loc }
func (e *Unary) Span() position.Span       { return e.Loc }
func (e *ListExpr) Span() position.Span    { return e.Loc }
func (e *Paren) Span() position.Span       { return e.Loc }
func (e *SpecialCall) Span() position.Span { return e.Loc }

func (*Literal) expr()     {}
func (*Call) expr()        {}
func (*Binary) expr()      {}
func (*Unary) expr()       {}
func (*ListExpr) expr()    {}
func (*Paren) expr()       {}
func (*SpecialCall) expr() {}

// Walk calls fn for x and every expression nested in it, parents first.
// Returning false from fn skips the node's children.
func Walk(x Expr, fn func(Expr) bool) {
	if x == nil || !fn(x) {
		return
	}
	switch x := x.(type) {
	case *Call:
		for _, a := range x.Args {
			Walk(a, fn)
		}
		for _, n := range x.Named {
			Walk(n.Value, fn)
		}
	case *Binary:
		Walk(x.Left, fn)
		Walk(x.Right, fn)
	case *Unary:
		Walk(x.Operand, fn)
	case *ListExpr:
		for _, e := range x.Elems {
			Walk(e, fn)
		}
	case *Paren:
		Walk(x.Inner, fn)
	}
}
