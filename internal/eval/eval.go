// Package eval evaluates SassScript expressions. An Evaluator owns no
// global state: the builtin registry and any user functions are injected.
package eval

import (
	"strings"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/builtin"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

// Function is a user-defined function.
type Function func(a *args.CallArgs) (value.Value, error)

// FunctionResolver supplies functions defined outside the builtin library.
type FunctionResolver interface {
	LookupFunction(name string) (Function, bool)
}

// Functions is a FunctionResolver over a fixed set of functions.
type Functions map[string]Function

// LookupFunction implements FunctionResolver.
func (f Functions) LookupFunction(name string) (Function, bool) {
	fn, ok := f[name]
	return fn, ok
}

// Evaluator evaluates expressions against a builtin registry.
type Evaluator struct {
	registry *builtin.Registry
	resolver FunctionResolver
	printer  value.Printer
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithResolver makes user-defined functions callable.
func WithResolver(r FunctionResolver) Option {
	return func(e *Evaluator) { e.resolver = r }
}

// WithPrecision sets the number of fractional digits numbers render with.
func WithPrecision(digits int) Option {
	return func(e *Evaluator) { e.printer.Precision = digits }
}

// New creates an evaluator over reg.
func New(reg *builtin.Registry, opts ...Option) *Evaluator {
	e := &Evaluator{registry: reg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Printer returns the printer values should be rendered with.
func (e *Evaluator) Printer() value.Printer {
	return e.printer
}

// context tracks where in an expression evaluation is.
type context struct {
	// inParens is set directly inside parentheses
	inParens bool
	// inCSSMath is set inside the arguments of a plain-CSS function
	inCSSMath bool
}

// Eval evaluates x to a value.
func (e *Evaluator) Eval(x Expr) (value.Value, error) {
	return e.eval(x, context{})
}

func (e *Evaluator) eval(x Expr, ctx context) (value.Value, error) {
	switch x := x.(type) {
	case *Literal:
		return x.Value, nil
	case *SpecialCall:
		return value.Special{Name: x.Name, Raw: x.Raw}, nil
	case *Paren:
		return e.eval(x.Inner, context{inParens: true, inCSSMath: ctx.inCSSMath})
	case *ListExpr:
		return e.evalList(x, ctx)
	case *Unary:
		return e.evalUnary(x, ctx)
	case *Binary:
		return e.evalBinary(x, ctx)
	case *Call:
		return e.evalCall(x, ctx)
	}
	return nil, sasserr.Invalidf("Unsupported expression %T.", x)
}

func (e *Evaluator) evalList(x *ListExpr, ctx context) (value.Value, error) {
	elems := make([]value.Value, 0, len(x.Elems))
	for _, el := range x.Elems {
		v, err := e.eval(el, context{inCSSMath: ctx.inCSSMath})
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return value.List{Elems: elems, Sep: x.Sep, Brackets: x.Brackets}, nil
}

func (e *Evaluator) evalUnary(x *Unary, ctx context) (value.Value, error) {
	v, err := e.eval(x.Operand, ctx)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case Sub:
		return value.Negate(v, x.Loc)
	case Add:
		if n, ok := v.(value.Number); ok {
			return n, nil
		}
		s, err := e.printer.ToCSS(v, x.Loc)
		if err != nil {
			return nil, err
		}
		return value.UnquotedString("+" + s), nil
	case Not:
		return value.FromBool(!value.Truthy(v)), nil
	}
	return nil, sasserr.WithSpan(sasserr.Invalidf("Undefined unary operator %q.", x.Op.String()), x.Loc)
}

func (e *Evaluator) evalBinary(x *Binary, ctx context) (value.Value, error) {
	operand := context{inCSSMath: ctx.inCSSMath}
	left, err := e.eval(x.Left, operand)
	if err != nil {
		return nil, err
	}

	// and/or short-circuit and yield an operand, not a boolean
	switch x.Op {
	case And:
		if !value.Truthy(left) {
			return left, nil
		}
		return e.eval(x.Right, operand)
	case Or:
		if value.Truthy(left) {
			return left, nil
		}
		return e.eval(x.Right, operand)
	}

	right, err := e.eval(x.Right, operand)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case Add:
		return value.Add(left, right, x.Loc)
	case Sub:
		return value.Sub(left, right, x.Loc)
	case Mul:
		return value.Mul(left, right, x.Loc)
	case Mod:
		return value.Mod(left, right, x.Loc)
	case Div:
		if !ctx.inParens && isSlashSeparated(x) {
			return e.slash(left, right, x.Loc)
		}
		if ctx.inCSSMath {
			return value.DivCSSMath(left, right, x.Loc)
		}
		return value.Div(left, right, x.Loc)
	case Eq:
		return value.FromBool(value.Equal(left, right)), nil
	case Neq:
		return value.FromBool(!value.Equal(left, right)), nil
	case Lt, Lte, Gt, Gte:
		return compare(x, left, right)
	}
	return nil, sasserr.WithSpan(sasserr.Invalidf("Undefined operator %q.", x.Op.String()), x.Loc)
}

// isSlashSeparated reports whether a / between two number literals is the
// CSS separator of font: 12px/1.5 rather than division.
func isSlashSeparated(x *Binary) bool {
	return isNumberLiteral(x.Left) && isNumberLiteral(x.Right)
}

func isNumberLiteral(x Expr) bool {
	switch x := x.(type) {
	case *Literal:
		_, ok := x.Value.(value.Number)
		return ok
	case *Binary:
		return x.Op == Div && isSlashSeparated(x)
	}
	return false
}

func (e *Evaluator) slash(left, right value.Value, span position.Span) (value.Value, error) {
	l, err := e.printer.ToCSS(left, span)
	if err != nil {
		return nil, err
	}
	r, err := e.printer.ToCSS(right, span)
	if err != nil {
		return nil, err
	}
	return value.UnquotedString(l + "/" + r), nil
}

func compare(x *Binary, left, right value.Value) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, sasserr.WithSpan(sasserr.UndefinedOperation(
			value.Inspect(left), x.Op.String(), value.Inspect(right)), x.Loc)
	}
	c, err := value.Compare(ln, rn, x.Loc)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case Lt:
		return value.FromBool(c < 0), nil
	case Lte:
		return value.FromBool(c <= 0), nil
	case Gt:
		return value.FromBool(c > 0), nil
	}
	return value.FromBool(c >= 0), nil
}

// evalCall binds the call's argument expressions as thunks, so a builtin
// evaluates only the arguments it uses.
func (e *Evaluator) evalCall(x *Call, ctx context) (value.Value, error) {
	argCtx := context{inCSSMath: ctx.inCSSMath}
	if !e.isDefined(x.Name) {
		argCtx.inCSSMath = true
	}

	a := args.New(x.Loc)
	for _, arg := range x.Args {
		a.Add(e.thunk(arg, argCtx))
	}
	for _, n := range x.Named {
		a.AddNamed(n.Name, e.thunk(n.Value, argCtx))
	}
	return e.CallFunction(x.Name, a)
}

func (e *Evaluator) thunk(x Expr, ctx context) args.Thunk {
	return func() (value.Value, error) {
		return e.eval(x, ctx)
	}
}

func (e *Evaluator) isDefined(name string) bool {
	return (e.registry != nil && e.registry.Has(name)) || e.FunctionExists(name)
}

// CallFunction dispatches a call: builtins first, then user functions,
// and otherwise the call is emitted as plain CSS.
func (e *Evaluator) CallFunction(name string, a *args.CallArgs) (value.Value, error) {
	if e.registry != nil {
		if f, ok := e.registry.Lookup(name); ok {
			log.Debug("Calling builtin %s (%d args) at %s", name, a.Len(), a.Span())
			v, err := f(a, e.context())
			if err != nil {
				return nil, err
			}
			if err := a.CheckUnused(); err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	if e.resolver != nil {
		if f, ok := e.resolver.LookupFunction(name); ok {
			log.Debug("Calling user function %s at %s", name, a.Span())
			return f(a)
		}
	}
	return e.plainCSS(name, a)
}

// FunctionExists reports whether name is a user-defined function.
func (e *Evaluator) FunctionExists(name string) bool {
	if e.resolver == nil {
		return false
	}
	_, ok := e.resolver.LookupFunction(name)
	return ok
}

func (e *Evaluator) context() *builtin.Context {
	ctx := builtin.NewContext(e.registry)
	ctx.Printer = e.printer
	ctx.Caller = e
	return ctx
}

// plainCSS renders a call to a function Sass does not know, such as
// translate(10px, 20px), as text.
func (e *Evaluator) plainCSS(name string, a *args.CallArgs) (value.Value, error) {
	rest, err := a.Rest()
	if err != nil {
		return nil, err
	}
	if rest.Keywords.Len() > 0 {
		return nil, sasserr.WithSpan(
			sasserr.Invalidf("Plain CSS functions don't support keyword arguments."), a.Span())
	}
	parts := make([]string, len(rest.Elems))
	for i, v := range rest.Elems {
		s, err := e.printer.ToCSS(v, a.Span())
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	log.Debug("Emitting %s() as plain CSS", name)
	return value.UnquotedString(name + "(" + strings.Join(parts, ", ") + ")"), nil
}

var _ builtin.Caller = (*Evaluator)(nil)
