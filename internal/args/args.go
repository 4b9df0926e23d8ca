// Package args binds the arguments of a Sass function call to a builtin's
// parameters. Arguments are positional-first with keyword fallback; each
// argument can be bound once, and lazy arguments are evaluated when bound.
package args

import (
	"strings"

	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

// Thunk produces an argument value on demand.
type Thunk func() (value.Value, error)

type slot struct {
	thunk Thunk
	used  bool
}

type named struct {
	name string
	slot
}

// CallArgs is the argument list of one call site.
type CallArgs struct {
	positional []slot
	named      []named
	span       position.Span
}

// New returns an empty argument list for the call at span.
func New(span position.Span) *CallArgs {
	return &CallArgs{span: span}
}

// Of returns an argument list of already-evaluated positional values.
func Of(span position.Span, values ...value.Value) *CallArgs {
	a := New(span)
	for _, v := range values {
		a.AddValue(v)
	}
	return a
}

// Add appends a lazy positional argument.
func (a *CallArgs) Add(t Thunk) *CallArgs {
	a.positional = append(a.positional, slot{thunk: t})
	return a
}

// AddValue appends an evaluated positional argument.
func (a *CallArgs) AddValue(v value.Value) *CallArgs {
	return a.Add(constant(v))
}

// AddNamed adds a lazy keyword argument. Underscores and hyphens are
// interchangeable in names, as in Sass identifiers.
func (a *CallArgs) AddNamed(name string, t Thunk) *CallArgs {
	a.named = append(a.named, named{name: normalize(name), slot: slot{thunk: t}})
	return a
}

// AddNamedValue adds an evaluated keyword argument.
func (a *CallArgs) AddNamedValue(name string, v value.Value) *CallArgs {
	return a.AddNamed(name, constant(v))
}

func constant(v value.Value) Thunk {
	return func() (value.Value, error) { return v, nil }
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.TrimPrefix(name, "$"), "_", "-")
}

// Span returns the location of the call.
func (a *CallArgs) Span() position.Span {
	return a.span
}

// Len returns the number of arguments not yet bound.
func (a *CallArgs) Len() int {
	n := 0
	for _, s := range a.positional {
		if !s.used {
			n++
		}
	}
	for _, s := range a.named {
		if !s.used {
			n++
		}
	}
	return n
}

// IsEmpty reports whether every argument has been bound.
func (a *CallArgs) IsEmpty() bool {
	return a.Len() == 0
}

// MaxArgs fails when more than max arguments remain.
func (a *CallArgs) MaxArgs(max int) error {
	if n := a.Len(); n > max {
		return a.fail(sasserr.TooManyArguments(max, n))
	}
	return nil
}

// Arg binds the parameter at position, falling back to the keyword
// argument called name.
func (a *CallArgs) Arg(pos int, name string) (value.Value, error) {
	t, ok := a.take(pos, name)
	if !ok {
		return nil, a.fail(sasserr.MissingArgument(name))
	}
	return t()
}

// DefaultArg is Arg with def substituted for a missing argument.
func (a *CallArgs) DefaultArg(pos int, name string, def value.Value) (value.Value, error) {
	t, ok := a.take(pos, name)
	if !ok {
		return def, nil
	}
	return t()
}

// Skip binds a parameter without evaluating it, for arguments a builtin
// decides it does not need.
func (a *CallArgs) Skip(pos int, name string) {
	a.take(pos, name)
}

// Has reports whether the parameter was supplied and is still unbound.
func (a *CallArgs) Has(pos int, name string) bool {
	if pos >= 0 && pos < len(a.positional) && !a.positional[pos].used {
		return true
	}
	return a.namedIndex(normalize(name)) >= 0
}

func (a *CallArgs) take(pos int, name string) (Thunk, bool) {
	if pos >= 0 && pos < len(a.positional) && !a.positional[pos].used {
		a.positional[pos].used = true
		return a.positional[pos].thunk, true
	}
	if i := a.namedIndex(normalize(name)); i >= 0 {
		a.named[i].used = true
		return a.named[i].thunk, true
	}
	return nil, false
}

func (a *CallArgs) namedIndex(name string) int {
	for i, n := range a.named {
		if !n.used && n.name == name {
			return i
		}
	}
	return -1
}

// Rest binds every remaining positional argument, in order, as an arglist.
// Remaining keyword arguments are bound too and become its keywords.
func (a *CallArgs) Rest() (value.ArgList, error) {
	list := value.ArgList{Sep: value.Comma}
	for i := range a.positional {
		if a.positional[i].used {
			continue
		}
		a.positional[i].used = true
		v, err := a.positional[i].thunk()
		if err != nil {
			return value.ArgList{}, err
		}
		list.Elems = append(list.Elems, v)
	}
	kw, err := a.Keywords()
	if err != nil {
		return value.ArgList{}, err
	}
	list.Keywords = kw
	return list, nil
}

// Keywords binds every remaining keyword argument into a map from the
// unquoted parameter name to its value.
func (a *CallArgs) Keywords() (*value.Map, error) {
	m := value.NewMap()
	for i := range a.named {
		if a.named[i].used {
			continue
		}
		a.named[i].used = true
		v, err := a.named[i].thunk()
		if err != nil {
			return nil, err
		}
		m.Insert(value.UnquotedString(a.named[i].name), v)
	}
	return m, nil
}

// CheckUnused reports a keyword argument that no parameter bound.
func (a *CallArgs) CheckUnused() error {
	for _, n := range a.named {
		if !n.used {
			return a.fail(sasserr.NoArgumentNamed(n.name))
		}
	}
	return nil
}

func (a *CallArgs) fail(err error) error {
	return sasserr.WithSpan(err, a.span)
}
