package builtin

import (
	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/collections"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

func declareMeta(r *Registry) {
	r.declare("if", ifFunc)
	r.declare("type-of", typeOf)
	r.declare("inspect", inspect)
	r.declare("feature-exists", featureExists)
	r.declare("function-exists", functionExists)
	r.declare("get-function", getFunction)
	r.declare("call", call)
	r.declare("keywords", keywords)
}

var features = collections.NewSet(
	"global-variable-shadowing",
	"extend-selector-pseudoclass",
	"units-level-3",
	"at-error",
	"custom-property",
)

// ifFunc evaluates only the branch it returns.
func ifFunc(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(3); err != nil {
		return nil, err
	}
	cond, err := a.Arg(0, "condition")
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		v, err := a.Arg(1, "if-true")
		a.Skip(2, "if-false")
		return v, err
	}
	a.Skip(1, "if-true")
	return a.Arg(2, "if-false")
}

func typeOf(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "value")
	if err != nil {
		return nil, err
	}
	return value.UnquotedString(value.TypeName(v)), nil
}

func inspect(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "value")
	if err != nil {
		return nil, err
	}
	return value.UnquotedString(ctx.Printer.Inspect(v)), nil
}

func featureExists(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "feature")
	if err != nil {
		return nil, err
	}
	return value.FromBool(features.Has(s.Text)), nil
}

func (ctx *Context) functionExists(name string) bool {
	if ctx.Registry != nil && ctx.Registry.Has(name) {
		return true
	}
	return ctx.Caller != nil && ctx.Caller.FunctionExists(name)
}

func functionExists(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "name")
	if err != nil {
		return nil, err
	}
	return value.FromBool(ctx.functionExists(s.Text)), nil
}

// getFunction returns a reference to a builtin or user function. With
// $css: true an unknown name refers to a plain-CSS function.
func getFunction(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "name")
	if err != nil {
		return nil, err
	}
	css, err := a.DefaultArg(1, "css", value.False)
	if err != nil {
		return nil, err
	}
	switch {
	case ctx.Registry != nil && ctx.Registry.Has(s.Text):
		return value.Function{Name: s.Text, Builtin: true}, nil
	case ctx.functionExists(s.Text), value.Truthy(css):
		return value.Function{Name: s.Text}, nil
	}
	return nil, fail(a, sasserr.Invalidf("Function not found: %s", s.Text))
}

// call invokes $function with the remaining arguments, keywords included.
func call(a *args.CallArgs, ctx *Context) (value.Value, error) {
	fn, err := a.Arg(0, "function")
	if err != nil {
		return nil, err
	}
	var name string
	switch f := fn.(type) {
	case value.Function:
		name = f.Name
	case value.String:
		name = f.Text
	default:
		return nil, ctx.notA(a, "function", fn, "function reference")
	}

	rest, err := a.Rest()
	if err != nil {
		return nil, err
	}
	forwarded := args.Of(a.Span(), rest.Elems...)
	for k, v := range rest.Keywords.All() {
		if s, ok := k.(value.String); ok {
			forwarded.AddNamedValue(s.Text, v)
		}
	}

	if ctx.Caller != nil {
		return ctx.Caller.CallFunction(name, forwarded)
	}
	f, ok := ctx.Registry.Lookup(name)
	if !ok {
		return nil, fail(a, sasserr.UndefinedFunction(name))
	}
	return f(forwarded, ctx)
}

// keywords returns the keyword arguments captured by an arglist.
func keywords(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "args")
	if err != nil {
		return nil, err
	}
	l, ok := v.(value.ArgList)
	if !ok {
		return nil, ctx.notA(a, "args", v, "argument list")
	}
	return l.Keywords.Clone(), nil
}
