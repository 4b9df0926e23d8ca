package builtin

import (
	"strings"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/numeric"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

var noSpan position.Span

func fail(a *args.CallArgs, err error) error {
	return sasserr.WithSpan(err, a.Span())
}

// render echoes a value back to the user in an error message. Values with
// no CSS form fall back to their inspect() form.
func (ctx *Context) render(v value.Value) string {
	if s, err := ctx.Printer.ToCSS(v, noSpan); err == nil {
		return s
	}
	return ctx.Printer.Inspect(v)
}

func (ctx *Context) notA(a *args.CallArgs, param string, v value.Value, kind string) error {
	return fail(a, sasserr.NotA(param, ctx.render(v), kind))
}

// plainCSS renders a call that Sass leaves to the browser, such as
// saturate(50%) or hsl(var(--h), 50%, 50%).
func (ctx *Context) plainCSS(a *args.CallArgs, name string, vals ...value.Value) (value.Value, error) {
	parts := make([]string, len(vals))
	for i, v := range vals {
		s, err := ctx.Printer.ToCSS(v, a.Span())
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return value.UnquotedString(name + "(" + strings.Join(parts, ", ") + ")"), nil
}

// passthrough completes a call that hit a special function part way
// through binding: the channels bound so far, then the rest of the
// required parameters, then the optional one if it was supplied.
func (ctx *Context) passthrough(a *args.CallArgs, name string, bound []value.Value, required []string, optional string) (value.Value, error) {
	vals := bound
	for i, p := range required {
		v, err := a.Arg(len(bound)+i, p)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if optional != "" && !a.IsEmpty() {
		v, err := a.Arg(len(vals), optional)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return ctx.plainCSS(a, name, vals...)
}

func (ctx *Context) colorArg(a *args.CallArgs, pos int, name string) (*color.Color, error) {
	v, err := a.Arg(pos, name)
	if err != nil {
		return nil, err
	}
	c, ok := v.(value.Color)
	if !ok {
		return nil, ctx.notA(a, name, v, "color")
	}
	return c.Color, nil
}

func (ctx *Context) numberArg(a *args.CallArgs, pos int, name string) (value.Number, error) {
	v, err := a.Arg(pos, name)
	if err != nil {
		return value.Number{}, err
	}
	return ctx.asNumber(a, name, v)
}

func (ctx *Context) asNumber(a *args.CallArgs, name string, v value.Value) (value.Number, error) {
	n, ok := v.(value.Number)
	if !ok {
		return value.Number{}, ctx.notA(a, name, v, "number")
	}
	return n, nil
}

func (ctx *Context) stringArg(a *args.CallArgs, pos int, name string) (value.String, error) {
	v, err := a.Arg(pos, name)
	if err != nil {
		return value.String{}, err
	}
	switch s := v.(type) {
	case value.String:
		return s, nil
	case value.Special:
		return value.UnquotedString(s.Raw), nil
	}
	return value.String{}, ctx.notA(a, name, v, "string")
}

// intArg binds a unitless integer.
func (ctx *Context) intArg(a *args.CallArgs, pos int, name string) (int, error) {
	n, err := ctx.numberArg(a, pos, name)
	if err != nil {
		return 0, err
	}
	return ctx.asInt(a, name, n)
}

func (ctx *Context) asInt(a *args.CallArgs, name string, n value.Number) (int, error) {
	i, ok := numeric.AsInt(n.Num)
	if !ok {
		return 0, ctx.notA(a, name, n, "int")
	}
	return i, nil
}

// bounded checks that n lies in [lo, hi], in n's own unit, and returns its
// magnitude. The error names the parameter, the value and both bounds.
func (ctx *Context) bounded(a *args.CallArgs, name string, n value.Number, lo, hi float64) (float64, error) {
	if numeric.InRange(n.Num, lo, hi) {
		return n.Num, nil
	}
	unit := n.Unit.String()
	return 0, fail(a, sasserr.OutOfRange(name,
		ctx.Printer.FormatNumber(n),
		numeric.Format(lo, numeric.Precision)+unit,
		numeric.Format(hi, numeric.Precision)+unit))
}

// percentArg binds a number in [0, 100] and returns it as a fraction.
func (ctx *Context) percentArg(a *args.CallArgs, pos int, name string) (float64, error) {
	n, err := ctx.numberArg(a, pos, name)
	if err != nil {
		return 0, err
	}
	f, err := ctx.bounded(a, name, n, 0, 100)
	return f / 100, err
}

// mapArg binds a map; an empty list counts as an empty map.
func (ctx *Context) mapArg(a *args.CallArgs, pos int, name string) (*value.Map, error) {
	v, err := a.Arg(pos, name)
	if err != nil {
		return nil, err
	}
	switch m := v.(type) {
	case *value.Map:
		return m, nil
	case value.List:
		if len(m.Elems) == 0 {
			return value.NewMap(), nil
		}
	case value.ArgList:
		if len(m.Elems) == 0 {
			return m.Keywords.Clone(), nil
		}
	}
	return nil, ctx.notA(a, name, v, "map")
}

func colorValue(c *color.Color) value.Value {
	return value.NewColor(c)
}
