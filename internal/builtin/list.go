package builtin

import (
	"fmt"
	"slices"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

func declareList(r *Registry) {
	r.declare("length", length)
	r.declare("nth", nth)
	r.declare("set-nth", setNth)
	r.declare("join", join)
	r.declare("append", appendFunc)
	r.declare("zip", zip)
	r.declare("index", index)
	r.declare("list-separator", listSeparator)
	r.declare("is-bracketed", isBracketed)
}

// listOf returns v's elements, separator and brackets as list functions see them.
func listOf(v value.Value) ([]value.Value, value.ListSeparator, value.Brackets) {
	brackets := value.NoBrackets
	if l, ok := v.(value.List); ok {
		brackets = l.Brackets
	}
	return value.Elements(v), value.Separator(v), brackets
}

func length(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "list")
	if err != nil {
		return nil, err
	}
	return value.Unitless(float64(len(value.Elements(v)))), nil
}

// listIndex resolves a one-based, possibly negative, Sass index.
func (ctx *Context) listIndex(a *args.CallArgs, n value.Number, size int) (int, error) {
	i, err := ctx.asInt(a, "n", n)
	if err != nil {
		return 0, err
	}
	if i == 0 {
		return 0, fail(a, sasserr.TypeDetail("n", "List index may not be 0."))
	}
	if i > size || -i > size {
		return 0, fail(a, sasserr.TypeDetail("n",
			fmt.Sprintf("Invalid index %d for a list with %d %s.", i, size, pluralize(size, "element"))))
	}
	if i < 0 {
		return size + i, nil
	}
	return i - 1, nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func nth(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "list")
	if err != nil {
		return nil, err
	}
	n, err := ctx.numberArg(a, 1, "n")
	if err != nil {
		return nil, err
	}
	elems := value.Elements(v)
	i, err := ctx.listIndex(a, n, len(elems))
	if err != nil {
		return nil, err
	}
	return elems[i], nil
}

func setNth(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(3); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "list")
	if err != nil {
		return nil, err
	}
	n, err := ctx.numberArg(a, 1, "n")
	if err != nil {
		return nil, err
	}
	replacement, err := a.Arg(2, "value")
	if err != nil {
		return nil, err
	}
	elems, sep, brackets := listOf(v)
	i, err := ctx.listIndex(a, n, len(elems))
	if err != nil {
		return nil, err
	}
	out := slices.Clone(elems)
	out[i] = replacement
	return value.List{Elems: out, Sep: sep, Brackets: brackets}, nil
}

// separatorArg binds $separator: "auto" yields ok=false.
func (ctx *Context) separatorArg(a *args.CallArgs, pos int) (value.ListSeparator, bool, error) {
	v, err := a.DefaultArg(pos, "separator", value.UnquotedString("auto"))
	if err != nil {
		return 0, false, err
	}
	s, ok := v.(value.String)
	if !ok {
		return 0, false, ctx.notA(a, "separator", v, "string")
	}
	switch s.Text {
	case "auto":
		return 0, false, nil
	case "space":
		return value.Space, true, nil
	case "comma":
		return value.Comma, true, nil
	case "slash":
		return value.Slash, true, nil
	}
	return 0, false, fail(a, sasserr.TypeDetail("separator", `Must be "space", "comma", "slash", or "auto".`))
}

// declaredSeparator is a value's separator when it has one of its own.
func declaredSeparator(v value.Value) (value.ListSeparator, bool) {
	switch l := v.(type) {
	case value.List:
		if l.Sep != value.Undecided && len(l.Elems) > 0 {
			return l.Sep, true
		}
	case value.ArgList:
		return l.Sep, true
	case *value.Map:
		if l.Len() > 0 {
			return value.Comma, true
		}
	}
	return 0, false
}

func join(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(4); err != nil {
		return nil, err
	}
	l1, err := a.Arg(0, "list1")
	if err != nil {
		return nil, err
	}
	l2, err := a.Arg(1, "list2")
	if err != nil {
		return nil, err
	}
	sep, explicit, err := ctx.separatorArg(a, 2)
	if err != nil {
		return nil, err
	}
	if !explicit {
		var ok bool
		if sep, ok = declaredSeparator(l1); !ok {
			if sep, ok = declaredSeparator(l2); !ok {
				sep = value.Space
			}
		}
	}
	e1, _, brackets := listOf(l1)
	e2 := value.Elements(l2)

	b, err := a.DefaultArg(3, "bracketed", value.UnquotedString("auto"))
	if err != nil {
		return nil, err
	}
	if s, ok := b.(value.String); !ok || s.Text != "auto" {
		brackets = value.NoBrackets
		if value.Truthy(b) {
			brackets = value.Bracketed
		}
	}
	return value.List{Elems: slices.Concat(e1, e2), Sep: sep, Brackets: brackets}, nil
}

func appendFunc(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(3); err != nil {
		return nil, err
	}
	l, err := a.Arg(0, "list")
	if err != nil {
		return nil, err
	}
	v, err := a.Arg(1, "val")
	if err != nil {
		return nil, err
	}
	sep, explicit, err := ctx.separatorArg(a, 2)
	if err != nil {
		return nil, err
	}
	elems, own, brackets := listOf(l)
	if !explicit {
		sep = own
	}
	out := append(slices.Clone(elems), v)
	return value.List{Elems: out, Sep: sep, Brackets: brackets}, nil
}

// zip combines the lists element-wise into a comma list of space lists,
// stopping at the shortest.
func zip(a *args.CallArgs, ctx *Context) (value.Value, error) {
	rest, err := a.Rest()
	if err != nil {
		return nil, err
	}
	lists := make([][]value.Value, len(rest.Elems))
	shortest := -1
	for i, l := range rest.Elems {
		lists[i] = value.Elements(l)
		if shortest < 0 || len(lists[i]) < shortest {
			shortest = len(lists[i])
		}
	}
	out := make([]value.Value, 0, max(shortest, 0))
	for i := 0; i < shortest; i++ {
		tuple := make([]value.Value, len(lists))
		for j, l := range lists {
			tuple[j] = l[i]
		}
		out = append(out, value.NewList(value.Space, tuple...))
	}
	return value.NewList(value.Comma, out...), nil
}

func index(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	l, err := a.Arg(0, "list")
	if err != nil {
		return nil, err
	}
	v, err := a.Arg(1, "value")
	if err != nil {
		return nil, err
	}
	for i, e := range value.Elements(l) {
		if value.Equal(e, v) {
			return value.Unitless(float64(i + 1)), nil
		}
	}
	return value.Nil, nil
}

func listSeparator(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	l, err := a.Arg(0, "list")
	if err != nil {
		return nil, err
	}
	return value.UnquotedString(value.Separator(l).String()), nil
}

func isBracketed(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	l, err := a.Arg(0, "list")
	if err != nil {
		return nil, err
	}
	_, _, brackets := listOf(l)
	return value.FromBool(brackets == value.Bracketed), nil
}
