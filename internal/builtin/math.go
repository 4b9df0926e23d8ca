package builtin

import (
	"errors"
	"math"
	"math/rand/v2"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/numeric"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

func declareMath(r *Registry) {
	r.declare("percentage", percentage)
	r.declare("round", rounding(numeric.Round))
	r.declare("ceil", rounding(math.Ceil))
	r.declare("floor", rounding(math.Floor))
	r.declare("abs", rounding(math.Abs))
	r.declare("min", extremum("min", -1))
	r.declare("max", extremum("max", 1))
	r.declare("comparable", comparableUnits)
	r.declare("unit", unit)
	r.declare("unitless", unitless)
	r.declare("random", random)
}

func percentage(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	n, err := ctx.numberArg(a, 0, "number")
	if err != nil {
		return nil, err
	}
	if !n.Unit.IsNone() {
		return nil, fail(a, sasserr.TypeDetail("number", "Expected "+ctx.render(n)+" to have no units."))
	}
	return value.Percentage(n.Num * 100), nil
}

// rounding builds the builtins that map a number's magnitude and keep its unit.
func rounding(f func(float64) float64) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		if err := a.MaxArgs(1); err != nil {
			return nil, err
		}
		n, err := ctx.numberArg(a, 0, "number")
		if err != nil {
			return nil, err
		}
		return value.Number{Num: f(n.Num), Unit: n.Unit}, nil
	}
}

// extremum builds min() and max(). When any argument is not a Sass number,
// the call is the plain-CSS comparison function and is passed through.
func extremum(name string, want int) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		rest, err := a.Rest()
		if err != nil {
			return nil, err
		}
		if len(rest.Elems) == 0 {
			return nil, fail(a, sasserr.Structuref("At least one argument must be passed."))
		}
		for _, v := range rest.Elems {
			if value.IsSpecialFunction(v) {
				return ctx.plainCSS(a, name, rest.Elems...)
			}
			if s, ok := v.(value.String); ok && s.Quotes == value.Unquoted {
				return ctx.plainCSS(a, name, rest.Elems...)
			}
		}

		best, err := ctx.asNumber(a, "", rest.Elems[0])
		if err != nil {
			return nil, err
		}
		for _, v := range rest.Elems[1:] {
			n, err := ctx.asNumber(a, "", v)
			if err != nil {
				return nil, err
			}
			c, err := value.Compare(n, best, a.Span())
			if errors.Is(err, sasserr.ErrUnits) {
				// min(100%, 10px) is left for the browser to resolve
				return ctx.plainCSS(a, name, rest.Elems...)
			}
			if err != nil {
				return nil, err
			}
			if c == want {
				best = n
			}
		}
		return best, nil
	}
}

func comparableUnits(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	n1, err := ctx.numberArg(a, 0, "number1")
	if err != nil {
		return nil, err
	}
	n2, err := ctx.numberArg(a, 1, "number2")
	if err != nil {
		return nil, err
	}
	ok := n1.Unit.IsNone() || n2.Unit.IsNone() || n1.Unit.Convertible(n2.Unit)
	return value.FromBool(ok), nil
}

func unit(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	n, err := ctx.numberArg(a, 0, "number")
	if err != nil {
		return nil, err
	}
	return value.QuotedString(n.Unit.String()), nil
}

func unitless(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	n, err := ctx.numberArg(a, 0, "number")
	if err != nil {
		return nil, err
	}
	return value.FromBool(n.Unit.IsNone()), nil
}

// random returns a float in [0, 1) without $limit, else an integer in
// [1, $limit].
func random(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.DefaultArg(0, "limit", value.Nil)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(value.Null); ok {
		return value.Unitless(rand.Float64()), nil
	}
	n, err := ctx.asNumber(a, "limit", v)
	if err != nil {
		return nil, err
	}
	limit, err := ctx.asInt(a, "limit", n)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, fail(a, sasserr.TypeDetail("limit", "Must be greater than 0, was "+ctx.render(n)+"."))
	}
	return value.Unitless(float64(rand.IntN(limit) + 1)), nil
}
