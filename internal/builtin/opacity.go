package builtin

import (
	"strings"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/value"
)

func declareOpacity(r *Registry) {
	r.declare("alpha", alpha)
	r.declare("opacity", opacity)
	r.declare("opacify", fade((*color.Color).FadeIn))
	r.declare("fade-in", fade((*color.Color).FadeIn))
	r.declare("transparentize", fade((*color.Color).FadeOut))
	r.declare("fade-out", fade((*color.Color).FadeOut))
}

func declareOtherColor(r *Registry) {
	r.declare("ie-hex-str", ieHexStr)
}

// alpha also accepts the Internet Explorer filter syntax alpha(opacity=50),
// which is passed through untouched.
func alpha(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "color")
	if err != nil {
		return nil, err
	}
	if s, ok := v.(value.String); ok && s.Quotes == value.Unquoted && strings.Contains(s.Text, "=") {
		return ctx.plainCSS(a, "alpha", v)
	}
	return alphaOf(a, ctx, v)
}

func alphaOf(a *args.CallArgs, ctx *Context, v value.Value) (value.Value, error) {
	c, ok := v.(value.Color)
	if !ok {
		return nil, ctx.notA(a, "color", v, "color")
	}
	return value.Unitless(c.Alpha()), nil
}

// opacity is also the plain-CSS filter function when given a number.
func opacity(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "color")
	if err != nil {
		return nil, err
	}
	if _, ok := v.(value.Number); ok || value.IsSpecialFunction(v) {
		return ctx.plainCSS(a, "opacity", v)
	}
	return alphaOf(a, ctx, v)
}

// fade builds the alpha-adjusting builtins, whose $amount is a fraction in [0, 1].
func fade(apply func(c *color.Color, amount float64) *color.Color) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		if err := a.MaxArgs(2); err != nil {
			return nil, err
		}
		c, err := ctx.colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		n, err := ctx.numberArg(a, 1, "amount")
		if err != nil {
			return nil, err
		}
		amount, err := ctx.bounded(a, "amount", n, 0, 1)
		if err != nil {
			return nil, err
		}
		return colorValue(apply(c, amount)), nil
	}
}

func ieHexStr(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	c, err := ctx.colorArg(a, 0, "color")
	if err != nil {
		return nil, err
	}
	return value.UnquotedString(c.IEHex()), nil
}
