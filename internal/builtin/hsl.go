package builtin

import (
	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

func declareHSL(r *Registry) {
	r.declare("hsl", hslFunc("hsl"))
	r.declare("hsla", hslFunc("hsla"))
	r.declare("hue", hue)
	r.declare("saturation", saturation)
	r.declare("lightness", lightness)
	r.declare("adjust-hue", adjustHue)
	r.declare("lighten", lighten)
	r.declare("darken", darken)
	r.declare("saturate", saturate)
	r.declare("desaturate", desaturate)
	r.declare("grayscale", grayscale)
	r.declare("complement", complement)
	r.declare("invert", invert)
}

var hslChannels = []string{"hue", "saturation", "lightness"}

// hslFunc builds hsl() and hsla(), which differ only in the name they
// reproduce when passing a plain-CSS call through.
func hslFunc(name string) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		if a.IsEmpty() {
			return nil, fail(a, sasserr.MissingArgument("channels"))
		}
		if a.Len() == 1 {
			return hslFromList(name, a, ctx)
		}
		if err := a.MaxArgs(4); err != nil {
			return nil, err
		}

		var (
			bound []value.Value
			hsl   [3]float64
		)
		for i, param := range hslChannels {
			v, err := a.Arg(i, param)
			if err != nil {
				return nil, err
			}
			if value.IsSpecialFunction(v) {
				return ctx.passthrough(a, name, append(bound, v), hslChannels[i+1:], "alpha")
			}
			n, err := ctx.asNumber(a, param, v)
			if err != nil {
				return nil, err
			}
			bound = append(bound, v)
			hsl[i] = n.Num
			if i > 0 {
				hsl[i] /= 100
			}
		}

		v, err := a.DefaultArg(3, "alpha", value.Unitless(1))
		if err != nil {
			return nil, err
		}
		if value.IsSpecialFunction(v) {
			return ctx.plainCSS(a, name, append(bound, v)...)
		}
		alpha, err := ctx.alphaChannel(a, v)
		if err != nil {
			return nil, err
		}
		return colorValue(color.FromHSLA(hsl[0], hsl[1], hsl[2], alpha)), nil
	}
}

// hslFromList handles the single-argument form hsl($channels), taking
// lightness, saturation and hue from the end of the list.
func hslFromList(name string, a *args.CallArgs, ctx *Context) (value.Value, error) {
	v, err := a.Arg(0, "channels")
	if err != nil {
		return nil, err
	}
	if value.IsSpecialFunction(v) {
		return ctx.plainCSS(a, name, v)
	}
	channels := value.Elements(v)
	if len(channels) > 3 {
		return nil, fail(a, sasserr.TooManyElements(3, len(channels)))
	}
	for _, c := range channels {
		if value.IsSpecialFunction(c) {
			return ctx.plainCSS(a, name, v)
		}
	}

	var hsl [3]float64
	for i := 2; i >= 0; i-- {
		param := hslChannels[i]
		if len(channels) == 0 {
			return nil, fail(a, sasserr.MissingElement(param))
		}
		last := channels[len(channels)-1]
		channels = channels[:len(channels)-1]

		n, err := ctx.asNumber(a, param, last)
		if err != nil {
			return nil, err
		}
		hsl[i] = n.Num
		if i > 0 {
			hsl[i] /= 100
		}
	}
	return colorValue(color.FromHSLA(hsl[0], hsl[1], hsl[2], 1)), nil
}

// alphaChannel converts an alpha channel: unitless as a fraction, or a percentage.
func (ctx *Context) alphaChannel(a *args.CallArgs, v value.Value) (float64, error) {
	n, err := ctx.asNumber(a, "alpha", v)
	if err != nil {
		return 0, err
	}
	switch {
	case n.Unit.IsNone():
		return n.Num, nil
	case n.Unit.Is("%"):
		return n.Num / 100, nil
	}
	return 0, fail(a, sasserr.TypeDetail("alpha",
		"Expected "+ctx.render(n)+` to have no units or "%".`))
}

func hue(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	c, err := ctx.colorArg(a, 0, "color")
	if err != nil {
		return nil, err
	}
	return value.WithUnit(c.Hue(), "deg"), nil
}

func saturation(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	c, err := ctx.colorArg(a, 0, "color")
	if err != nil {
		return nil, err
	}
	return value.Percentage(c.Saturation() * 100), nil
}

func lightness(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	c, err := ctx.colorArg(a, 0, "color")
	if err != nil {
		return nil, err
	}
	return value.Percentage(c.Lightness() * 100), nil
}

func adjustHue(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	c, err := ctx.colorArg(a, 0, "color")
	if err != nil {
		return nil, err
	}
	degrees, err := ctx.numberArg(a, 1, "degrees")
	if err != nil {
		return nil, err
	}
	return colorValue(c.AdjustHue(degrees.Num)), nil
}

// amountFunc builds the builtins that move one HSL channel by a
// percentage amount: lighten, darken and desaturate.
func amountFunc(apply func(c *color.Color, amount float64) *color.Color) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		if err := a.MaxArgs(2); err != nil {
			return nil, err
		}
		c, err := ctx.colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		amount, err := ctx.percentArg(a, 1, "amount")
		if err != nil {
			return nil, err
		}
		return colorValue(apply(c, amount)), nil
	}
}

var (
	lighten    = amountFunc((*color.Color).Lighten)
	darken     = amountFunc((*color.Color).Darken)
	desaturate = amountFunc((*color.Color).Desaturate)
)

// saturate is also the plain-CSS filter function when called with a
// single argument or with a number in place of the color.
func saturate(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	if a.Len() == 1 {
		v, err := a.Arg(0, "amount")
		if err != nil {
			return nil, err
		}
		return ctx.plainCSS(a, "saturate", v)
	}

	amount, err := ctx.percentArg(a, 1, "amount")
	if err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "color")
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case value.Color:
		return colorValue(v.Saturate(amount)), nil
	case value.Number:
		return ctx.plainCSS(a, "saturate", v)
	}
	return nil, ctx.notA(a, "color", v, "color")
}

// grayscale is desaturate($color, 100%), or the plain-CSS filter function
// when given a number.
func grayscale(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	v, err := a.Arg(0, "color")
	if err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case value.Color:
		return colorValue(c.Desaturate(1)), nil
	case value.Number:
		return ctx.plainCSS(a, "grayscale", c)
	}
	if value.IsSpecialFunction(v) {
		return ctx.plainCSS(a, "grayscale", v)
	}
	return nil, ctx.notA(a, "color", v, "color")
}

func complement(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	c, err := ctx.colorArg(a, 0, "color")
	if err != nil {
		return nil, err
	}
	return colorValue(c.Complement()), nil
}

// invert mixes a color with its inverse. A percentage in place of the color
// is the plain-CSS filter function; any other number is an error.
func invert(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	w, err := a.DefaultArg(1, "weight", value.Percentage(100))
	if err != nil {
		return nil, err
	}
	wn, err := ctx.asNumber(a, "weight", w)
	if err != nil {
		return nil, err
	}
	weight, err := ctx.bounded(a, "weight", wn, 0, 100)
	if err != nil {
		return nil, err
	}

	v, err := a.Arg(0, "color")
	if err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case value.Color:
		return colorValue(c.Invert(weight / 100)), nil
	case value.Number:
		if c.Unit.Is("%") {
			return ctx.plainCSS(a, "invert", c)
		}
		return nil, fail(a, sasserr.Invalidf("Only one argument may be passed to the plain-CSS invert() function."))
	}
	if value.IsSpecialFunction(v) {
		return ctx.plainCSS(a, "invert", v)
	}
	return nil, ctx.notA(a, "color", v, "color")
}
