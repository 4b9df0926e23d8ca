package builtin

import (
	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/numeric"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

func declareRGB(r *Registry) {
	r.declare("rgb", rgbFunc("rgb"))
	r.declare("rgba", rgbFunc("rgba"))
	r.declare("red", channelGetter((*color.Color).Red))
	r.declare("green", channelGetter((*color.Color).Green))
	r.declare("blue", channelGetter((*color.Color).Blue))
	r.declare("mix", mix)
}

var rgbChannels = []string{"red", "green", "blue"}

func rgbFunc(name string) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		switch a.Len() {
		case 0:
			return nil, fail(a, sasserr.MissingArgument("channels"))
		case 1:
			return rgbFromList(name, a, ctx)
		case 2:
			return rgbWithAlpha(name, a, ctx)
		}
		if err := a.MaxArgs(4); err != nil {
			return nil, err
		}

		var (
			bound []value.Value
			rgb   [3]float64
		)
		for i, param := range rgbChannels {
			v, err := a.Arg(i, param)
			if err != nil {
				return nil, err
			}
			if value.IsSpecialFunction(v) {
				return ctx.passthrough(a, name, append(bound, v), rgbChannels[i+1:], "alpha")
			}
			ch, err := ctx.rgbChannel(a, param, v)
			if err != nil {
				return nil, err
			}
			bound = append(bound, v)
			rgb[i] = ch
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
		return colorValue(color.FromRGBA(rgb[0], rgb[1], rgb[2], alpha)), nil
	}
}

// rgbChannel converts a red, green or blue argument: unitless in [0, 255]
// or a percentage of 255.
func (ctx *Context) rgbChannel(a *args.CallArgs, param string, v value.Value) (float64, error) {
	n, err := ctx.asNumber(a, param, v)
	if err != nil {
		return 0, err
	}
	switch {
	case n.Unit.IsNone():
		return n.Num, nil
	case n.Unit.Is("%"):
		return n.Num * 255 / 100, nil
	}
	return 0, fail(a, sasserr.TypeDetail(param,
		"Expected "+ctx.render(n)+` to have no units or "%".`))
}

func rgbFromList(name string, a *args.CallArgs, ctx *Context) (value.Value, error) {
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

	var rgb [3]float64
	for i := 2; i >= 0; i-- {
		param := rgbChannels[i]
		if len(channels) == 0 {
			return nil, fail(a, sasserr.MissingElement(param))
		}
		last := channels[len(channels)-1]
		channels = channels[:len(channels)-1]
		ch, err := ctx.rgbChannel(a, param, last)
		if err != nil {
			return nil, err
		}
		rgb[i] = ch
	}
	return colorValue(color.FromRGBA(rgb[0], rgb[1], rgb[2], 1)), nil
}

// rgbWithAlpha handles rgba($color, $alpha).
func rgbWithAlpha(name string, a *args.CallArgs, ctx *Context) (value.Value, error) {
	v, err := a.Arg(0, "color")
	if err != nil {
		return nil, err
	}
	if value.IsSpecialFunction(v) {
		return ctx.passthrough(a, name, []value.Value{v}, []string{"alpha"}, "")
	}
	c, ok := v.(value.Color)
	if !ok {
		if _, isNumber := v.(value.Number); isNumber {
			return nil, fail(a, sasserr.MissingArgument("blue"))
		}
		return nil, ctx.notA(a, "color", v, "color")
	}
	av, err := a.Arg(1, "alpha")
	if err != nil {
		return nil, err
	}
	if value.IsSpecialFunction(av) {
		return ctx.plainCSS(a, name,
			value.Unitless(numeric.Round(c.Red())),
			value.Unitless(numeric.Round(c.Green())),
			value.Unitless(numeric.Round(c.Blue())),
			av)
	}
	alpha, err := ctx.alphaChannel(a, av)
	if err != nil {
		return nil, err
	}
	return colorValue(c.WithAlpha(alpha)), nil
}

func channelGetter(get func(*color.Color) float64) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		if err := a.MaxArgs(1); err != nil {
			return nil, err
		}
		c, err := ctx.colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		return value.Unitless(numeric.Round(get(c))), nil
	}
}

func mix(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(3); err != nil {
		return nil, err
	}
	c1, err := ctx.colorArg(a, 0, "color1")
	if err != nil {
		return nil, err
	}
	c2, err := ctx.colorArg(a, 1, "color2")
	if err != nil {
		return nil, err
	}
	w, err := a.DefaultArg(2, "weight", value.Percentage(50))
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
	return colorValue(c1.Mix(c2, weight/100)), nil
}
