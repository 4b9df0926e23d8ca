// Package color is the Sass color model. A Color always has RGBA channels;
// colors built from HSL also keep the exact HSL triple they were built from
// so that hue, saturation and lightness read back what was written even where
// the RGB form loses it (grays have no hue).
package color

import (
	"math"

	"bennypowers.dev/sasseval/internal/numeric"
)

// Color is an immutable sRGB color. Red, green and blue range over [0, 255]
// and are not rounded until output; alpha ranges over [0, 1].
type Color struct {
	r, g, b, a float64

	hasHSL  bool
	h, s, l float64

	// name is the keyword spelling the color was written with, if any
	name string
}

// FromRGBA builds a color from channels, clamping each into range.
func FromRGBA(r, g, b, a float64) *Color {
	return &Color{
		r: numeric.Clamp(r, 0, 255),
		g: numeric.Clamp(g, 0, 255),
		b: numeric.Clamp(b, 0, 255),
		a: numeric.Clamp(a, 0, 1),
	}
}

// FromHSLA builds a color from a hue in degrees (any value, wrapped into
// [0, 360)), saturation and lightness as fractions in [0, 1], and alpha.
func FromHSLA(h, s, l, a float64) *Color {
	h = normalizeHue(h)
	s = numeric.Clamp(s, 0, 1)
	l = numeric.Clamp(l, 0, 1)
	r, g, b := hslToRGB(h, s, l)
	c := FromRGBA(r, g, b, a)
	c.hasHSL = true
	c.h, c.s, c.l = h, s, l
	return c
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if numeric.Equal(h, 360) {
		h = 0
	}
	return h
}

// hslToRGB follows the CSS Color 3 algorithm.
func hslToRGB(h, s, l float64) (float64, float64, float64) {
	h /= 360
	var m2 float64
	if l <= 0.5 {
		m2 = l * (s + 1)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2
	return hueToRGB(m1, m2, h+1.0/3) * 255,
		hueToRGB(m1, m2, h) * 255,
		hueToRGB(m1, m2, h-1.0/3) * 255
}

func hueToRGB(m1, m2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*h*6
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2.0/3-h)*6
	}
	return m1
}

func (c *Color) hsl() (h, s, l float64) {
	if c.hasHSL {
		return c.h, c.s, c.l
	}
	r, g, b := c.r/255, c.g/255, c.b/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	l = (max + min) / 2

	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * (g - b) / delta
	case max == g:
		h = 60*(b-r)/delta + 120
	default:
		h = 60*(r-g)/delta + 240
	}

	switch {
	case delta == 0:
		s = 0
	case l < 0.5:
		s = delta / (max + min)
	default:
		s = delta / (2 - max - min)
	}
	return normalizeHue(h), s, l
}

// Red returns the red channel in [0, 255].
func (c *Color) Red() float64 { return c.r }

// Green returns the green channel in [0, 255].
func (c *Color) Green() float64 { return c.g }

// Blue returns the blue channel in [0, 255].
func (c *Color) Blue() float64 { return c.b }

// Alpha returns the alpha channel in [0, 1].
func (c *Color) Alpha() float64 { return c.a }

// Hue returns the hue in degrees, always in [0, 360).
func (c *Color) Hue() float64 {
	h, _, _ := c.hsl()
	return h
}

// Saturation returns the saturation as a fraction in [0, 1].
func (c *Color) Saturation() float64 {
	_, s, _ := c.hsl()
	return s
}

// Lightness returns the lightness as a fraction in [0, 1].
func (c *Color) Lightness() float64 {
	_, _, l := c.hsl()
	return l
}

// Name returns the keyword the color was written as, or "".
func (c *Color) Name() string { return c.name }

// Equal compares the rendered channels, so colors that print the same are equal.
func (c *Color) Equal(o *Color) bool {
	if c == nil || o == nil {
		return c == o
	}
	return numeric.Round(c.r) == numeric.Round(o.r) &&
		numeric.Round(c.g) == numeric.Round(o.g) &&
		numeric.Round(c.b) == numeric.Round(o.b) &&
		numeric.Equal(c.a, o.a)
}

// WithAlpha returns a copy with the alpha channel replaced.
func (c *Color) WithAlpha(a float64) *Color {
	n := *c
	n.a = numeric.Clamp(a, 0, 1)
	n.name = ""
	return &n
}

// WithHSL returns a copy with new hue, saturation and lightness and the same alpha.
func (c *Color) WithHSL(h, s, l float64) *Color {
	return FromHSLA(h, s, l, c.a)
}

// AdjustHue rotates the hue by degrees, wrapping modulo 360.
func (c *Color) AdjustHue(degrees float64) *Color {
	h, s, l := c.hsl()
	return FromHSLA(h+degrees, s, l, c.a)
}

// Lighten moves lightness toward 1 by amount (a fraction).
func (c *Color) Lighten(amount float64) *Color {
	h, s, l := c.hsl()
	return FromHSLA(h, s, l+amount, c.a)
}

// Darken moves lightness toward 0 by amount.
func (c *Color) Darken(amount float64) *Color {
	h, s, l := c.hsl()
	return FromHSLA(h, s, l-amount, c.a)
}

// Saturate moves saturation toward 1 by amount.
func (c *Color) Saturate(amount float64) *Color {
	h, s, l := c.hsl()
	return FromHSLA(h, s+amount, l, c.a)
}

// Desaturate moves saturation toward 0 by amount.
func (c *Color) Desaturate(amount float64) *Color {
	h, s, l := c.hsl()
	return FromHSLA(h, s-amount, l, c.a)
}

// Complement is the color on the opposite side of the hue wheel.
func (c *Color) Complement() *Color {
	return c.AdjustHue(180)
}

// Invert mixes the RGB inverse into the color by weight (a fraction).
// A weight of 1 is the pure inverse.
func (c *Color) Invert(weight float64) *Color {
	inverse := FromRGBA(255-c.r, 255-c.g, 255-c.b, c.a)
	return inverse.Mix(c, weight)
}

// Mix blends c with o. weight is the fraction of c in the result; alpha
// differences shift the weighting as Sass's mix() does.
func (c *Color) Mix(o *Color, weight float64) *Color {
	p := numeric.Clamp(weight, 0, 1)
	w := p*2 - 1
	a := c.a - o.a

	var w1 float64
	if numeric.Equal(w*a, -1) {
		w1 = w
	} else {
		w1 = (w + a) / (1 + w*a)
	}
	w1 = (w1 + 1) / 2
	w2 := 1 - w1

	return FromRGBA(
		c.r*w1+o.r*w2,
		c.g*w1+o.g*w2,
		c.b*w1+o.b*w2,
		c.a*p+o.a*(1-p),
	)
}

// FadeIn raises alpha by amount.
func (c *Color) FadeIn(amount float64) *Color {
	return c.WithAlpha(c.a + amount)
}

// FadeOut lowers alpha by amount.
func (c *Color) FadeOut(amount float64) *Color {
	return c.WithAlpha(c.a - amount)
}
