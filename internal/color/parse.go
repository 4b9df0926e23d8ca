package color

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Parse reads a CSS color literal: a keyword, #hex, or an rgb()/hsl()
// functional notation. Keywords keep their spelling for output.
func Parse(text string) (*Color, error) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	if n, ok := LookupName(lower); ok {
		c := n.Color()
		c.name = text
		return c, nil
	}
	if lower == "transparent" {
		c := FromRGBA(0, 0, 0, 0)
		c.name = text
		return c, nil
	}

	parsed, err := csscolorparser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", text, err)
	}
	return FromRGBA(parsed.R*255, parsed.G*255, parsed.B*255, parsed.A), nil
}

// IsHexLiteral reports whether text looks like a #rgb, #rgba, #rrggbb or
// #rrggbbaa literal.
func IsHexLiteral(text string) bool {
	if !strings.HasPrefix(text, "#") {
		return false
	}
	digits := text[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// ToCSSParser converts to the csscolorparser representation, whose
// HexString includes alpha when the color is translucent.
func (c *Color) ToCSSParser() csscolorparser.Color {
	return csscolorparser.Color{R: c.r / 255, G: c.g / 255, B: c.b / 255, A: c.a}
}
