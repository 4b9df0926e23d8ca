package color

import (
	"fmt"
	"strings"

	"bennypowers.dev/sasseval/internal/numeric"
)

// channel rounds an RGB channel for output.
func channel(f float64) int {
	return int(numeric.Clamp(numeric.Round(f), 0, 255))
}

// RGB24 packs the rounded channels as 0xRRGGBB.
func (c *Color) RGB24() uint32 {
	return uint32(channel(c.r))<<16 | uint32(channel(c.g))<<8 | uint32(channel(c.b))
}

// Hex renders the color as #rrggbb, ignoring alpha.
func (c *Color) Hex() string {
	return fmt.Sprintf("#%06x", c.RGB24())
}

// ToCSS renders the color in its canonical CSS form: the keyword it was
// written as, else a keyword or hex for opaque colors, else rgba().
func (c *Color) ToCSS() string {
	if c.name != "" {
		return c.name
	}
	if numeric.Equal(c.a, 1) {
		if n, ok := NameFor(c.RGB24()); ok {
			return n.String()
		}
		return c.Hex()
	}
	return c.RGBAString()
}

// RGBAString renders the rgba() functional notation.
func (c *Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", channel(c.r), channel(c.g), channel(c.b),
		numeric.Format(c.a, numeric.Precision))
}

// HSLString renders the hsl()/hsla() functional notation.
func (c *Color) HSLString() string {
	h, s, l := c.hsl()
	parts := []string{
		numeric.Format(h, numeric.Precision),
		numeric.Format(s*100, numeric.Precision) + "%",
		numeric.Format(l*100, numeric.Precision) + "%",
	}
	if numeric.Equal(c.a, 1) {
		return "hsl(" + strings.Join(parts, ", ") + ")"
	}
	parts = append(parts, numeric.Format(c.a, numeric.Precision))
	return "hsla(" + strings.Join(parts, ", ") + ")"
}

// IEHex renders the #AARRGGBB form used by old Internet Explorer filters.
func (c *Color) IEHex() string {
	return fmt.Sprintf("#%02X%06X", channel(c.a*255), c.RGB24())
}

func (c *Color) String() string { return c.ToCSS() }
