package value

import (
	"math"
	"slices"
	"strings"
)

// Unit is a product of numerator units over denominator units. The zero
// Unit means unitless.
type Unit struct {
	Numer []string
	Denom []string
}

// None is the empty unit.
var None = Unit{}

// Single returns a simple unit. The empty string is unitless.
func Single(name string) Unit {
	if name == "" {
		return None
	}
	return Unit{Numer: []string{name}}
}

// IsNone reports whether u is unitless.
func (u Unit) IsNone() bool {
	return len(u.Numer) == 0 && len(u.Denom) == 0
}

// IsCompound reports whether u has more than one component.
func (u Unit) IsCompound() bool {
	return len(u.Numer) > 1 || len(u.Denom) > 0
}

// Is reports whether u is exactly the simple unit name.
func (u Unit) Is(name string) bool {
	return len(u.Numer) == 1 && len(u.Denom) == 0 && u.Numer[0] == name
}

func (u Unit) String() string {
	if len(u.Denom) == 0 {
		return strings.Join(u.Numer, "*")
	}
	if len(u.Numer) == 0 {
		if len(u.Denom) == 1 {
			return u.Denom[0] + "^-1"
		}
		return "(" + strings.Join(u.Denom, "*") + ")^-1"
	}
	return strings.Join(u.Numer, "*") + "/" + strings.Join(u.Denom, "*")
}

// Equal compares units as multisets, so px*em equals em*px.
func (u Unit) Equal(o Unit) bool {
	return sameMembers(u.Numer, o.Numer) && sameMembers(u.Denom, o.Denom)
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

type unitInfo struct {
	class string
	// size of one unit in the canonical unit of its class
	size float64
}

var units = map[string]unitInfo{
	"px": {"length", 1},
	"in": {"length", 96},
	"cm": {"length", 96 / 2.54},
	"mm": {"length", 96 / 25.4},
	"q":  {"length", 96 / 101.6},
	"pt": {"length", 96.0 / 72},
	"pc": {"length", 16},

	"deg":  {"angle", 1},
	"grad": {"angle", 0.9},
	"rad":  {"angle", 180 / math.Pi},
	"turn": {"angle", 360},

	"s":  {"time", 1},
	"ms": {"time", 0.001},

	"Hz":  {"frequency", 1},
	"kHz": {"frequency", 1000},

	"dppx": {"resolution", 1},
	"dpi":  {"resolution", 1.0 / 96},
	"dpcm": {"resolution", 2.54 / 96},
}

// factor returns how many `to` fit in one `from`, or false when the two
// simple units are not interconvertible.
func factor(from, to string) (float64, bool) {
	if from == to {
		return 1, true
	}
	f, ok := units[from]
	if !ok {
		return 0, false
	}
	t, ok := units[to]
	if !ok || f.class != t.class {
		return 0, false
	}
	return f.size / t.size, true
}

// Convertible reports whether a number in unit u can be expressed in unit o.
func (u Unit) Convertible(o Unit) bool {
	_, ok := u.ConversionFactor(o)
	return ok
}

// ConversionFactor returns the multiplier that re-expresses a magnitude in u
// as a magnitude in o.
func (u Unit) ConversionFactor(o Unit) (float64, bool) {
	num, ok := matchAll(u.Numer, o.Numer)
	if !ok {
		return 0, false
	}
	den, ok := matchAll(u.Denom, o.Denom)
	if !ok {
		return 0, false
	}
	return num / den, true
}

// matchAll pairs every unit in from with a distinct convertible unit in to
// and multiplies the factors.
func matchAll(from, to []string) (float64, bool) {
	if len(from) != len(to) {
		return 0, false
	}
	used := make([]bool, len(to))
	total := 1.0
	for _, f := range from {
		found := false
		for i, t := range to {
			if used[i] {
				continue
			}
			if k, ok := factor(f, t); ok {
				used[i] = true
				total *= k
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return total, true
}

// Mul returns u*o with convertible numerator/denominator pairs cancelled,
// and the factor the magnitude must be multiplied by to account for the
// cancellation.
func (u Unit) Mul(o Unit) (Unit, float64) {
	numer := append(slices.Clone(u.Numer), o.Numer...)
	denom := append(slices.Clone(u.Denom), o.Denom...)
	k := 1.0

	for i := 0; i < len(numer); {
		cancelled := false
		for j, d := range denom {
			if f, ok := factor(numer[i], d); ok {
				k *= f
				numer = slices.Delete(numer, i, i+1)
				denom = slices.Delete(denom, j, j+1)
				cancelled = true
				break
			}
		}
		if !cancelled {
			i++
		}
	}
	return Unit{Numer: emptyNil(numer), Denom: emptyNil(denom)}, k
}

// Div returns u/o; see Mul.
func (u Unit) Div(o Unit) (Unit, float64) {
	return u.Mul(o.Invert())
}

// Invert swaps numerator and denominator.
func (u Unit) Invert() Unit {
	return Unit{Numer: slices.Clone(u.Denom), Denom: slices.Clone(u.Numer)}
}

func emptyNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
