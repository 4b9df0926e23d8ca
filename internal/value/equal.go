package value

import (
	"bennypowers.dev/sasseval/internal/numeric"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
)

// Equal is Sass's == relation. Numbers are equal when their magnitudes
// agree after unit conversion (a unitless number never equals one with
// units), strings compare text regardless of quoting, and maps compare as
// unordered sets of entries.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && numbersEqual(a, b)
	case Color:
		b, ok := b.(Color)
		return ok && a.Color.Equal(b.Color)
	case String:
		switch b := b.(type) {
		case String:
			return a.Text == b.Text
		case Special:
			return a.Quotes == Unquoted && a.Text == b.Raw
		}
		return false
	case Special:
		switch b := b.(type) {
		case Special:
			return a.Raw == b.Raw
		case String:
			return b.Quotes == Unquoted && a.Raw == b.Text
		}
		return false
	case List:
		return listEqual(a.Elems, a.Sep, a.Brackets, b)
	case ArgList:
		return listEqual(a.Elems, a.Sep, NoBrackets, b)
	case *Map:
		switch b := b.(type) {
		case *Map:
			return mapsEqual(a, b)
		case List:
			return a.Len() == 0 && len(b.Elems) == 0 && b.Brackets == NoBrackets
		}
		return false
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Null:
		_, ok := b.(Null)
		return ok
	case Function:
		b, ok := b.(Function)
		return ok && a.Name == b.Name
	}
	return false
}

func numbersEqual(a, b Number) bool {
	if a.Unit.IsNone() != b.Unit.IsNone() {
		return false
	}
	k, ok := b.Unit.ConversionFactor(a.Unit)
	if !ok {
		return false
	}
	return numeric.Equal(a.Num, b.Num*k)
}

func listEqual(elems []Value, sep ListSeparator, brackets Brackets, other Value) bool {
	var (
		oElems    []Value
		oSep      ListSeparator
		oBrackets Brackets
	)
	switch o := other.(type) {
	case List:
		oElems, oSep, oBrackets = o.Elems, o.Sep, o.Brackets
	case ArgList:
		oElems, oSep = o.Elems, o.Sep
	case *Map:
		return o.Len() == 0 && len(elems) == 0 && brackets == NoBrackets
	default:
		return false
	}
	if len(elems) != len(oElems) || brackets != oBrackets {
		return false
	}
	if len(elems) > 1 && normalizeSep(sep) != normalizeSep(oSep) {
		return false
	}
	for i := range elems {
		if !Equal(elems[i], oElems[i]) {
			return false
		}
	}
	return true
}

func normalizeSep(s ListSeparator) ListSeparator {
	if s == Undecided {
		return Space
	}
	return s
}

func mapsEqual(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		ov, ok := b.Get(k)
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}

// Compare orders two numbers after converting b into a's unit. It returns
// -1, 0 or 1, with fuzzy equality counting as 0. A unitless operand is
// compatible with any unit.
func Compare(a, b Number, span position.Span) (int, error) {
	bn, err := convertForArithmetic(a, b)
	if err != nil {
		return 0, sasserr.WithSpan(err, span)
	}
	switch {
	case numeric.Equal(a.Num, bn):
		return 0, nil
	case a.Num < bn:
		return -1, nil
	}
	return 1, nil
}

// convertForArithmetic returns b's magnitude expressed in a's unit.
func convertForArithmetic(a, b Number) (float64, error) {
	if a.Unit.IsNone() || b.Unit.IsNone() {
		return b.Num, nil
	}
	k, ok := b.Unit.ConversionFactor(a.Unit)
	if !ok {
		return 0, sasserr.IncompatibleUnits(a.Unit.String(), b.Unit.String())
	}
	return b.Num * k, nil
}
