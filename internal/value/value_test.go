package value_test

import (
	"errors"
	"math"
	"testing"

	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noSpan position.Span

func px(n float64) value.Number { return value.WithUnit(n, "px") }

func TestEqual(t *testing.T) {
	red := value.NewColor(color.FromRGBA(255, 0, 0, 1))
	tests := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"same number", value.Unitless(1), value.Unitless(1.0), true},
		{"fuzzy number", value.Unitless(1), value.Unitless(1 + 1e-12), true},
		{"converted units", value.WithUnit(1, "in"), px(96), true},
		{"unitless vs unit", value.Unitless(1), px(1), false},
		{"incompatible units", px(1), value.WithUnit(1, "deg"), false},
		{"quoting ignored", value.QuotedString("a"), value.UnquotedString("a"), true},
		{"different text", value.QuotedString("a"), value.QuotedString("b"), false},
		{"colors", red, value.NewColor(color.Red.Color()), true},
		{"bools", value.True, value.False, false},
		{"null", value.Nil, value.Null{}, true},
		{"null vs false", value.Nil, value.False, false},
		{
			"lists",
			value.NewList(value.Comma, value.Unitless(1), value.Unitless(2)),
			value.NewList(value.Comma, value.Unitless(1), value.Unitless(2)),
			true,
		},
		{
			"list separators differ",
			value.NewList(value.Comma, value.Unitless(1), value.Unitless(2)),
			value.NewList(value.Space, value.Unitless(1), value.Unitless(2)),
			false,
		},
		{
			"single element ignores separator",
			value.NewList(value.Comma, value.Unitless(1)),
			value.NewList(value.Space, value.Unitless(1)),
			true,
		},
		{
			"brackets differ",
			value.List{Elems: []value.Value{value.Unitless(1)}, Brackets: value.Bracketed},
			value.NewList(value.Space, value.Unitless(1)),
			false,
		},
		{"empty list equals empty map", value.NewList(value.Space), value.NewMap(), true},
		{
			"maps ignore order",
			value.NewMap(
				value.Pair{Key: value.UnquotedString("a"), Value: value.Unitless(1)},
				value.Pair{Key: value.UnquotedString("b"), Value: value.Unitless(2)},
			),
			value.NewMap(
				value.Pair{Key: value.UnquotedString("b"), Value: value.Unitless(2)},
				value.Pair{Key: value.UnquotedString("a"), Value: value.Unitless(1)},
			),
			true,
		},
		{"specials", value.Special{Name: "calc", Raw: "calc(1px + 2px)"}, value.UnquotedString("calc(1px + 2px)"), true},
		{"functions", value.Function{Name: "hsl", Builtin: true}, value.Function{Name: "hsl"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, value.Equal(tt.b, tt.a), "symmetry")
		})
	}
}

func TestMap(t *testing.T) {
	t.Run("semantically equal keys overwrite", func(t *testing.T) {
		m := value.NewMap()
		assert.False(t, m.Insert(value.Unitless(1), value.UnquotedString("first")))
		assert.True(t, m.Insert(value.Unitless(1.0), value.UnquotedString("second")))

		require.Len(t, m.Keys(), 1)
		got, ok := m.Get(value.Unitless(1))
		require.True(t, ok)
		assert.Equal(t, value.UnquotedString("second"), got)
	})

	t.Run("converted units are the same key", func(t *testing.T) {
		m := value.NewMap()
		m.Insert(value.WithUnit(1, "in"), value.True)
		assert.True(t, m.Insert(px(96), value.False))
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, value.WithUnit(1, "in"), m.Keys()[0], "first key spelling is kept")
	})

	t.Run("insertion order", func(t *testing.T) {
		m := value.NewMap()
		for _, k := range []string{"c", "a", "b"} {
			m.Insert(value.UnquotedString(k), value.QuotedString(k))
		}
		m.Insert(value.QuotedString("a"), value.Unitless(0))

		assert.Equal(t, []value.Value{
			value.UnquotedString("c"), value.UnquotedString("a"), value.UnquotedString("b"),
		}, m.Keys())
		assert.Equal(t, []value.Value{
			value.QuotedString("c"), value.Unitless(0), value.QuotedString("b"),
		}, m.Values())
	})

	t.Run("remove and merge", func(t *testing.T) {
		m := value.NewMap(
			value.Pair{Key: value.UnquotedString("a"), Value: value.Unitless(1)},
			value.Pair{Key: value.UnquotedString("b"), Value: value.Unitless(2)},
		)
		m.Remove(value.QuotedString("a"))
		assert.False(t, m.Has(value.UnquotedString("a")))

		m.Merge(value.NewMap(
			value.Pair{Key: value.UnquotedString("b"), Value: value.Unitless(20)},
			value.Pair{Key: value.UnquotedString("c"), Value: value.Unitless(3)},
		))
		assert.Equal(t, "(b: 20, c: 3)", value.Inspect(m))
	})

	t.Run("as list", func(t *testing.T) {
		m := value.NewMap(value.Pair{Key: value.UnquotedString("a"), Value: value.Unitless(1)})
		assert.Equal(t, []value.Value{
			value.NewList(value.Space, value.UnquotedString("a"), value.Unitless(1)),
		}, m.AsList())
	})

	t.Run("clone is independent", func(t *testing.T) {
		m := value.NewMap(value.Pair{Key: value.UnquotedString("a"), Value: value.Unitless(1)})
		c := m.Clone()
		c.Insert(value.UnquotedString("b"), value.Unitless(2))
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, 2, c.Len())
	})
}

func TestArithmetic(t *testing.T) {
	red := value.NewColor(color.FromRGBA(255, 0, 0, 1))

	tests := []struct {
		name string
		op   func(a, b value.Value, span position.Span) (value.Value, error)
		a, b value.Value
		want string
	}{
		{"unitless inherits unit", value.Add, value.Unitless(1), px(2), "3px"},
		{"unit keeps unit", value.Add, px(2), value.Unitless(1), "3px"},
		{"converts right operand", value.Add, px(1), value.WithUnit(1, "in"), "97px"},
		{"subtracts", value.Sub, value.WithUnit(1, "s"), value.WithUnit(500, "ms"), "0.5s"},
		{"string concat keeps left quotes", value.Add, value.QuotedString("a"), value.Unitless(1), `"a1"`},
		{"string concat takes right quotes", value.Add, value.Unitless(1), value.QuotedString("a"), `"1a"`},
		{"unquoted concat", value.Add, value.UnquotedString("a"), value.QuotedString("b"), "ab"},
		{"minus on strings", value.Sub, value.UnquotedString("a"), value.UnquotedString("b"), "a-b"},
		{"slash on strings", value.Div, value.UnquotedString("a"), value.UnquotedString("b"), "a/b"},
		{"multiplies", value.Mul, px(2), value.Unitless(3), "6px"},
		{"divides away units", value.Div, px(6), px(2), "3"},
		{"divides converted units", value.Div, value.WithUnit(1, "in"), px(1), "96"},
		{"cancels on multiply", value.Mul, px(10), value.Number{Num: 1, Unit: value.Unit{Denom: []string{"in"}}}, "0.1041666667"},
		{"modulo takes divisor sign", value.Mod, value.Unitless(-1), value.Unitless(3), "2"},
		{"modulo with units", value.Mod, px(10), px(4), "2px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.a, tt.b, noSpan)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value.Inspect(got))
		})
	}

	t.Run("compound units", func(t *testing.T) {
		got, err := value.Mul(px(2), value.WithUnit(3, "em"), noSpan)
		require.NoError(t, err)
		assert.Equal(t, "6px*em", value.Inspect(got))

		got, err = value.Div(got, value.WithUnit(2, "s"), noSpan)
		require.NoError(t, err)
		assert.Equal(t, "3px*em/s", value.Inspect(got))

		_, err = value.ToCSS(got, noSpan)
		assert.EqualError(t, err, "3px*em/s isn't a valid CSS value.")
	})

	t.Run("incompatible units", func(t *testing.T) {
		_, err := value.Add(px(1), value.WithUnit(1, "deg"), noSpan)
		assert.EqualError(t, err, "Incompatible units px and deg.")
		assert.ErrorIs(t, err, sasserr.ErrUnits)
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := value.Div(px(1), value.Unitless(0), noSpan)
		assert.EqualError(t, err, `Undefined operation "1px / 0": division by zero.`)
		assert.ErrorIs(t, err, sasserr.ErrDivisionByZero)

		_, err = value.Mod(value.Unitless(1), value.Unitless(0), noSpan)
		assert.ErrorIs(t, err, sasserr.ErrDivisionByZero)
	})

	t.Run("division by zero in css math", func(t *testing.T) {
		got, err := value.DivCSSMath(value.Unitless(1), value.Unitless(0), noSpan)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got.(value.Number).Num, 1))
	})

	t.Run("colors reject arithmetic", func(t *testing.T) {
		_, err := value.Add(red, value.Unitless(1), noSpan)
		assert.EqualError(t, err, `Undefined operation "red + 1".`)
		assert.ErrorIs(t, err, sasserr.ErrOperation)

		_, err = value.Mul(value.UnquotedString("a"), value.Unitless(2), noSpan)
		assert.ErrorIs(t, err, sasserr.ErrOperation)
	})

	t.Run("errors carry the span", func(t *testing.T) {
		span := position.Span{Start: position.Position{Line: 2, Character: 4}, End: position.Position{Line: 2, Character: 9}}
		_, err := value.Add(red, red, span)
		got, ok := sasserr.SpanOf(err)
		require.True(t, ok)
		assert.Equal(t, span, got)
	})

	t.Run("negate", func(t *testing.T) {
		got, err := value.Negate(px(2), noSpan)
		require.NoError(t, err)
		assert.Equal(t, px(-2), got)

		got, err = value.Negate(value.UnquotedString("a"), noSpan)
		require.NoError(t, err)
		assert.Equal(t, value.UnquotedString("-a"), got)
	})
}

func TestCompare(t *testing.T) {
	got, err := value.Compare(value.WithUnit(1, "in"), px(95), noSpan)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = value.Compare(value.WithUnit(1, "in"), px(96), noSpan)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = value.Compare(value.Unitless(1), px(2), noSpan)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	_, err = value.Compare(px(1), value.WithUnit(1, "s"), noSpan)
	assert.True(t, errors.Is(err, sasserr.ErrUnits))
}

func TestToCSS(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"trims zeros", px(1.50), "1.5px"},
		{"fraction", value.Unitless(0.5), "0.5"},
		{"rounds to precision", value.Unitless(1.0 / 3), "0.3333333333"},
		{"negative zero", value.Unitless(math.Copysign(0, -1)), "0"},
		{"large", value.Unitless(1e21), "1000000000000000000000"},
		{"percent", value.Percentage(50), "50%"},
		{"double quotes", value.QuotedString("a b"), `"a b"`},
		{"single quotes when needed", value.QuotedString(`say "hi"`), `'say "hi"'`},
		{"escapes", value.QuotedString(`it's "x"`), `"it's \"x\""`},
		{"unquoted", value.UnquotedString("bold"), "bold"},
		{"color", value.NewColor(color.FromRGBA(1, 2, 3, 1)), "#010203"},
		{"comma list", value.NewList(value.Comma, px(1), px(2)), "1px, 2px"},
		{"space list", value.NewList(value.Space, px(1), value.UnquotedString("solid")), "1px solid"},
		{"slash list", value.NewList(value.Slash, px(1), px(2)), "1px / 2px"},
		{"null skipped in list", value.NewList(value.Space, value.UnquotedString("a"), value.Nil, value.UnquotedString("c")), "a c"},
		{"empty bracketed", value.List{Brackets: value.Bracketed}, "[]"},
		{"bracketed", value.List{Elems: []value.Value{value.UnquotedString("a")}, Brackets: value.Bracketed}, "[a]"},
		{"bool", value.True, "true"},
		{"special verbatim", value.Special{Name: "calc", Raw: "calc(100% - 1px)"}, "calc(100% - 1px)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := value.ToCSS(tt.v, noSpan)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	printer := value.Printer{Precision: 3}
	got, err := printer.ToCSS(value.Unitless(1.0/3), noSpan)
	require.NoError(t, err)
	assert.Equal(t, "0.333", got)
}

func TestToCSSRejects(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"null", value.Nil, "null isn't a valid CSS value."},
		{"empty list", value.NewList(value.Space), "() isn't a valid CSS value."},
		{"map", value.NewMap(value.Pair{Key: value.UnquotedString("a"), Value: value.Unitless(1)}), "(a: 1) isn't a valid CSS value."},
		{"function", value.Function{Name: "hsl"}, `get-function("hsl") isn't a valid CSS value.`},
		{"map inside list", value.NewList(value.Space, value.NewMap(value.Pair{Key: value.Unitless(1), Value: value.Unitless(2)})), "(1: 2) isn't a valid CSS value."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := value.ToCSS(tt.v, noSpan)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestInspect(t *testing.T) {
	assert.Equal(t, "null", value.Inspect(value.Nil))
	assert.Equal(t, "()", value.Inspect(value.NewList(value.Comma)))
	assert.Equal(t, "(1,)", value.Inspect(value.NewList(value.Comma, value.Unitless(1))))
	assert.Equal(t, "[1,]", value.Inspect(value.List{Elems: []value.Value{value.Unitless(1)}, Sep: value.Comma, Brackets: value.Bracketed}))
	assert.Equal(t, "(a, b) c", value.Inspect(value.NewList(value.Space,
		value.NewList(value.Comma, value.UnquotedString("a"), value.UnquotedString("b")),
		value.UnquotedString("c"))))
	assert.Equal(t, "a b, c", value.Inspect(value.NewList(value.Comma,
		value.NewList(value.Space, value.UnquotedString("a"), value.UnquotedString("b")),
		value.UnquotedString("c"))))
	assert.Equal(t, `("a": (1, 2))`, value.Inspect(value.NewMap(value.Pair{
		Key:   value.QuotedString("a"),
		Value: value.NewList(value.Comma, value.Unitless(1), value.Unitless(2)),
	})))
}

func TestUnits(t *testing.T) {
	u, k := value.Single("px").Mul(value.Single("em"))
	assert.Equal(t, "px*em", u.String())
	assert.Equal(t, 1.0, k)

	u, _ = u.Div(value.Single("s"))
	assert.Equal(t, "px*em/s", u.String())
	assert.True(t, u.Equal(value.Unit{Numer: []string{"em", "px"}, Denom: []string{"s"}}))

	inv, _ := value.None.Div(value.Single("s"))
	assert.Equal(t, "s^-1", inv.String())

	f, ok := value.Single("turn").ConversionFactor(value.Single("deg"))
	require.True(t, ok)
	assert.Equal(t, 360.0, f)

	assert.False(t, value.Single("px").Convertible(value.Single("em")))
	assert.True(t, value.Single("kHz").Convertible(value.Single("Hz")))
}

func TestPredicates(t *testing.T) {
	assert.False(t, value.Truthy(value.False))
	assert.False(t, value.Truthy(value.Nil))
	assert.True(t, value.Truthy(value.Unitless(0)))
	assert.True(t, value.Truthy(value.QuotedString("")))

	assert.True(t, value.IsSpecialFunction(value.Special{Name: "var", Raw: "var(--x)"}))
	assert.True(t, value.IsSpecialFunction(value.UnquotedString("calc(1px + 2px)")))
	assert.False(t, value.IsSpecialFunction(value.QuotedString("calc(1px + 2px)")))
	assert.False(t, value.IsSpecialFunction(value.UnquotedString("calculate")))

	assert.Equal(t, "map", value.TypeName(value.NewMap()))
	assert.Equal(t, "string", value.TypeName(value.Special{Name: "calc"}))
	assert.Equal(t, "arglist", value.TypeName(value.ArgList{}))

	assert.Len(t, value.Elements(value.Unitless(1)), 1)
	assert.Equal(t, value.Comma, value.Separator(value.NewMap()))
	assert.Equal(t, value.Space, value.Separator(value.NewList(value.Undecided)))
}
