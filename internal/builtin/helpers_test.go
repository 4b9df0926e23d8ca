package builtin_test

import (
	"testing"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/builtin"
	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/value"
	"github.com/stretchr/testify/require"
)

var (
	registry = builtin.NewRegistry()
	callSpan = position.Span{
		Start: position.Position{Line: 1, Character: 9},
		End:   position.Position{Line: 1, Character: 30},
	}
)

// call invokes a builtin with positional values.
func call(t *testing.T, name string, vals ...value.Value) (value.Value, error) {
	t.Helper()
	return callWith(t, name, args.Of(callSpan, vals...))
}

func callWith(t *testing.T, name string, a *args.CallArgs) (value.Value, error) {
	t.Helper()
	f, ok := registry.Lookup(name)
	require.True(t, ok, "no builtin %s", name)
	return f(a, builtin.NewContext(registry))
}

// mustCall invokes a builtin that is expected to succeed.
func mustCall(t *testing.T, name string, vals ...value.Value) value.Value {
	t.Helper()
	v, err := call(t, name, vals...)
	require.NoError(t, err)
	return v
}

func css(t *testing.T, v value.Value) string {
	t.Helper()
	s, err := value.ToCSS(v, callSpan)
	require.NoError(t, err)
	return s
}

func num(n float64) value.Number            { return value.Unitless(n) }
func pct(n float64) value.Number            { return value.Percentage(n) }
func unit(n float64, u string) value.Number { return value.WithUnit(n, u) }
func str(s string) value.String             { return value.UnquotedString(s) }
func quoted(s string) value.String          { return value.QuotedString(s) }

func rgb(r, g, b float64) value.Color {
	return value.NewColor(color.FromRGBA(r, g, b, 1))
}

func rgba(r, g, b, a float64) value.Color {
	return value.NewColor(color.FromRGBA(r, g, b, a))
}

func special(raw string) value.Special {
	name := raw
	for i, r := range raw {
		if r == '(' {
			name = raw[:i]
			break
		}
	}
	return value.Special{Name: name, Raw: raw}
}

func list(sep value.ListSeparator, elems ...value.Value) value.List {
	return value.NewList(sep, elems...)
}
