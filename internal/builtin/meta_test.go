package builtin_test

import (
	"errors"
	"testing"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/builtin"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIf(t *testing.T) {
	boom := func() (value.Value, error) { return nil, errors.New("evaluated the wrong branch") }

	a := args.New(callSpan).
		AddValue(value.True).
		AddValue(num(1)).
		Add(boom)
	got, err := callWith(t, "if", a)
	require.NoError(t, err)
	assert.Equal(t, num(1), got)

	a = args.New(callSpan).
		AddValue(value.Nil).
		Add(boom).
		AddValue(num(2))
	got, err = callWith(t, "if", a)
	require.NoError(t, err)
	assert.Equal(t, num(2), got)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{num(1), "number"},
		{quoted("a"), "string"},
		{special("var(--x)"), "string"},
		{rgb(1, 2, 3), "color"},
		{list(value.Space, num(1), num(2)), "list"},
		{pairs(str("a"), num(1)), "map"},
		{value.True, "bool"},
		{value.Nil, "null"},
		{value.ArgList{Sep: value.Comma}, "arglist"},
		{value.Function{Name: "rgb", Builtin: true}, "function"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, str(tt.want), mustCall(t, "type-of", tt.v))
		})
	}
}

func TestInspectAndFeatures(t *testing.T) {
	assert.Equal(t, str("null"), mustCall(t, "inspect", value.Nil))
	assert.Equal(t, str(`"a"`), mustCall(t, "inspect", quoted("a")))
	assert.Equal(t, str("(a: 1)"), mustCall(t, "inspect", pairs(str("a"), num(1))))

	assert.Equal(t, value.True, mustCall(t, "feature-exists", quoted("at-error")))
	assert.Equal(t, value.False, mustCall(t, "feature-exists", quoted("time-travel")))
}

// userFunctions stands in for an evaluator with one user-defined function.
type userFunctions struct {
	called *args.CallArgs
}

func (u *userFunctions) FunctionExists(name string) bool {
	return name == "double"
}

func (u *userFunctions) CallFunction(name string, a *args.CallArgs) (value.Value, error) {
	u.called = a
	if f, ok := registry.Lookup(name); ok {
		return f(a, builtin.NewContext(registry))
	}
	n, err := a.Arg(0, "n")
	if err != nil {
		return nil, err
	}
	return value.Unitless(n.(value.Number).Num * 2), nil
}

func TestFunctionReferences(t *testing.T) {
	user := &userFunctions{}
	ctx := builtin.NewContext(registry)
	ctx.Caller = user

	invoke := func(name string, a *args.CallArgs) (value.Value, error) {
		f, ok := registry.Lookup(name)
		require.True(t, ok)
		return f(a, ctx)
	}

	t.Run("function-exists", func(t *testing.T) {
		for name, want := range map[string]bool{"rgb": true, "double": true, "nope": false} {
			got, err := invoke("function-exists", args.Of(callSpan, quoted(name)))
			require.NoError(t, err)
			assert.Equal(t, value.FromBool(want), got, name)
		}
	})

	t.Run("get-function", func(t *testing.T) {
		got, err := invoke("get-function", args.Of(callSpan, quoted("rgb")))
		require.NoError(t, err)
		assert.Equal(t, value.Function{Name: "rgb", Builtin: true}, got)
		assert.Equal(t, `get-function("rgb")`, value.Inspect(got))

		got, err = invoke("get-function", args.Of(callSpan, quoted("double")))
		require.NoError(t, err)
		assert.Equal(t, value.Function{Name: "double"}, got)

		got, err = invoke("get-function", args.New(callSpan).
			AddValue(quoted("blur")).
			AddNamedValue("css", value.True))
		require.NoError(t, err)
		assert.Equal(t, value.Function{Name: "blur"}, got)

		_, err = invoke("get-function", args.Of(callSpan, quoted("nope")))
		assert.EqualError(t, err, "Function not found: nope")
	})

	t.Run("call", func(t *testing.T) {
		got, err := invoke("call", args.Of(callSpan, value.Function{Name: "double"}, num(21)))
		require.NoError(t, err)
		assert.Equal(t, num(42), got)

		got, err = invoke("call", args.New(callSpan).
			AddValue(value.Function{Name: "rgb", Builtin: true}).
			AddValue(num(0)).
			AddNamedValue("green", num(0)).
			AddNamedValue("blue", num(255)))
		require.NoError(t, err)
		assert.Equal(t, "blue", css(t, got))
		assert.Equal(t, callSpan, user.called.Span())
	})

	t.Run("call without caller", func(t *testing.T) {
		got := mustCall(t, "call", quoted("unquote"), quoted("x"))
		assert.Equal(t, str("x"), got)

		_, err := call(t, "call", quoted("double"), num(1))
		assert.ErrorIs(t, err, sasserr.ErrUndefinedFunction)

		_, err = call(t, "call", num(1))
		assert.EqualError(t, err, "$function: 1 is not a function reference.")
	})
}

func TestKeywords(t *testing.T) {
	rest, err := args.New(callSpan).
		AddValue(num(1)).
		AddNamedValue("$primary_color", rgb(255, 0, 0)).
		Rest()
	require.NoError(t, err)

	got := mustCall(t, "keywords", rest)
	assert.Equal(t, "(primary-color: red)", value.Inspect(got))

	_, err = call(t, "keywords", list(value.Comma, num(1)))
	assert.EqualError(t, err, "$args: 1 is not an argument list.")
}
