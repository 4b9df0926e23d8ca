package builtin_test

import (
	"testing"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		args []value.Value
		want string
	}{
		{"channels", "rgb", []value.Value{num(255), num(0), num(0)}, "red"},
		{"percent channels", "rgb", []value.Value{pct(100), pct(0), pct(100)}, "fuchsia"},
		{"hex output", "rgb", []value.Value{num(18), num(52), num(86)}, "#123456"},
		{"clamped", "rgb", []value.Value{num(300), num(-5), num(0)}, "red"},
		{"alpha", "rgba", []value.Value{num(255), num(0), num(0), num(0.5)}, "rgba(255, 0, 0, 0.5)"},
		{"percent alpha", "rgb", []value.Value{num(0), num(0), num(0), pct(30)}, "rgba(0, 0, 0, 0.3)"},
		{"list", "rgb", []value.Value{list(value.Space, num(0), num(128), num(0))}, "green"},
		{"color and alpha", "rgba", []value.Value{rgb(0, 0, 255), num(0.25)}, "rgba(0, 0, 255, 0.25)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, css(t, mustCall(t, tt.fn, tt.args...)))
		})
	}

	t.Run("keywords", func(t *testing.T) {
		a := args.New(callSpan).
			AddNamedValue("$blue", num(255)).
			AddNamedValue("$red", num(0)).
			AddNamedValue("$green", num(0))
		got, err := callWith(t, "rgb", a)
		require.NoError(t, err)
		assert.Equal(t, "blue", css(t, got))
	})
}

func TestRGBPassthrough(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		args []value.Value
		want string
	}{
		{"channel", "rgb", []value.Value{special("var(--r)"), num(0), num(0)}, "rgb(var(--r), 0, 0)"},
		{"alpha", "rgba", []value.Value{num(1), num(2), num(3), special("var(--a)")}, "rgba(1, 2, 3, var(--a))"},
		{"color special", "rgba", []value.Value{special("var(--c)"), num(0.5)}, "rgba(var(--c), 0.5)"},
		{"alpha special", "rgba", []value.Value{rgb(255, 0, 0), special("var(--a)")}, "rgba(255, 0, 0, var(--a))"},
		{"list", "rgb", []value.Value{list(value.Space, num(1), special("calc(2 * 3)"), num(3))}, "rgb(1 calc(2 * 3) 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, str(tt.want), mustCall(t, tt.fn, tt.args...))
		})
	}
}

func TestRGBErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		args []value.Value
		want string
		kind error
	}{
		{"no arguments", "rgb", nil, "Missing argument $channels.", sasserr.ErrArity},
		{"two numbers", "rgb", []value.Value{num(1), num(2)}, "Missing argument $blue.", sasserr.ErrArity},
		{"not a color", "rgba", []value.Value{quoted("x"), num(1)}, `$color: "x" is not a color.`, sasserr.ErrType},
		{"channel units", "rgb", []value.Value{unit(1, "px"), num(2), num(3)},
			`$red: Expected 1px to have no units or "%".`, sasserr.ErrType},
		{"list too long", "rgb", []value.Value{list(value.Space, num(1), num(2), num(3), num(4))},
			"Only 3 elements allowed, but 4 were passed.", sasserr.ErrStructure},
		{"list too short", "rgb", []value.Value{list(value.Space, num(1))}, "Missing element $green.", sasserr.ErrStructure},
		{"too many", "rgba", []value.Value{num(1), num(2), num(3), num(4), num(5)},
			"Only 4 arguments allowed, but 5 were passed.", sasserr.ErrArity},
		{"mix weight", "mix", []value.Value{rgb(0, 0, 0), rgb(1, 1, 1), pct(120)},
			"$weight: Expected 120% to be within 0% and 100%.", sasserr.ErrRange},
		{"getter type", "red", []value.Value{num(1)}, "$color: 1 is not a color.", sasserr.ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(t, tt.fn, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestChannelsAndMix(t *testing.T) {
	c := rgb(12.6, 128, 254.4)
	assert.Equal(t, num(13), mustCall(t, "red", c))
	assert.Equal(t, num(128), mustCall(t, "green", c))
	assert.Equal(t, num(254), mustCall(t, "blue", c))

	red, blue := rgb(255, 0, 0), rgb(0, 0, 255)
	assert.Equal(t, "purple", css(t, mustCall(t, "mix", red, blue)))
	assert.Equal(t, "red", css(t, mustCall(t, "mix", red, blue, pct(100))))
	assert.Equal(t, "#4000bf", css(t, mustCall(t, "mix", red, blue, pct(25))))
}

func TestOpacity(t *testing.T) {
	translucent := rgba(0, 0, 0, 0.5)

	assert.Equal(t, num(0.5), mustCall(t, "alpha", translucent))
	assert.Equal(t, num(1), mustCall(t, "opacity", rgb(1, 2, 3)))
	assert.Equal(t, str("alpha(opacity=50)"), mustCall(t, "alpha", str("opacity=50")))
	assert.Equal(t, str("opacity(50%)"), mustCall(t, "opacity", pct(50)))
	assert.Equal(t, str("opacity(var(--o))"), mustCall(t, "opacity", special("var(--o)")))

	for _, fn := range []string{"opacify", "fade-in"} {
		got := mustCall(t, fn, translucent, num(0.25))
		assert.Equal(t, "rgba(0, 0, 0, 0.75)", css(t, got), fn)
	}
	for _, fn := range []string{"transparentize", "fade-out"} {
		got := mustCall(t, fn, rgb(255, 0, 0), num(0.25))
		assert.Equal(t, "rgba(255, 0, 0, 0.75)", css(t, got), fn)
	}
	assert.Equal(t, "black", css(t, mustCall(t, "opacify", translucent, num(1))))

	_, err := call(t, "fade-out", rgb(255, 0, 0), num(2))
	assert.EqualError(t, err, "$amount: Expected 2 to be within 0 and 1.")
	assert.ErrorIs(t, err, sasserr.ErrRange)

	_, err = call(t, "alpha", unit(1, "px"))
	assert.EqualError(t, err, "$color: 1px is not a color.")
}

func TestIEHexStr(t *testing.T) {
	assert.Equal(t, str("#FFFF0000"), mustCall(t, "ie-hex-str", rgb(255, 0, 0)))
	assert.Equal(t, str("#80000000"), mustCall(t, "ie-hex-str", rgba(0, 0, 0, 0.5)))
}
