package sasserr_test

import (
	"errors"
	"fmt"
	"testing"

	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		sentinel error
	}{
		{"missing argument", sasserr.MissingArgument("channels"), "Missing argument $channels.", sasserr.ErrArity},
		{"too many arguments", sasserr.TooManyArguments(2, 3), "Only 2 arguments allowed, but 3 were passed.", sasserr.ErrArity},
		{"singular arity", sasserr.TooManyArguments(1, 1), "Only 1 argument allowed, but 1 was passed.", sasserr.ErrArity},
		{"unknown keyword", sasserr.NoArgumentNamed("colour"), "No argument named $colour.", sasserr.ErrArity},
		{"not a color", sasserr.NotA("color", "5px", "color"), "$color: 5px is not a color.", sasserr.ErrType},
		{"article", sasserr.NotA("n", "foo", "integer"), "$n: foo is not an integer.", sasserr.ErrType},
		{"no param", sasserr.NotA("", "red", "number"), "red is not a number.", sasserr.ErrType},
		{"detail", sasserr.TypeDetail("alpha", `Expected 2px to have no units or "%".`), `$alpha: Expected 2px to have no units or "%".`, sasserr.ErrType},
		{"range", sasserr.OutOfRange("amount", "150%", "0%", "100%"), "$amount: Expected 150% to be within 0% and 100%.", sasserr.ErrRange},
		{"too many elements", sasserr.TooManyElements(3, 4), "Only 3 elements allowed, but 4 were passed.", sasserr.ErrStructure},
		{"missing element", sasserr.MissingElement("hue"), "Missing element $hue.", sasserr.ErrStructure},
		{"units", sasserr.IncompatibleUnits("px", "deg"), "Incompatible units px and deg.", sasserr.ErrUnits},
		{"operation", sasserr.UndefinedOperation("red", "+", "1px"), `Undefined operation "red + 1px".`, sasserr.ErrOperation},
		{"division by zero", sasserr.DivisionByZero("1px", "/"), `Undefined operation "1px / 0": division by zero.`, sasserr.ErrDivisionByZero},
		{"undefined function", sasserr.UndefinedFunction("nope"), "Undefined function.", sasserr.ErrUndefinedFunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestWithSpan(t *testing.T) {
	span := position.Span{
		Start: position.Position{Line: 3, Character: 4},
		End:   position.Position{Line: 3, Character: 20},
	}

	t.Run("attaches span to unlocated error", func(t *testing.T) {
		err := sasserr.WithSpan(sasserr.MissingArgument("color"), span)
		got, ok := sasserr.SpanOf(err)
		require.True(t, ok)
		assert.Equal(t, span, got)
		assert.ErrorIs(t, err, sasserr.ErrArity)
	})

	t.Run("keeps the innermost span", func(t *testing.T) {
		inner := position.Span{Start: position.Position{Line: 1}, End: position.Position{Line: 1, Character: 2}}
		err := sasserr.WithSpan(sasserr.WithSpan(sasserr.NotA("color", "1", "color"), inner), span)
		got, _ := sasserr.SpanOf(err)
		assert.Equal(t, inner, got)
	})

	t.Run("foreign errors pass through", func(t *testing.T) {
		foreign := errors.New("disk on fire")
		assert.Same(t, foreign, sasserr.WithSpan(foreign, span))
		_, ok := sasserr.SpanOf(foreign)
		assert.False(t, ok)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, sasserr.WithSpan(nil, span))
	})

	t.Run("typed details survive errors.As", func(t *testing.T) {
		err := fmt.Errorf("evaluating: %w", sasserr.WithSpan(sasserr.OutOfRange("weight", "120%", "0%", "100%"), span))
		var rangeErr *sasserr.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "weight", rangeErr.Param)
		assert.Equal(t, "100%", rangeErr.Max)
	})
}

func TestFormat(t *testing.T) {
	span := position.Span{Start: position.Position{Line: 1, Character: 9}, End: position.Position{Line: 1, Character: 20}}
	err := sasserr.WithSpan(sasserr.MissingArgument("channels"), span)
	assert.Equal(t, "main.scss:2:10: Missing argument $channels.", sasserr.Format("main.scss", err))
	assert.Equal(t, "main.scss: boom", sasserr.Format("main.scss", errors.New("boom")))
}
