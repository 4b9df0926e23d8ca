package css_test

import (
	"testing"

	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/parser/css"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(line, char uint32) position.Position {
	return position.Position{Line: line, Character: char}
}

func TestParseDeclarations(t *testing.T) {
	source := `.button {
  color: lighten(#336699, 10%);
  margin: 1px 2px !important;
  --brand: hsl(120, 50%, 50%);
}`
	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)
	result, err := parser.Parse(source)
	require.NoError(t, err)
	require.Len(t, result.Declarations, 3)

	color := result.Declarations[0]
	assert.Equal(t, "color", color.Property)
	assert.Equal(t, "lighten(#336699, 10%)", color.Raw)
	assert.True(t, color.Known)
	assert.False(t, color.Custom)
	assert.NoError(t, color.Err)
	assert.Equal(t, pos(1, 2), color.Range.Start)
	assert.Equal(t, position.Span{Start: pos(1, 9), End: pos(1, 30)}, color.ValueRange)

	margin := result.Declarations[1]
	assert.Equal(t, "margin", margin.Property)
	assert.True(t, margin.Important)
	list, ok := margin.Value.(*eval.ListExpr)
	require.True(t, ok, "margin value should be a list, got %T", margin.Value)
	assert.Equal(t, value.Space, list.Sep)
	assert.Len(t, list.Elems, 2)

	brand := result.Declarations[2]
	assert.True(t, brand.Custom)
	assert.False(t, brand.Known)
	assert.Equal(t, "hsl(120, 50%, 50%)", brand.Raw)
	assert.Nil(t, brand.Value, "custom property values are not read as expressions")

	require.Len(t, result.Calls, 1)
	assert.Equal(t, "lighten", result.Calls[0].Name)
}

func TestParseCalls(t *testing.T) {
	result, err := css.Parse(`a { color: mix(darken(red, 10%), var(--x), 50%); }`)
	require.NoError(t, err)
	require.Len(t, result.Calls, 3)

	names := make([]string, len(result.Calls))
	for i, c := range result.Calls {
		names[i] = c.Name
		assert.Same(t, result.Declarations[0], c.Declaration)
	}
	assert.Equal(t, []string{"mix", "darken", "var"}, names)

	mix, ok := result.Calls[0].Expr.(*eval.Call)
	require.True(t, ok)
	assert.Len(t, mix.Args, 3)

	special, ok := result.Calls[2].Expr.(*eval.SpecialCall)
	require.True(t, ok)
	assert.Equal(t, "var(--x)", special.Raw)
	assert.Equal(t, position.Span{Start: pos(0, 33), End: pos(0, 41)}, result.Calls[2].Range)
}

func TestParseUTF16Positions(t *testing.T) {
	tests := []struct {
		name  string
		css   string
		start position.Position
	}{
		{"ASCII only", ".button { color: red; }", pos(0, 17)},
		{"emoji in a comment", ".button { /* 🎨 */ color: red; }", pos(0, 26)},
		{"CJK in a comment", ".button { /* 色 */ color: red; }", pos(0, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := css.Parse(tt.css)
			require.NoError(t, err)
			require.Len(t, result.Declarations, 1)
			assert.Equal(t, tt.start, result.Declarations[0].ValueRange.Start)
		})
	}
}

func TestParseExpression(t *testing.T) {
	ev := eval.New(builtinRegistry)
	tests := []struct {
		source string
		want   string
	}{
		{"red", "red"},
		{"#336699", "#336699"},
		{"lighten(#336699, 10%)", "#4080bf"},
		{"hsl(120, 50%, 50%)", "#40bf40"},
		{"rgba(255, 0, 0, 0.5)", "rgba(255, 0, 0, 0.5)"},
		{"1px 2px", "1px 2px"},
		{"a, b", "a, b"},
		{`"quoted"`, `"quoted"`},
		{"true", "true"},
		{"translate(10px, 20px)", "translate(10px, 20px)"},
		{"calc(100% - 10px)", "calc(100% - 10px)"},
		{"hsl(var(--h), 50%, 50%)", "hsl(var(--h), 50%, 50%)"},
		{"[a, b]", "[a, b]"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			x, err := css.ParseExpression(tt.source)
			require.NoError(t, err)
			v, err := ev.Eval(x)
			require.NoError(t, err)
			got, err := ev.Printer().ToCSS(v, x.Span())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpressionSpans(t *testing.T) {
	x, err := css.ParseExpression("lighten(red, 10%)")
	require.NoError(t, err)
	assert.Equal(t, position.Span{Start: pos(0, 0), End: pos(0, 17)}, x.Span())

	call, ok := x.(*eval.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	assert.Equal(t, position.Span{Start: pos(0, 8), End: pos(0, 11)}, call.Args[0].Span())
}

func TestParseInvalidCSS(t *testing.T) {
	result, err := css.Parse(`a { color: ; width: 1px; }`)
	require.NoError(t, err, "Parse should recover from malformed declarations")
	for _, d := range result.Declarations {
		if d.Property == "width" {
			assert.NoError(t, d.Err)
		}
	}

	_, err = css.ParseExpression("")
	assert.ErrorIs(t, err, sasserr.ErrSyntax)
}

func TestParseEmptyCSS(t *testing.T) {
	result, err := css.Parse("")
	require.NoError(t, err)
	assert.Empty(t, result.Declarations)
	assert.Empty(t, result.Calls)
}
