package documentcolor

import (
	"slices"

	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/numeric"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/stylesheet"
	"bennypowers.dev/sasseval/internal/value"
	"bennypowers.dev/sasseval/lsp/methods/textDocument/diagnostic"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DocumentColor handles the textDocument/documentColor request. A
// declaration that evaluates to a color is reported over its whole value;
// otherwise each color literal or color-valued call inside it is.
func DocumentColor(req *types.RequestContext, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := params.TextDocument.URI
	log.Debug("DocumentColor requested: %s", uri)

	doc := req.Server.Document(uri)
	if doc == nil || !doc.IsStylesheet() {
		return nil, nil
	}

	result, err := req.Server.Evaluate(uri)
	if err != nil {
		return nil, err
	}

	ev := req.Server.Evaluator()
	colors := []protocol.ColorInformation{}
	for _, d := range result.Declarations {
		colors = append(colors, declarationColors(req, ev, d)...)
	}

	log.Debug("Found %d colors", len(colors))
	return colors, nil
}

func declarationColors(req *types.RequestContext, ev *eval.Evaluator, d *stylesheet.Declaration) []protocol.ColorInformation {
	if c, ok := d.Value.(value.Color); ok {
		return []protocol.ColorInformation{info(c.Color, d.ValueRange)}
	}
	if d.Expr == nil || d.Err != nil {
		return nil
	}

	var colors []protocol.ColorInformation
	eval.Walk(d.Expr, func(x eval.Expr) bool {
		switch x := x.(type) {
		case *eval.Literal:
			if c, ok := x.Value.(value.Color); ok {
				colors = append(colors, info(c.Color, x.Loc))
			}
		case *eval.Call:
			v, err := ev.Eval(x)
			if err != nil {
				// the declaration evaluated, so this is a lazily skipped argument
				req.AddWarning(err)
				return false
			}
			if c, ok := v.(value.Color); ok {
				colors = append(colors, info(c.Color, x.Loc))
				return false
			}
		}
		return true
	})
	return colors
}

func info(c *color.Color, span position.Span) protocol.ColorInformation {
	return protocol.ColorInformation{
		Range: diagnostic.ToRange(span),
		Color: protocol.Color{
			Red:   protocol.Decimal(c.Red() / 255),
			Green: protocol.Decimal(c.Green() / 255),
			Blue:  protocol.Decimal(c.Blue() / 255),
			Alpha: protocol.Decimal(c.Alpha()),
		},
	}
}

// ColorPresentation handles the textDocument/colorPresentation request,
// offering the canonical, hex, rgba() and hsl() spellings of the color.
func ColorPresentation(req *types.RequestContext, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	log.Debug("ColorPresentation requested: %s", params.TextDocument.URI)

	c := color.FromRGBA(
		float64(params.Color.Red)*255,
		float64(params.Color.Green)*255,
		float64(params.Color.Blue)*255,
		float64(params.Color.Alpha),
	)

	hex := c.Hex()
	if !numeric.Equal(c.Alpha(), 1) {
		// #rrggbbaa
		hex = c.ToCSSParser().HexString()
	}

	var labels []string
	for _, label := range []string{c.ToCSS(), hex, c.RGBAString(), c.HSLString()} {
		if !slices.Contains(labels, label) {
			labels = append(labels, label)
		}
	}

	presentations := make([]protocol.ColorPresentation, 0, len(labels))
	for _, label := range labels {
		presentations = append(presentations, protocol.ColorPresentation{
			Label:    label,
			TextEdit: &protocol.TextEdit{Range: params.Range, NewText: label},
		})
	}
	return presentations, nil
}
