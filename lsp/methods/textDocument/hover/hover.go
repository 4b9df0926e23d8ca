package hover

import (
	"bytes"
	"fmt"
	"text/template"

	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/stylesheet"
	"bennypowers.dev/sasseval/internal/value"
	"bennypowers.dev/sasseval/lsp/methods/textDocument/diagnostic"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// content is what a hover shows for an expression
type content struct {
	Input  string
	Output string
	Type   string
	Err    error
}

var markdownTemplate = template.Must(template.New("hover").Parse(
	"`{{.Input}}`\n\n" +
		"{{if .Err}}❌ {{.Err}}{{else}}**Value**: `{{.Output}}`\n\n**Type**: `{{.Type}}`{{end}}\n"))

var plaintextTemplate = template.Must(template.New("hoverPlaintext").Parse(
	"{{.Input}}\n\n" +
		"{{if .Err}}Error: {{.Err}}{{else}}Value: {{.Output}}\nType: {{.Type}}{{end}}\n"))

// render renders hover content in the specified format
func render(c content, format protocol.MarkupKind) (string, error) {
	tmpl := markdownTemplate
	if format == protocol.MarkupKindPlainText {
		tmpl = plaintextTemplate
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Hover handles the textDocument/hover request. On a function call it shows
// what the innermost call evaluates to; elsewhere in a declaration it
// shows the declaration's value.
func Hover(req *types.RequestContext, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	pos := position.Position{Line: params.Position.Line, Character: params.Position.Character}

	log.Debug("Hover requested: %s at %s", uri, pos)

	doc := req.Server.Document(uri)
	if doc == nil || !doc.IsStylesheet() {
		return nil, nil
	}

	result, err := req.Server.Evaluate(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %s: %w", uri, err)
	}

	c, span, ok := lookup(req.Server.Evaluator(), result, pos, doc.Content())
	if !ok {
		return nil, nil
	}

	format := req.Server.PreferredHoverFormat()
	text, err := render(c, format)
	if err != nil {
		return nil, fmt.Errorf("failed to render hover: %w", err)
	}

	r := diagnostic.ToRange(span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: format, Value: text},
		Range:    &r,
	}, nil
}

func lookup(ev *eval.Evaluator, result *stylesheet.Result, pos position.Position, source string) (content, position.Span, bool) {
	if call := result.CallAt(pos); call != nil {
		start := position.Offset(source, call.Range.Start)
		end := position.Offset(source, call.Range.End)
		c := content{Input: source[start:end]}

		v, err := ev.Eval(call.Expr)
		if err == nil {
			c.Output, err = ev.Printer().ToCSS(v, call.Range)
			c.Type = value.TypeName(v)
		}
		c.Err = err
		return c, call.Range, true
	}

	if d := result.DeclarationAt(pos); d != nil && d.ValueRange.Contains(pos) {
		c := content{Input: d.Input, Output: d.Output, Err: d.Err}
		if d.Value != nil {
			c.Type = value.TypeName(d.Value)
		}
		return c, d.ValueRange, true
	}
	return content{}, position.Span{}, false
}
