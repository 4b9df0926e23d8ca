// Package css reads CSS declarations with tree-sitter and turns their
// values into SassScript expressions.
package css

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"bennypowers.dev/sasseval/internal/color"
	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/symbols"
	"bennypowers.dev/sasseval/internal/value"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ClosePool closes all parsers in the pool
func ClosePool() {
	for range 100 {
		if p, ok := parserPool.Get().(*Parser); ok && p != nil {
			p.Close()
		}
	}
}

// Parse reads every declaration in source with a pooled parser.
func Parse(source string) (*ParseResult, error) {
	p := AcquireParser()
	defer ReleaseParser(p)
	return p.Parse(source)
}

// ParseExpression reads a single declaration value, such as
// "lighten(#336699, 10%)". Spans are relative to source.
func ParseExpression(source string) (eval.Expr, error) {
	p := AcquireParser()
	defer ReleaseParser(p)

	const prefix = "x{x:"
	r := &reader{src: []byte(prefix + source + "}"), text: source, shift: len(prefix)}
	result, err := p.read(r)
	if err != nil {
		return nil, err
	}
	if len(result.Declarations) != 1 {
		return nil, sasserr.Syntaxf("Expected a single expression.")
	}
	d := result.Declarations[0]
	return d.Value, d.Err
}

// Parse reads CSS source and extracts its declarations and the function
// calls in their values.
func (p *Parser) Parse(source string) (*ParseResult, error) {
	return p.read(&reader{src: []byte(source), text: source})
}

func (p *Parser) read(r *reader) (*ParseResult, error) {
	tree := p.parser.Parse(r.src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	result := &ParseResult{
		Declarations: []*Declaration{},
		Calls:        []*CallSite{},
	}
	r.walkTree(tree.RootNode(), result)
	return result, nil
}

// reader converts tree-sitter nodes to expressions. When the text was
// wrapped before parsing, shift is the length of the wrapper's prefix.
type reader struct {
	src   []byte
	text  string
	shift int
}

func (r *reader) content(n *sitter.Node) string {
	return string(r.src[n.StartByte():n.EndByte()])
}

func (r *reader) offset(b uint) int {
	return min(max(int(b)-r.shift, 0), len(r.text))
}

func (r *reader) span(n *sitter.Node) position.Span {
	return position.FromByteOffsets(r.text, r.offset(n.StartByte()), r.offset(n.EndByte()))
}

func (r *reader) spanOf(nodes []*sitter.Node) position.Span {
	return position.FromByteOffsets(r.text,
		r.offset(nodes[0].StartByte()),
		r.offset(nodes[len(nodes)-1].EndByte()))
}

// walkTree recursively walks the tree to find declarations
func (r *reader) walkTree(node *sitter.Node, result *ParseResult) {
	if node == nil {
		return
	}
	if node.Kind() == "declaration" {
		d := r.declaration(node)
		result.Declarations = append(result.Declarations, d)
		collectCalls(d, result)
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		r.walkTree(node.Child(i), result)
	}
}

func collectCalls(d *Declaration, result *ParseResult) {
	eval.Walk(d.Value, func(x eval.Expr) bool {
		switch x := x.(type) {
		case *eval.Call:
			result.Calls = append(result.Calls, &CallSite{Name: x.Name, Expr: x, Range: x.Loc, Declaration: d})
		case *eval.SpecialCall:
			result.Calls = append(result.Calls, &CallSite{Name: x.Name, Expr: x, Range: x.Loc, Declaration: d})
			return false
		}
		return true
	})
}

// declaration reads property: value [!important];
func (r *reader) declaration(node *sitter.Node) *Declaration {
	d := &Declaration{Range: r.span(node)}

	var values []*sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "property_name":
			d.Property = r.content(child)
		case ":", ";", "comment":
		case "important":
			d.Important = true
		default:
			values = append(values, child)
		}
	}
	_, d.Known = symbols.ParseProperty(d.Property)
	d.Custom = strings.HasPrefix(d.Property, "--")

	var valueNodes []*sitter.Node
	for _, v := range values {
		if v.Kind() != "," {
			valueNodes = append(valueNodes, v)
		}
	}
	if len(valueNodes) == 0 {
		d.ValueRange = d.Range
		d.Err = sasserr.WithSpan(sasserr.Syntaxf("Expected expression."), d.Range)
		return d
	}
	d.ValueRange = r.spanOf(valueNodes)
	d.Raw = r.text[r.offset(valueNodes[0].StartByte()):r.offset(valueNodes[len(valueNodes)-1].EndByte())]
	// custom property values are arbitrary tokens, kept as written
	if d.Custom {
		return d
	}

	if node.HasError() {
		d.Err = sasserr.WithSpan(sasserr.Syntaxf("Invalid CSS value %q.", d.Raw), d.ValueRange)
		return d
	}
	x, err := r.list(split(values))
	if err != nil {
		d.Err = err
		return d
	}
	d.Value = x
	return d
}

// split groups value nodes on commas. Semicolons separate arguments
// the same way inside a call.
func split(nodes []*sitter.Node) [][]*sitter.Node {
	groups := [][]*sitter.Node{nil}
	for _, n := range nodes {
		switch {
		case n.Kind() == "," || n.Kind() == ";":
			groups = append(groups, nil)
		case n.Kind() == "comment":
		case n.IsNamed() || n.IsError():
			groups[len(groups)-1] = append(groups[len(groups)-1], n)
		}
	}
	out := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func children(n *sitter.Node) []*sitter.Node {
	out := make([]*sitter.Node, 0, n.ChildCount())
	for i := uint(0); i < n.ChildCount(); i++ {
		out = append(out, n.Child(i))
	}
	return out
}

// list reads comma-separated groups of space-separated values.
func (r *reader) list(groups [][]*sitter.Node) (eval.Expr, error) {
	if len(groups) == 0 {
		return nil, sasserr.Syntaxf("Expected expression.")
	}
	elems := make([]eval.Expr, 0, len(groups))
	for _, g := range groups {
		x, err := r.spaceList(g)
		if err != nil {
			return nil, err
		}
		elems = append(elems, x)
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	first, last := groups[0], groups[len(groups)-1]
	return &eval.ListExpr{
		Elems: elems,
		Sep:   value.Comma,
		Loc:   r.spanOf([]*sitter.Node{first[0], last[len(last)-1]}),
	}, nil
}

func (r *reader) spaceList(nodes []*sitter.Node) (eval.Expr, error) {
	if len(nodes) == 1 {
		return r.expr(nodes[0])
	}
	elems := make([]eval.Expr, 0, len(nodes))
	for _, n := range nodes {
		x, err := r.expr(n)
		if err != nil {
			return nil, err
		}
		elems = append(elems, x)
	}
	return &eval.ListExpr{Elems: elems, Sep: value.Space, Loc: r.spanOf(nodes)}, nil
}

func (r *reader) expr(n *sitter.Node) (eval.Expr, error) {
	switch n.Kind() {
	case "integer_value", "float_value":
		return r.number(n)
	case "color_value":
		c, err := color.Parse(r.content(n))
		if err != nil {
			return nil, sasserr.WithSpan(sasserr.Syntaxf("Invalid color %q.", r.content(n)), r.span(n))
		}
		return &eval.Literal{Value: value.NewColor(c), Loc: r.span(n)}, nil
	case "string_value":
		return r.str(n), nil
	case "plain_value", "identifier":
		return r.plain(n)
	case "call_expression":
		return r.call(n)
	case "binary_expression":
		return r.binary(n)
	case "parenthesized_value":
		inner, err := r.list(split(children(n)))
		if err != nil {
			return nil, sasserr.WithSpan(err, r.span(n))
		}
		return &eval.Paren{Inner: inner, Loc: r.span(n)}, nil
	case "grid_value":
		return r.bracketed(n)
	case "ERROR":
		return nil, sasserr.WithSpan(sasserr.Syntaxf("Invalid CSS value %q.", r.content(n)), r.span(n))
	}
	return &eval.Literal{Value: value.UnquotedString(r.content(n)), Loc: r.span(n)}, nil
}

func (r *reader) number(n *sitter.Node) (eval.Expr, error) {
	text := r.content(n)
	var unit string
	for _, c := range children(n) {
		if c.Kind() == "unit" {
			unit = r.content(c)
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(text, unit), 64)
	if err != nil {
		return nil, sasserr.WithSpan(sasserr.Syntaxf("Invalid number %q.", text), r.span(n))
	}
	num := value.Unitless(f)
	if unit != "" {
		num = value.WithUnit(f, unit)
	}
	return &eval.Literal{Value: num, Loc: r.span(n)}, nil
}

func (r *reader) str(n *sitter.Node) eval.Expr {
	text := r.content(n)
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	text = strings.NewReplacer(`\"`, `"`, `\'`, `'`, `\\`, `\`).Replace(text)
	return &eval.Literal{Value: value.QuotedString(text), Loc: r.span(n)}
}

// plain reads an identifier: a keyword, a color name or an unquoted string.
func (r *reader) plain(n *sitter.Node) (eval.Expr, error) {
	text := r.content(n)
	lit := func(v value.Value) (eval.Expr, error) {
		return &eval.Literal{Value: v, Loc: r.span(n)}, nil
	}
	if kw, ok := symbols.ParseKeyword(text); ok {
		switch kw {
		case symbols.True:
			return lit(value.True)
		case symbols.False:
			return lit(value.False)
		case symbols.Null:
			return lit(value.Nil)
		}
	}
	lower := strings.ToLower(text)
	if _, ok := color.LookupName(lower); ok || lower == "transparent" {
		c, err := color.Parse(text)
		if err != nil {
			return nil, sasserr.WithSpan(err, r.span(n))
		}
		return lit(value.NewColor(c))
	}
	return lit(value.UnquotedString(text))
}

func (r *reader) call(n *sitter.Node) (eval.Expr, error) {
	var name string
	var arguments *sitter.Node
	for _, c := range children(n) {
		switch c.Kind() {
		case "function_name":
			name = r.content(c)
		case "arguments":
			arguments = c
		}
	}
	if value.IsSpecialName(name) {
		return &eval.SpecialCall{Name: name, Raw: r.content(n), Loc: r.span(n)}, nil
	}

	call := &eval.Call{Name: name, Loc: r.span(n)}
	if arguments == nil {
		return call, nil
	}
	for _, g := range split(children(arguments)) {
		x, err := r.spaceList(g)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, x)
	}
	return call, nil
}

func (r *reader) binary(n *sitter.Node) (eval.Expr, error) {
	var operands []eval.Expr
	var opText string
	for _, c := range children(n) {
		switch {
		case c.Kind() == "comment":
		case c.IsNamed():
			x, err := r.expr(c)
			if err != nil {
				return nil, err
			}
			operands = append(operands, x)
		default:
			opText = c.Kind()
		}
	}
	op, ok := eval.ParseOp(opText)
	if !ok || len(operands) != 2 {
		return nil, sasserr.WithSpan(sasserr.Syntaxf("Invalid operation %q.", r.content(n)), r.span(n))
	}
	return &eval.Binary{Op: op, Left: operands[0], Right: operands[1], Loc: r.span(n)}, nil
}

// bracketed reads a [a b] list.
func (r *reader) bracketed(n *sitter.Node) (eval.Expr, error) {
	groups := split(children(n))
	list := &eval.ListExpr{Sep: value.Space, Brackets: value.Bracketed, Loc: r.span(n)}
	if len(groups) > 1 {
		list.Sep = value.Comma
	}
	for _, g := range groups {
		x, err := r.spaceList(g)
		if err != nil {
			return nil, err
		}
		list.Elems = append(list.Elems, x)
	}
	return list, nil
}
