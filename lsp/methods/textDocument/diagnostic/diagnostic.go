package diagnostic

import (
	"errors"
	"fmt"

	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// source names this server in diagnostics
const source = "sasseval"

// codes maps each error kind to a diagnostic code, checked in order
var codes = []struct {
	kind error
	code string
}{
	{sasserr.ErrSyntax, "syntax"},
	{sasserr.ErrArity, "arity"},
	{sasserr.ErrType, "type"},
	{sasserr.ErrRange, "range"},
	{sasserr.ErrStructure, "structure"},
	{sasserr.ErrUnits, "units"},
	{sasserr.ErrDivisionByZero, "division-by-zero"},
	{sasserr.ErrOperation, "operation"},
	{sasserr.ErrUndefinedFunction, "undefined-function"},
}

// DocumentDiagnostic handles the textDocument/diagnostic request (pull diagnostics).
//
// This is an LSP 3.17 feature. Since glsp v0.2.2 only supports LSP 3.16, this handler
// is called via CustomHandler which intercepts the method before it reaches protocol.Handler.
func DocumentDiagnostic(req *types.RequestContext, params *DocumentDiagnosticParams) (any, error) {
	uri := params.TextDocument.URI
	log.Info("Pull diagnostics requested for: %s", uri)

	resultID := resultIDFor(req.Server, uri)
	if resultID != "" && resultID == params.PreviousResultID {
		return UnchangedDocumentDiagnosticReport{
			Kind:     string(DiagnosticUnchanged),
			ResultID: resultID,
		}, nil
	}

	diagnostics, err := GetDiagnostics(req.Server, uri)
	if err != nil {
		return nil, err
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	return RelatedFullDocumentDiagnosticReport{
		Kind:     string(DiagnosticFull),
		ResultID: resultID,
		Items:    diagnostics,
	}, nil
}

// resultIDFor identifies a report by document version and the precision
// values were rendered with
func resultIDFor(ctx types.ServerContext, uri string) string {
	doc := ctx.Document(uri)
	if doc == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d", doc.Version(), ctx.GetConfig().Precision)
}

// GetDiagnostics reports one error per declaration that failed to evaluate
func GetDiagnostics(ctx types.ServerContext, uri string) ([]protocol.Diagnostic, error) {
	doc := ctx.Document(uri)
	if doc == nil || !doc.IsStylesheet() {
		return nil, nil
	}

	result, err := ctx.Evaluate(uri)
	if err != nil {
		return nil, err
	}

	var diagnostics []protocol.Diagnostic
	for _, d := range result.Declarations {
		if d.Err == nil {
			continue
		}
		span, ok := sasserr.SpanOf(d.Err)
		if !ok {
			span = d.ValueRange
		}
		severity := protocol.DiagnosticSeverityError
		diagnostic := protocol.Diagnostic{
			Range:    ToRange(span),
			Severity: &severity,
			Source:   ptr(source),
			Message:  d.Err.Error(),
		}
		if code := Code(d.Err); code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: code}
		}
		diagnostics = append(diagnostics, diagnostic)
	}
	return diagnostics, nil
}

// Code returns the diagnostic code for err, or "" for errors of no known kind
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}
	return ""
}

// ToRange converts a source span to an LSP range
func ToRange(span position.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: span.Start.Line, Character: span.Start.Character},
		End:   protocol.Position{Line: span.End.Line, Character: span.End.Character},
	}
}

func ptr[T any](v T) *T {
	return &v
}
