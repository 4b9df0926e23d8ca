package diagnostic

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LSP 3.17 pull diagnostics types. glsp v0.2.2 only implements LSP 3.16.
//
// See: https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_diagnostic

// DocumentDiagnosticParams represents the parameters for textDocument/diagnostic request
type DocumentDiagnosticParams struct {
	TextDocument     protocol.TextDocumentIdentifier `json:"textDocument"`
	Identifier       string                          `json:"identifier,omitempty"`
	PreviousResultID string                          `json:"previousResultId,omitempty"`
}

// DocumentDiagnosticReportKind represents the kind of diagnostic report
type DocumentDiagnosticReportKind string

const (
	// DiagnosticFull represents a full document diagnostic report
	DiagnosticFull DocumentDiagnosticReportKind = "full"
	// DiagnosticUnchanged tells the client its previous report still holds
	DiagnosticUnchanged DocumentDiagnosticReportKind = "unchanged"
)

// RelatedFullDocumentDiagnosticReport represents a full diagnostic report
type RelatedFullDocumentDiagnosticReport struct {
	Kind     string                `json:"kind"`
	ResultID string                `json:"resultId,omitempty"`
	Items    []protocol.Diagnostic `json:"items"`
}

// UnchangedDocumentDiagnosticReport answers a request whose previousResultId is current
type UnchangedDocumentDiagnosticReport struct {
	Kind     string `json:"kind"`
	ResultID string `json:"resultId"`
}

// DiagnosticOptions represents server capabilities for pull diagnostics
type DiagnosticOptions struct {
	InterFileDependencies bool `json:"interFileDependencies"`
	WorkspaceDiagnostics  bool `json:"workspaceDiagnostics"`
}
