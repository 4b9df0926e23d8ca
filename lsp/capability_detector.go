package lsp

import (
	"encoding/json"
)

// rawInitializeParams holds the LSP 3.17 fields glsp v0.2.2 does not decode.
type rawInitializeParams struct {
	Capabilities struct {
		TextDocument *struct {
			Diagnostic *json.RawMessage `json:"diagnostic"`
		} `json:"textDocument"`
	} `json:"capabilities"`
}

// DetectPullDiagnosticsSupport reports whether raw initialize params declare
// textDocument.diagnostic. Unparseable params fall back to push diagnostics.
func DetectPullDiagnosticsSupport(rawParams json.RawMessage) bool {
	var params rawInitializeParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return false
	}
	td := params.Capabilities.TextDocument
	return td != nil && td.Diagnostic != nil
}
