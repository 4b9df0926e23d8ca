package textDocument

import (
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DidOpen handles the textDocument/didOpen notification
func DidOpen(req *types.RequestContext, params *protocol.DidOpenTextDocumentParams) error {
	log.Info("Document opened: %s (language: %s, version: %d)",
		params.TextDocument.URI, params.TextDocument.LanguageID, int(params.TextDocument.Version))

	err := req.Server.DocumentManager().DidOpen(params.TextDocument.URI, params.TextDocument.LanguageID,
		int(params.TextDocument.Version), params.TextDocument.Text)
	if err != nil {
		return err
	}

	publish(req, params.TextDocument.URI)
	return nil
}

// DidChange handles the textDocument/didChange notification
func DidChange(req *types.RequestContext, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	version := int(params.TextDocument.Version)

	log.Debug("Document changed: %s (version: %d, changes: %d)", uri, version, len(params.ContentChanges))

	// Convert any[] to proper type, filtering out invalid entries
	changes := make([]protocol.TextDocumentContentChangeEvent, 0, len(params.ContentChanges))
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			changes = append(changes, c)
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, protocol.TextDocumentContentChangeEvent{Text: c.Text})
		}
	}

	err := req.Server.DocumentManager().DidChange(uri, version, changes)
	if err != nil {
		return err
	}

	publish(req, uri)
	return nil
}

// DidClose handles the textDocument/didClose notification
func DidClose(req *types.RequestContext, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	log.Info("Document closed: %s", uri)

	return req.Server.DocumentManager().DidClose(uri)
}

// publish pushes diagnostics for a stylesheet, unless the client pulls them
// via textDocument/diagnostic.
func publish(req *types.RequestContext, uri string) {
	if req.Server.UsePullDiagnostics() {
		return
	}
	doc := req.Server.Document(uri)
	if doc == nil || !doc.IsStylesheet() {
		return
	}
	glspCtx := req.Server.GLSPContext()
	if glspCtx == nil {
		return
	}
	if err := req.Server.PublishDiagnostics(glspCtx, uri); err != nil {
		log.Warn("Failed to publish diagnostics for %s: %v", uri, err)
	}
}
