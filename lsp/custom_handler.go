package lsp

import (
	"encoding/json"

	"bennypowers.dev/sasseval/lsp/methods/textDocument/diagnostic"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// CustomHandler wraps protocol.Handler to add custom method support
//
// WORKAROUND: glsp v0.2.2 implements LSP 3.16, so protocol.Handler has no
// field for textDocument/diagnostic and InitializeParams drops the client's
// diagnostic capability. Both are intercepted here.
type CustomHandler struct {
	*protocol.Handler // Pointer to avoid copying embedded mutex
	server            *Server
}

// Handle implements glsp.Handler interface
func (h *CustomHandler) Handle(context *glsp.Context) (r any, validMethod bool, validParams bool, err error) {
	switch context.Method {
	case "initialize":
		// record the capability, then let the normal initialize handler run
		h.server.SetClientDiagnosticCapability(DetectPullDiagnosticsSupport(context.Params))

	case "textDocument/diagnostic":
		var params diagnostic.DocumentDiagnosticParams
		if err := json.Unmarshal(context.Params, &params); err != nil {
			return nil, true, false, err
		}
		result, err := method(h.server, "textDocument/diagnostic", diagnostic.DocumentDiagnostic)(context, &params)
		if err != nil {
			return nil, true, true, err
		}
		return result, true, true, nil
	}

	return h.Handler.Handle(context)
}
