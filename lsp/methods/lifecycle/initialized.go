package lifecycle

import (
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Initialized handles the LSP initialized notification
func Initialized(req *types.RequestContext, params *protocol.InitializedParams) error {
	log.Info("Server initialized")

	// Store context for later use (diagnostics)
	req.Server.SetGLSPContext(req.GLSP)

	// A broken config file must not fail initialization
	if err := req.Server.LoadConfig(); err != nil {
		req.AddWarning(err)
	}
	return nil
}
