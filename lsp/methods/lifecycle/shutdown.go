package lifecycle

import (
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/parser/css"
	"bennypowers.dev/sasseval/lsp/types"
)

// Shutdown handles the LSP shutdown request
func Shutdown(req *types.RequestContext) error {
	log.Info("Server shutting down")
	css.ClosePool()
	return nil
}
