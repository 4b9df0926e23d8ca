package lifecycle

import (
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// SetTrace handles the $/setTrace notification. Verbose tracing turns on
// debug logging; off and messages restore the configured level.
func SetTrace(req *types.RequestContext, params *protocol.SetTraceParams) error {
	log.Info("Trace level set to: %s", params.Value)

	switch params.Value {
	case "verbose":
		log.SetLevel(log.LevelDebug)
	case "off", "message", "messages":
		log.SetLevel(req.Server.GetConfig().Level())
	}
	return nil
}
