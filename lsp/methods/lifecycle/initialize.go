package lifecycle

import (
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/uriutil"
	"bennypowers.dev/sasseval/internal/version"
	"bennypowers.dev/sasseval/lsp/methods/textDocument/diagnostic"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ServerName is reported to clients in serverInfo.
const ServerName = "sasseval-language-server"

// InitializeResult is protocol.InitializeResult with untyped capabilities,
// so LSP 3.17 fields such as diagnosticProvider can be advertised.
type InitializeResult struct {
	Capabilities map[string]any                        `json:"capabilities"`
	ServerInfo   *protocol.InitializeResultServerInfo `json:"serverInfo,omitempty"`
}

// Initialize handles the LSP initialize request
func Initialize(req *types.RequestContext, params *protocol.InitializeParams) (any, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}
	log.Info("Initializing for client: %s", clientName)

	req.Server.SetClientCapabilities(params.Capabilities)

	// The CustomHandler records whether the raw params declared
	// textDocument.diagnostic; glsp v0.2.2 drops that field when decoding.
	supportsPullDiagnostics := false
	if detected := req.Server.ClientDiagnosticCapability(); detected != nil {
		supportsPullDiagnostics = *detected
	}
	req.Server.SetUsePullDiagnostics(supportsPullDiagnostics)
	if supportsPullDiagnostics {
		log.Info("Using pull diagnostics")
	} else {
		log.Info("Using push diagnostics")
	}

	if params.RootURI != nil {
		req.Server.SetRootURI(*params.RootURI)
		req.Server.SetRootPath(uriutil.URIToPath(*params.RootURI))
		log.Info("Workspace root: %s", req.Server.RootPath())
	} else if params.RootPath != nil {
		req.Server.SetRootPath(*params.RootPath)
		req.Server.SetRootURI(uriutil.PathToURI(*params.RootPath))
		log.Info("Workspace root (from rootPath): %s", req.Server.RootPath())
	}

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := map[string]any{
		"textDocumentSync": protocol.TextDocumentSyncOptions{
			OpenClose: boolPtr(true),
			Change:    &syncKind,
		},
		"hoverProvider": true,
		"colorProvider": true,
	}
	if supportsPullDiagnostics {
		capabilities["diagnosticProvider"] = diagnostic.DiagnosticOptions{
			InterFileDependencies: false,
			WorkspaceDiagnostics:  false,
		}
	}

	v := version.GetVersion()
	return InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: &v,
		},
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}
