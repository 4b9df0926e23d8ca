package workspace

import (
	"encoding/json"
	"fmt"

	"bennypowers.dev/sasseval/internal/config"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// settingsKeys are the keys clients nest our settings under
var settingsKeys = []string{"sasseval", "sassEvaluator"}

// DidChangeConfiguration handles the workspace/didChangeConfiguration notification
func DidChangeConfiguration(req *types.RequestContext, params *protocol.DidChangeConfigurationParams) error {
	log.Info("Configuration changed")

	cfg, err := parseConfiguration(req.Server.GetConfig(), params.Settings)
	if err != nil {
		// keep the previous configuration
		LogWarning(req.GLSP, "Ignoring configuration: %v", err)
		return nil
	}

	req.Server.SetConfig(cfg)
	log.SetLevel(cfg.Level())
	log.Debug("New configuration: %+v", *cfg)

	// Republish diagnostics for all open documents
	if glspCtx := req.Server.GLSPContext(); glspCtx != nil && !req.Server.UsePullDiagnostics() {
		for _, doc := range req.Server.AllDocuments() {
			if err := req.Server.PublishDiagnostics(glspCtx, doc.URI()); err != nil {
				log.Warn("Failed to publish diagnostics for %s: %v", doc.URI(), err)
			}
		}
	}
	return nil
}

// parseConfiguration overlays the client's settings on current. Settings
// the client leaves out keep their current values.
func parseConfiguration(current *config.Config, settings any) (*config.Config, error) {
	cfg := config.Default()
	if current != nil {
		copied := *current
		cfg = &copied
	}
	if settings == nil {
		return cfg, nil
	}

	settingsMap, ok := settings.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("settings is not a map")
	}

	var ours any
	for _, key := range settingsKeys {
		if v, exists := settingsMap[key]; exists {
			ours = v
			break
		}
	}
	if ours == nil {
		return cfg, nil
	}

	data, err := json.Marshal(ours)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
