package workspace_test

import (
	"bytes"
	"os"
	"testing"

	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/methods/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestLogMessages(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	assert.NotPanics(t, func() {
		workspace.LogError(nil, "test error: %s", "message")
		workspace.LogWarning(&glsp.Context{}, "test warning: %s", "message")
		workspace.ShowMessage(nil, protocol.MessageTypeInfo, "test message")
	})
	assert.Contains(t, buf.String(), "ERROR: test error: message")
	assert.Contains(t, buf.String(), "WARN: test warning: message")
}

func TestLogErrorNotifiesClient(t *testing.T) {
	done := make(chan *protocol.LogMessageParams, 1)
	ctx := &glsp.Context{Notify: func(method string, params any) {
		if p, ok := params.(*protocol.LogMessageParams); ok && method == protocol.ServerWindowLogMessage {
			done <- p
		}
	}}

	workspace.LogError(ctx, "bad %d", 1)
	got := <-done
	assert.Equal(t, protocol.MessageTypeError, got.Type)
	assert.Equal(t, "bad 1", got.Message)
}
