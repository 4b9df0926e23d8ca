package lsp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/sasseval/internal/config"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/methods/textDocument/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log.SetOutput(nil)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.LevelInfo)
	})
	s, err := NewServer()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDetectPullDiagnosticsSupport(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"diagnostic capability", `{"capabilities":{"textDocument":{"diagnostic":{"dynamicRegistration":false}}}}`, true},
		{"empty diagnostic object", `{"capabilities":{"textDocument":{"diagnostic":{}}}}`, true},
		{"no diagnostic field", `{"capabilities":{"textDocument":{"hover":{}}}}`, false},
		{"no textDocument", `{"capabilities":{}}`, false},
		{"invalid JSON", `{capabilities`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPullDiagnosticsSupport(json.RawMessage(tt.raw)))
		})
	}
}

func TestCustomHandler(t *testing.T) {
	t.Run("initialize records the diagnostic capability", func(t *testing.T) {
		s := newTestServer(t)
		handler := s.handler

		_, validMethod, validParams, err := handler.Handle(&glsp.Context{
			Method: "initialize",
			Params: json.RawMessage(`{"capabilities":{"textDocument":{"diagnostic":{}}}}`),
		})
		require.NoError(t, err)
		assert.True(t, validMethod)
		assert.True(t, validParams)
		require.NotNil(t, s.ClientDiagnosticCapability())
		assert.True(t, *s.ClientDiagnosticCapability())
		assert.True(t, s.UsePullDiagnostics())
	})

	t.Run("textDocument/diagnostic", func(t *testing.T) {
		s := newTestServer(t)
		require.NoError(t, s.DocumentManager().DidOpen("file:///a.scss", "scss", 1, "a { width: 1px + 1s; }"))
		handler := s.handler

		params, err := json.Marshal(diagnostic.DocumentDiagnosticParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.scss"},
		})
		require.NoError(t, err)

		result, validMethod, validParams, err := handler.Handle(&glsp.Context{
			Method: "textDocument/diagnostic",
			Params: params,
		})
		require.NoError(t, err)
		assert.True(t, validMethod)
		assert.True(t, validParams)

		report, ok := result.(diagnostic.RelatedFullDocumentDiagnosticReport)
		require.True(t, ok)
		require.Len(t, report.Items, 1)
		assert.Equal(t, "Incompatible units px and s.", report.Items[0].Message)
	})

	t.Run("textDocument/diagnostic with invalid params", func(t *testing.T) {
		s := newTestServer(t)
		handler := s.handler

		_, validMethod, validParams, err := handler.Handle(&glsp.Context{
			Method: "textDocument/diagnostic",
			Params: json.RawMessage(`{invalid`),
		})
		assert.Error(t, err)
		assert.True(t, validMethod)
		assert.False(t, validParams)
	})
}

func TestPreferredHoverFormat(t *testing.T) {
	tests := []struct {
		name string
		caps *protocol.ClientCapabilities
		want protocol.MarkupKind
	}{
		{"no capabilities", nil, protocol.MarkupKindMarkdown},
		{"no hover capability", &protocol.ClientCapabilities{TextDocument: &protocol.TextDocumentClientCapabilities{}}, protocol.MarkupKindMarkdown},
		{"plaintext first", &protocol.ClientCapabilities{TextDocument: &protocol.TextDocumentClientCapabilities{
			Hover: &protocol.HoverClientCapabilities{
				ContentFormat: []protocol.MarkupKind{protocol.MarkupKindPlainText, protocol.MarkupKindMarkdown},
			},
		}}, protocol.MarkupKindPlainText},
		{"markdown first", &protocol.ClientCapabilities{TextDocument: &protocol.TextDocumentClientCapabilities{
			Hover: &protocol.HoverClientCapabilities{
				ContentFormat: []protocol.MarkupKind{protocol.MarkupKindMarkdown},
			},
		}}, protocol.MarkupKindMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			if tt.caps != nil {
				s.SetClientCapabilities(*tt.caps)
			}
			assert.Equal(t, tt.want, s.PreferredHoverFormat())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("no workspace root keeps the defaults", func(t *testing.T) {
		s := newTestServer(t)
		require.NoError(t, s.LoadConfig())
		assert.Equal(t, config.DefaultPrecision, s.GetConfig().Precision)
	})

	t.Run("reads the workspace config", func(t *testing.T) {
		s := newTestServer(t)
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "sasseval.yaml"), []byte("precision: 2\n"), 0o600))
		s.SetRootPath(root)

		require.NoError(t, s.DocumentManager().DidOpen("file:///a.scss", "scss", 1, "a { width: percentage(0.123456); }"))
		before, err := s.Evaluate("file:///a.scss")
		require.NoError(t, err)
		assert.Equal(t, "12.3456%", before.Declarations[0].Output)

		require.NoError(t, s.LoadConfig())
		assert.Equal(t, 2, s.GetConfig().Precision)

		after, err := s.Evaluate("file:///a.scss")
		require.NoError(t, err)
		assert.Equal(t, "12.35%", after.Declarations[0].Output)
	})

	t.Run("invalid config", func(t *testing.T) {
		s := newTestServer(t)
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "sasseval.json"), []byte(`{"precision": -1}`), 0o600))
		s.SetRootPath(root)

		assert.Error(t, s.LoadConfig())
		assert.Equal(t, config.DefaultPrecision, s.GetConfig().Precision)
	})
}

func TestPublishDiagnostics(t *testing.T) {
	t.Run("requires a client context", func(t *testing.T) {
		s := newTestServer(t)
		assert.Error(t, s.PublishDiagnostics(nil, "file:///a.scss"))
	})

	t.Run("sends diagnostics", func(t *testing.T) {
		s := newTestServer(t)
		require.NoError(t, s.DocumentManager().DidOpen("file:///a.scss", "scss", 1, "a { color: lighten(red, 150%); }"))

		var sent []protocol.PublishDiagnosticsParams
		ctx := &glsp.Context{Notify: func(method string, params any) {
			assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, method)
			sent = append(sent, params.(protocol.PublishDiagnosticsParams))
		}}
		s.SetGLSPContext(ctx)

		require.NoError(t, s.PublishDiagnostics(nil, "file:///a.scss"))
		require.Len(t, sent, 1)
		assert.Equal(t, "file:///a.scss", sent[0].URI)
		require.Len(t, sent[0].Diagnostics, 1)
		assert.Equal(t, "$amount: Expected 150% to be within 0% and 100%.", sent[0].Diagnostics[0].Message)
	})

	t.Run("nothing is sent when the client pulls", func(t *testing.T) {
		s := newTestServer(t)
		s.SetUsePullDiagnostics(true)
		var calls int
		ctx := &glsp.Context{Notify: func(string, any) { calls++ }}

		require.NoError(t, s.PublishDiagnostics(ctx, "file:///a.scss"))
		assert.Zero(t, calls)
	})
}
