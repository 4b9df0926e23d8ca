package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp"
	"bennypowers.dev/sasseval/lsp/methods/textDocument"
	"bennypowers.dev/sasseval/lsp/types"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// FixtureRoot returns the path to the test fixtures directory
func FixtureRoot() string {
	return filepath.Join("..", "fixtures")
}

// LoadStylesheetFixture loads a stylesheet fixture and returns its content
func LoadStylesheetFixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(FixtureRoot(), "stylesheet", name)
	data, err := os.ReadFile(path) //nolint:gosec // G304: Test fixture path - test code only
	require.NoError(t, err, "Failed to load stylesheet fixture: %s", name)
	return string(data)
}

// NewTestServer creates a new LSP server for testing, with logging silenced
func NewTestServer(t *testing.T) *lsp.Server {
	t.Helper()
	log.SetOutput(nil)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.LevelInfo)
	})
	server, err := lsp.NewServer()
	require.NoError(t, err, "Failed to create test server")
	t.Cleanup(func() { _ = server.Close() })
	return server
}

// OpenStylesheet opens a stylesheet fixture in the server through the
// didOpen handler
func OpenStylesheet(t *testing.T, server *lsp.Server, uri, fixtureName string) {
	t.Helper()
	params := &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "scss",
			Version:    1,
			Text:       LoadStylesheetFixture(t, fixtureName),
		},
	}
	err := textDocument.DidOpen(types.NewRequestContext(server, nil), params)
	require.NoError(t, err, "Failed to open stylesheet fixture: %s", fixtureName)
}
