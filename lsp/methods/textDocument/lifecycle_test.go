package textDocument_test

import (
	"errors"
	"os"
	"testing"

	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/methods/textDocument"
	"bennypowers.dev/sasseval/lsp/testutil"
	"bennypowers.dev/sasseval/lsp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func open(uri, languageID, text string) *protocol.DidOpenTextDocumentParams {
	return &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: languageID, Version: 1, Text: text},
	}
}

func TestDidOpen(t *testing.T) {
	log.SetOutput(nil)
	defer log.SetOutput(os.Stderr)

	t.Run("opens document successfully", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		req := types.NewRequestContext(ctx, nil)

		require.NoError(t, textDocument.DidOpen(req, open("file:///test.css", "css", "body { color: red; }")))

		doc := ctx.Document("file:///test.css")
		require.NotNil(t, doc)
		assert.Equal(t, "css", doc.LanguageID())
		assert.Equal(t, 1, doc.Version())
		assert.Equal(t, "body { color: red; }", doc.Content())
	})

	t.Run("publishes diagnostics for stylesheets", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		ctx.SetGLSPContext(&glsp.Context{})
		req := types.NewRequestContext(ctx, nil)

		require.NoError(t, textDocument.DidOpen(req, open("file:///a.scss", "scss", "a { color: red; }")))
		require.NoError(t, textDocument.DidOpen(req, open("file:///tokens.json", "json", `{"color": "red"}`)))

		assert.Equal(t, []string{"file:///a.scss"}, ctx.PublishedURIs)
	})

	t.Run("does not publish when the client pulls diagnostics", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		ctx.SetGLSPContext(&glsp.Context{})
		ctx.SetUsePullDiagnostics(true)
		req := types.NewRequestContext(ctx, nil)

		require.NoError(t, textDocument.DidOpen(req, open("file:///a.scss", "scss", "a { color: red; }")))
		assert.Empty(t, ctx.PublishedURIs)
	})

	t.Run("does not publish before initialization", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		req := types.NewRequestContext(ctx, nil)

		require.NoError(t, textDocument.DidOpen(req, open("file:///a.scss", "scss", "a { color: red; }")))
		assert.Empty(t, ctx.PublishedURIs)
	})

	t.Run("publish failures are not request failures", func(t *testing.T) {
		ctx := testutil.NewMockServerContext()
		ctx.SetGLSPContext(&glsp.Context{})
		ctx.PublishDiagnosticsFunc = func(*glsp.Context, string) error {
			return errors.New("connection closed")
		}
		req := types.NewRequestContext(ctx, nil)

		assert.NoError(t, textDocument.DidOpen(req, open("file:///a.scss", "scss", "a { color: red; }")))
	})
}

func TestDidChange(t *testing.T) {
	log.SetOutput(nil)
	defer log.SetOutput(os.Stderr)

	ptr := func(r protocol.Range) *protocol.Range { return &r }

	tests := []struct {
		name    string
		changes []any
		want    string
	}{
		{
			name: "incremental change",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: ptr(protocol.Range{
					Start: protocol.Position{Line: 0, Character: 11},
					End:   protocol.Position{Line: 0, Character: 14},
				}),
				Text: "blue",
			}},
			want: "a { color: blue; }",
		},
		{
			name:    "full change",
			changes: []any{protocol.TextDocumentContentChangeEventWhole{Text: "b { width: 1px; }"}},
			want:    "b { width: 1px; }",
		},
		{
			name:    "unknown entries are skipped",
			changes: []any{"garbage", protocol.TextDocumentContentChangeEvent{Text: "c {}"}},
			want:    "c {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.NewMockServerContext()
			ctx.SetGLSPContext(&glsp.Context{})
			require.NoError(t, ctx.DocumentManager().DidOpen("file:///a.scss", "scss", 1, "a { color: red; }"))
			req := types.NewRequestContext(ctx, nil)

			err := textDocument.DidChange(req, &protocol.DidChangeTextDocumentParams{
				TextDocument: protocol.VersionedTextDocumentIdentifier{
					TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///a.scss"},
					Version:                2,
				},
				ContentChanges: tt.changes,
			})
			require.NoError(t, err)

			doc := ctx.Document("file:///a.scss")
			assert.Equal(t, tt.want, doc.Content())
			assert.Equal(t, 2, doc.Version())
			assert.Equal(t, []string{"file:///a.scss"}, ctx.PublishedURIs)
		})
	}

	t.Run("unknown document", func(t *testing.T) {
		req := types.NewRequestContext(testutil.NewMockServerContext(), nil)
		err := textDocument.DidChange(req, &protocol.DidChangeTextDocumentParams{
			TextDocument: protocol.VersionedTextDocumentIdentifier{
				TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///missing.scss"},
			},
		})
		assert.Error(t, err)
	})
}

func TestDidClose(t *testing.T) {
	log.SetOutput(nil)
	defer log.SetOutput(os.Stderr)

	ctx := testutil.NewMockServerContext()
	require.NoError(t, ctx.DocumentManager().DidOpen("file:///a.scss", "scss", 1, "a {}"))
	req := types.NewRequestContext(ctx, nil)
	params := &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.scss"},
	}

	require.NoError(t, textDocument.DidClose(req, params))
	assert.Nil(t, ctx.Document("file:///a.scss"))
	assert.Error(t, textDocument.DidClose(req, params))
}
