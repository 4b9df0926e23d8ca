package lsp

import (
	"fmt"
	"sync"

	"bennypowers.dev/sasseval/internal/builtin"
	"bennypowers.dev/sasseval/internal/config"
	"bennypowers.dev/sasseval/internal/documents"
	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/parser/css"
	"bennypowers.dev/sasseval/internal/stylesheet"
	"bennypowers.dev/sasseval/lsp/methods/lifecycle"
	"bennypowers.dev/sasseval/lsp/methods/textDocument"
	"bennypowers.dev/sasseval/lsp/methods/textDocument/diagnostic"
	documentcolor "bennypowers.dev/sasseval/lsp/methods/textDocument/documentColor"
	"bennypowers.dev/sasseval/lsp/methods/textDocument/hover"
	"bennypowers.dev/sasseval/lsp/methods/workspace"
	"bennypowers.dev/sasseval/lsp/types"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

// Verify that Server implements ServerContext interface
var _ types.ServerContext = (*Server)(nil)

// Server is the Sass evaluator language server
type Server struct {
	documents                  *documents.Manager
	registry                   *builtin.Registry
	glspServer                 *server.Server
	handler                    *CustomHandler
	context                    *glsp.Context
	rootURI                    string                       // Workspace root URI
	rootPath                   string                       // Workspace root path (file system)
	config                     *config.Config               // Server configuration
	configMu                   sync.RWMutex                 // Protects config, context, capabilities and the diagnostics model
	clientCapabilities         *protocol.ClientCapabilities // Capabilities from the initialize request
	clientDiagnosticCapability *bool                        // Detected from raw initialize params (nil = not detected yet)
	usePullDiagnostics         bool                         // Whether to use pull diagnostics (LSP 3.17) vs push (LSP 3.0)
}

// NewServer creates a new language server
func NewServer() (*Server, error) {
	s := &Server{
		documents: documents.NewManager(),
		registry:  builtin.NewRegistry(),
		config:    config.Default(),
	}

	protocolHandler := protocol.Handler{
		Initialize:                      method(s, "initialize", lifecycle.Initialize),
		Initialized:                     notify(s, "initialized", lifecycle.Initialized),
		Shutdown:                        noParam(s, "shutdown", lifecycle.Shutdown),
		SetTrace:                        notify(s, "$/setTrace", lifecycle.SetTrace),
		WorkspaceDidChangeConfiguration: notify(s, "workspace/didChangeConfiguration", workspace.DidChangeConfiguration),
		TextDocumentDidOpen:             notify(s, "textDocument/didOpen", textDocument.DidOpen),
		TextDocumentDidChange:           notify(s, "textDocument/didChange", textDocument.DidChange),
		TextDocumentDidClose:            notify(s, "textDocument/didClose", textDocument.DidClose),
		TextDocumentHover:               method(s, "textDocument/hover", hover.Hover),
		TextDocumentColor:               method(s, "textDocument/documentColor", documentcolor.DocumentColor),
		TextDocumentColorPresentation:   method(s, "textDocument/colorPresentation", documentcolor.ColorPresentation),
	}

	// WORKAROUND: protocol.Handler only knows LSP 3.16 methods, so the
	// CustomHandler serves textDocument/diagnostic in front of it.
	s.handler = &CustomHandler{
		Handler: &protocolHandler,
		server:  s,
	}

	s.glspServer = server.NewServer(s.handler, lifecycle.ServerName, log.Enabled(log.LevelDebug))

	return s, nil
}

// RunStdio starts the LSP server using stdio transport
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

// Close releases server resources including the CSS parser pool.
// It is safe to call Close multiple times.
func (s *Server) Close() error {
	css.ClosePool()
	return nil
}

// Document returns the document with the given URI
func (s *Server) Document(uri string) *documents.Document {
	return s.documents.Get(uri)
}

// DocumentManager returns the document manager
func (s *Server) DocumentManager() *documents.Manager {
	return s.documents
}

// AllDocuments returns all tracked documents
func (s *Server) AllDocuments() []*documents.Document {
	return s.documents.GetAll()
}

// Evaluator returns an evaluator for the current configuration
func (s *Server) Evaluator() *eval.Evaluator {
	return eval.New(s.registry, eval.WithPrecision(s.GetConfig().Precision))
}

// Evaluate returns the evaluation of an open document
func (s *Server) Evaluate(uri string) (*stylesheet.Result, error) {
	return s.documents.Evaluate(uri, s.Evaluator())
}

// RootURI returns the workspace root URI
func (s *Server) RootURI() string {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.rootURI
}

// RootPath returns the workspace root path
func (s *Server) RootPath() string {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.rootPath
}

// SetRootURI sets the workspace root URI
func (s *Server) SetRootURI(uri string) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.rootURI = uri
}

// SetRootPath sets the workspace root path
func (s *Server) SetRootPath(path string) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.rootPath = path
}

// GetConfig returns the current configuration
func (s *Server) GetConfig() *config.Config {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.config
}

// SetConfig replaces the configuration. Cached evaluations are dropped,
// since they may have been rendered with another precision.
func (s *Server) SetConfig(cfg *config.Config) {
	s.configMu.Lock()
	s.config = cfg
	s.configMu.Unlock()
	s.documents.Invalidate()
}

// LoadConfig reads the config file at the workspace root
func (s *Server) LoadConfig() error {
	root := s.RootPath()
	if root == "" {
		log.Info("No workspace root, using default configuration")
		return nil
	}
	cfg, err := config.LoadDir(root)
	if err != nil {
		return err
	}
	s.SetConfig(cfg)
	log.SetLevel(cfg.Level())
	log.Info("Loaded configuration (precision: %d)", cfg.Precision)
	return nil
}

// GLSPContext returns the GLSP context
func (s *Server) GLSPContext() *glsp.Context {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.context
}

// SetGLSPContext sets the GLSP context
func (s *Server) SetGLSPContext(ctx *glsp.Context) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.context = ctx
}

// ClientCapabilities returns the capabilities the client initialized with
func (s *Server) ClientCapabilities() *protocol.ClientCapabilities {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.clientCapabilities
}

// SetClientCapabilities stores the client capabilities
func (s *Server) SetClientCapabilities(caps protocol.ClientCapabilities) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.clientCapabilities = &caps
}

// PreferredHoverFormat returns the first hover markup kind the client
// lists, defaulting to markdown.
func (s *Server) PreferredHoverFormat() protocol.MarkupKind {
	caps := s.ClientCapabilities()
	if caps == nil || caps.TextDocument == nil || caps.TextDocument.Hover == nil {
		return protocol.MarkupKindMarkdown
	}
	for _, kind := range caps.TextDocument.Hover.ContentFormat {
		if kind == protocol.MarkupKindMarkdown || kind == protocol.MarkupKindPlainText {
			return kind
		}
	}
	return protocol.MarkupKindMarkdown
}

// ClientDiagnosticCapability returns the detected client diagnostic capability.
// Returns nil if capability detection has not yet occurred (e.g., before initialize).
func (s *Server) ClientDiagnosticCapability() *bool {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.clientDiagnosticCapability
}

// SetClientDiagnosticCapability is called by the CustomHandler when it
// intercepts the initialize request.
func (s *Server) SetClientDiagnosticCapability(hasCapability bool) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.clientDiagnosticCapability = &hasCapability
}

// UsePullDiagnostics returns whether the client requests diagnostics via
// textDocument/diagnostic instead of receiving textDocument/publishDiagnostics
func (s *Server) UsePullDiagnostics() bool {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.usePullDiagnostics
}

// SetUsePullDiagnostics sets whether to use pull diagnostics based on client capabilities
func (s *Server) SetUsePullDiagnostics(use bool) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.usePullDiagnostics = use
}

// PublishDiagnostics publishes diagnostics for a document
func (s *Server) PublishDiagnostics(context *glsp.Context, uri string) error {
	log.Debug("Publishing diagnostics for: %s", uri)

	workingContext := context
	if workingContext == nil {
		workingContext = s.GLSPContext()
	}
	if workingContext == nil {
		return fmt.Errorf("cannot publish diagnostics: no client context available")
	}

	// the client will request them
	if s.UsePullDiagnostics() {
		return nil
	}

	diagnostics, err := diagnostic.GetDiagnostics(s, uri)
	if err != nil {
		return err
	}

	if workingContext.Notify == nil {
		return nil
	}
	workingContext.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
	return nil
}
