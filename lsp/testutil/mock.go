package testutil

import (
	"bennypowers.dev/sasseval/internal/builtin"
	"bennypowers.dev/sasseval/internal/config"
	"bennypowers.dev/sasseval/internal/documents"
	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/stylesheet"
	"bennypowers.dev/sasseval/lsp/types"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var _ types.ServerContext = (*MockServerContext)(nil)

// MockServerContext implements types.ServerContext for testing.
// Documents and evaluation are real; the rest is configurable via
// callback functions.
type MockServerContext struct {
	docs                 *documents.Manager
	registry             *builtin.Registry
	rootURI              string
	rootPath             string
	config               *config.Config
	glspContext          *glsp.Context
	clientCapabilities   *protocol.ClientCapabilities
	diagnosticCapability *bool
	usePullDiagnostics   bool

	// Optional callbacks for custom behavior in tests
	LoadConfigFunc         func() error
	PublishDiagnosticsFunc func(*glsp.Context, string) error

	// Tracking for tests that need to verify methods were called
	LoadConfigCalled bool
	PublishedURIs    []string

	// HoverFormat overrides the format derived from client capabilities
	HoverFormat protocol.MarkupKind
}

// NewMockServerContext creates a new mock server context with default behavior
func NewMockServerContext() *MockServerContext {
	return &MockServerContext{
		docs:     documents.NewManager(),
		registry: builtin.NewRegistry(),
		config:   config.Default(),
	}
}

// Document returns the document with the given URI
func (m *MockServerContext) Document(uri string) *documents.Document {
	return m.docs.Get(uri)
}

// DocumentManager returns the document manager
func (m *MockServerContext) DocumentManager() *documents.Manager {
	return m.docs
}

// AllDocuments returns all tracked documents
func (m *MockServerContext) AllDocuments() []*documents.Document {
	return m.docs.GetAll()
}

// Evaluator returns an evaluator honoring the configured precision
func (m *MockServerContext) Evaluator() *eval.Evaluator {
	return eval.New(m.registry, eval.WithPrecision(m.config.Precision))
}

// Evaluate evaluates an open document
func (m *MockServerContext) Evaluate(uri string) (*stylesheet.Result, error) {
	return m.docs.Evaluate(uri, m.Evaluator())
}

// RootURI returns the workspace root URI
func (m *MockServerContext) RootURI() string {
	return m.rootURI
}

// RootPath returns the workspace root path
func (m *MockServerContext) RootPath() string {
	return m.rootPath
}

// SetRootURI sets the workspace root URI
func (m *MockServerContext) SetRootURI(uri string) {
	m.rootURI = uri
}

// SetRootPath sets the workspace root path
func (m *MockServerContext) SetRootPath(path string) {
	m.rootPath = path
}

// GetConfig returns the server configuration
func (m *MockServerContext) GetConfig() *config.Config {
	return m.config
}

// SetConfig sets the server configuration
func (m *MockServerContext) SetConfig(cfg *config.Config) {
	m.config = cfg
	m.docs.Invalidate()
}

// LoadConfig records the call and runs LoadConfigFunc
func (m *MockServerContext) LoadConfig() error {
	m.LoadConfigCalled = true
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc()
	}
	return nil
}

// GLSPContext returns the GLSP context
func (m *MockServerContext) GLSPContext() *glsp.Context {
	return m.glspContext
}

// SetGLSPContext sets the GLSP context
func (m *MockServerContext) SetGLSPContext(ctx *glsp.Context) {
	m.glspContext = ctx
}

// ClientCapabilities returns the stored client capabilities
func (m *MockServerContext) ClientCapabilities() *protocol.ClientCapabilities {
	return m.clientCapabilities
}

// SetClientCapabilities stores the client capabilities
func (m *MockServerContext) SetClientCapabilities(caps protocol.ClientCapabilities) {
	m.clientCapabilities = &caps
}

// PreferredHoverFormat returns HoverFormat, or markdown when unset
func (m *MockServerContext) PreferredHoverFormat() protocol.MarkupKind {
	if m.HoverFormat != "" {
		return m.HoverFormat
	}
	return protocol.MarkupKindMarkdown
}

// ClientDiagnosticCapability returns the detected diagnostic capability
func (m *MockServerContext) ClientDiagnosticCapability() *bool {
	return m.diagnosticCapability
}

// SetClientDiagnosticCapability stores the detected diagnostic capability
func (m *MockServerContext) SetClientDiagnosticCapability(hasCapability bool) {
	m.diagnosticCapability = &hasCapability
}

// UsePullDiagnostics reports whether the client pulls diagnostics
func (m *MockServerContext) UsePullDiagnostics() bool {
	return m.usePullDiagnostics
}

// SetUsePullDiagnostics sets the diagnostics model
func (m *MockServerContext) SetUsePullDiagnostics(use bool) {
	m.usePullDiagnostics = use
}

// PublishDiagnostics records the URI and runs PublishDiagnosticsFunc
func (m *MockServerContext) PublishDiagnostics(context *glsp.Context, uri string) error {
	m.PublishedURIs = append(m.PublishedURIs, uri)
	if m.PublishDiagnosticsFunc != nil {
		return m.PublishDiagnosticsFunc(context, uri)
	}
	return nil
}
