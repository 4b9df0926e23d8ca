package types

import (
	"bennypowers.dev/sasseval/internal/config"
	"bennypowers.dev/sasseval/internal/documents"
	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/stylesheet"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ServerContext is what method handlers need from the server.
type ServerContext interface {
	Document(uri string) *documents.Document
	DocumentManager() *documents.Manager
	AllDocuments() []*documents.Document

	// Evaluator is built from the current configuration
	Evaluator() *eval.Evaluator
	// Evaluate returns the cached evaluation of an open stylesheet
	Evaluate(uri string) (*stylesheet.Result, error)

	RootURI() string
	RootPath() string
	SetRootURI(uri string)
	SetRootPath(path string)

	GetConfig() *config.Config
	SetConfig(cfg *config.Config)
	// LoadConfig reads the workspace config file, if any
	LoadConfig() error

	GLSPContext() *glsp.Context
	SetGLSPContext(ctx *glsp.Context)

	ClientCapabilities() *protocol.ClientCapabilities
	SetClientCapabilities(caps protocol.ClientCapabilities)
	// PreferredHoverFormat is the client's first supported hover markup kind
	PreferredHoverFormat() protocol.MarkupKind

	ClientDiagnosticCapability() *bool
	SetClientDiagnosticCapability(hasCapability bool)
	UsePullDiagnostics() bool
	SetUsePullDiagnostics(use bool)
	PublishDiagnostics(context *glsp.Context, uri string) error
}
