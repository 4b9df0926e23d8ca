package documents

import (
	"fmt"
	"strings"
	"sync"

	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/stylesheet"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Manager tracks open documents and caches one evaluation per version.
type Manager struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewManager creates a new document manager
func NewManager() *Manager {
	return &Manager{
		documents: make(map[string]*Document),
	}
}

// Get retrieves a document by URI
func (m *Manager) Get(uri string) *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.documents[uri]
}

// GetAll returns all managed documents
func (m *Manager) GetAll() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]*Document, 0, len(m.documents))
	for _, doc := range m.documents {
		docs = append(docs, doc)
	}
	return docs
}

// DidOpen handles the textDocument/didOpen notification
func (m *Manager) DidOpen(uri, languageID string, version int, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents[uri] = NewDocument(uri, languageID, version, content)
	return nil
}

// DidClose handles the textDocument/didClose notification
func (m *Manager) DidClose(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.documents[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}
	delete(m.documents, uri)
	return nil
}

// DidChange handles the textDocument/didChange notification
func (m *Manager) DidChange(uri string, version int, changes []protocol.TextDocumentContentChangeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.documents[uri]
	if !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	content := doc.Content()
	for _, change := range changes {
		// no range means the whole document was replaced
		if change.Range == nil {
			content = change.Text
			continue
		}
		next, err := applyIncrementalChange(content, *change.Range, change.Text)
		if err != nil {
			return fmt.Errorf("failed to apply changes: %w", err)
		}
		content = next
	}

	if err := doc.SetContent(content, version); err != nil {
		return fmt.Errorf("failed to set document content: %w", err)
	}
	return nil
}

// Evaluate returns the evaluation of the document at uri, reusing the
// cached result while the version is unchanged.
func (m *Manager) Evaluate(uri string, ev *eval.Evaluator) (*stylesheet.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.documents[uri]
	if !exists {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	if doc.result != nil && doc.resultVersion == doc.version {
		return doc.result, nil
	}

	result, err := stylesheet.Evaluate(doc.content, ev)
	if err != nil {
		return nil, err
	}
	log.Debug("Evaluated %s (version %d): %d declarations", uri, doc.version, len(result.Declarations))
	doc.result = result
	doc.resultVersion = doc.version
	return result, nil
}

// Invalidate drops every cached evaluation, for instance after the
// configured precision changes.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.documents {
		doc.result = nil
	}
}

// applyIncrementalChange replaces the text in r with text. LSP positions
// count UTF-16 code units; a line one past the last addresses the end of
// the document.
func applyIncrementalChange(content string, r protocol.Range, text string) (string, error) {
	lines := uint32(strings.Count(content, "\n") + 1)
	if r.Start.Line > lines {
		return "", fmt.Errorf("start line %d out of bounds (total lines: %d)", r.Start.Line, lines)
	}
	if r.End.Line > lines {
		return "", fmt.Errorf("end line %d out of bounds (total lines: %d)", r.End.Line, lines)
	}

	start := position.Offset(content, position.Position{Line: r.Start.Line, Character: r.Start.Character})
	end := position.Offset(content, position.Position{Line: r.End.Line, Character: r.End.Character})
	if end < start {
		return "", fmt.Errorf("range end %d:%d is before its start %d:%d",
			r.End.Line, r.End.Character, r.Start.Line, r.Start.Character)
	}
	return content[:start] + text + content[end:], nil
}
