package documents

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"bennypowers.dev/sasseval/internal/stylesheet"
)

// stylesheetLanguages are the language IDs whose documents are evaluated.
var stylesheetLanguages = []string{"css", "scss"}

// Document is an open text document and its latest evaluation.
type Document struct {
	uri        string
	languageID string
	content    string
	version    int

	// result was computed from the content at resultVersion
	result        *stylesheet.Result
	resultVersion int
}

// NewDocument creates a new document
func NewDocument(uri, languageID string, version int, content string) *Document {
	return &Document{
		uri:        uri,
		languageID: languageID,
		version:    version,
		content:    content,
	}
}

// URI returns the document's URI
func (d *Document) URI() string {
	return d.uri
}

// LanguageID returns the document's language identifier
func (d *Document) LanguageID() string {
	return d.languageID
}

// Version returns the document's version
func (d *Document) Version() int {
	return d.version
}

// Content returns the document's current content
func (d *Document) Content() string {
	return d.content
}

// IsStylesheet reports whether the document is CSS or SCSS, by language ID
// or, failing that, by file extension.
func (d *Document) IsStylesheet() bool {
	if slices.Contains(stylesheetLanguages, d.languageID) {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(d.uri)), ".")
	return slices.Contains(stylesheetLanguages, ext)
}

// SetContent updates the document's content and version.
// Returns an error if the provided version is older than the current document version,
// preventing stale updates from being applied.
func (d *Document) SetContent(content string, version int) error {
	if version < d.version {
		return fmt.Errorf("rejected stale update: document version is %d but update version is %d", d.version, version)
	}
	d.content = content
	d.version = version
	d.result = nil
	return nil
}
