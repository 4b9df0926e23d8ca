package types

import (
	"github.com/tliron/glsp"
)

// RequestContext carries the server and protocol context through one
// request, together with warnings collected while handling it.
type RequestContext struct {
	Server   ServerContext
	GLSP     *glsp.Context
	warnings []error
}

// NewRequestContext creates a context for a single request
func NewRequestContext(server ServerContext, glsp *glsp.Context) *RequestContext {
	return &RequestContext{
		Server: server,
		GLSP:   glsp,
	}
}

// AddWarning records a non-fatal problem; nil is ignored
func (r *RequestContext) AddWarning(err error) {
	if err != nil {
		r.warnings = append(r.warnings, err)
	}
}

// Warnings returns the warnings recorded so far
func (r *RequestContext) Warnings() []error {
	return r.warnings
}

// HasWarnings reports whether any warning was recorded
func (r *RequestContext) HasWarnings() bool {
	return len(r.warnings) > 0
}
