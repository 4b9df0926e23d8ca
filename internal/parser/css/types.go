package css

import (
	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/position"
)

// Declaration is a property declaration whose value was read as a
// SassScript expression.
type Declaration struct {
	Property string
	// Raw is the value as written, without !important
	Raw       string
	Value     eval.Expr
	Important bool
	// Custom is set for custom properties (--name), whose values Sass
	// passes through without evaluating
	Custom bool
	// Known reports whether Property is a standard CSS property
	Known      bool
	Range      position.Span
	ValueRange position.Span
	// Err is set when the value could not be read. Value is nil then, and
	// for custom properties
	Err error
}

// CallSite is a function call found inside a declaration value.
type CallSite struct {
	Name        string
	Expr        eval.Expr
	Range       position.Span
	Declaration *Declaration
}

// ParseResult contains the declarations and calls found in a stylesheet
type ParseResult struct {
	Declarations []*Declaration
	Calls        []*CallSite
}
