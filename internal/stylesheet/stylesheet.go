// Package stylesheet evaluates the declarations of a CSS source with
// SassScript semantics.
package stylesheet

import (
	"fmt"
	"strings"

	"bennypowers.dev/sasseval/internal/eval"
	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/parser/css"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
	"bennypowers.dev/sasseval/internal/value"
)

// Declaration is one evaluated property declaration.
type Declaration struct {
	Property string
	// Input is the value as written
	Input string
	// Output is the value as CSS; empty when Err is set
	Output string
	// Expr is the parsed value; nil when it could not be read
	Expr       eval.Expr
	Value      value.Value
	Important  bool
	Range      position.Span
	ValueRange position.Span
	Err        error
}

// Result holds every declaration of a stylesheet, in source order.
type Result struct {
	Declarations []*Declaration
	Calls        []*css.CallSite
}

// Evaluate parses source and evaluates each declaration value with ev.
// A declaration that fails records its error and evaluation continues
// with the next one; the returned error is reserved for parser failures.
func Evaluate(source string, ev *eval.Evaluator) (*Result, error) {
	parsed, err := css.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
	}

	result := &Result{
		Declarations: make([]*Declaration, 0, len(parsed.Declarations)),
		Calls:        parsed.Calls,
	}
	for _, d := range parsed.Declarations {
		result.Declarations = append(result.Declarations, evaluate(d, ev))
	}
	return result, nil
}

func evaluate(d *css.Declaration, ev *eval.Evaluator) *Declaration {
	out := &Declaration{
		Property:   d.Property,
		Input:      d.Raw,
		Expr:       d.Value,
		Important:  d.Important,
		Range:      d.Range,
		ValueRange: d.ValueRange,
	}
	if d.Err != nil {
		out.Err = sasserr.WithSpan(d.Err, d.ValueRange)
		return out
	}
	// custom properties are emitted as written
	if d.Custom {
		out.Output = d.Raw
		out.Value = value.UnquotedString(d.Raw)
		return out
	}

	v, err := ev.Eval(d.Value)
	if err == nil {
		out.Output, err = ev.Printer().ToCSS(v, d.ValueRange)
	}
	if err != nil {
		log.Debug("Evaluating %s failed: %v", d.Property, err)
		out.Err = sasserr.WithSpan(err, d.ValueRange)
		out.Output = ""
		return out
	}
	out.Value = v
	return out
}

// Errors returns the errors of failed declarations.
func (r *Result) Errors() []error {
	var errs []error
	for _, d := range r.Declarations {
		if d.Err != nil {
			errs = append(errs, d.Err)
		}
	}
	return errs
}

// Render prints the evaluated declarations as "property: value;" lines,
// skipping declarations that failed.
func (r *Result) Render() string {
	var b strings.Builder
	for _, d := range r.Declarations {
		if d.Err != nil {
			continue
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Output)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	return b.String()
}

// DeclarationAt returns the declaration whose range contains pos.
func (r *Result) DeclarationAt(pos position.Position) *Declaration {
	for _, d := range r.Declarations {
		if d.Range.Contains(pos) {
			return d
		}
	}
	return nil
}

// CallAt returns the innermost call whose range contains pos.
func (r *Result) CallAt(pos position.Position) *css.CallSite {
	var found *css.CallSite
	for _, c := range r.Calls {
		if c.Range.Contains(pos) && (found == nil || c.Range.Len() < found.Range.Len()) {
			found = c
		}
	}
	return found
}
