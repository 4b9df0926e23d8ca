// Package sasserr defines the compile errors raised while evaluating Sass
// values. Every error kind has a sentinel for errors.Is checks and a typed
// struct carrying the details and the source span; messages follow the
// wording users know from the reference Sass implementation.
package sasserr

import (
	"errors"
	"fmt"

	"bennypowers.dev/sasseval/internal/position"
)

// Sentinel errors for error type checking
var (
	// ErrArity indicates a missing argument or too many arguments
	ErrArity = errors.New("wrong number of arguments")

	// ErrType indicates an argument of the wrong kind
	ErrType = errors.New("wrong argument type")

	// ErrRange indicates a numeric argument outside its declared bounds
	ErrRange = errors.New("argument out of range")

	// ErrStructure indicates a malformed list argument
	ErrStructure = errors.New("malformed argument")

	// ErrUnits indicates arithmetic or comparison between incompatible units
	ErrUnits = errors.New("incompatible units")

	// ErrOperation indicates an operator applied to operands it is not defined for
	ErrOperation = errors.New("undefined operation")

	// ErrDivisionByZero indicates a division or modulo by zero outside plain-CSS math
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefinedFunction indicates a call that no builtin or user function could serve
	ErrUndefinedFunction = errors.New("undefined function")

	// ErrSyntax indicates source text that could not be read as an expression
	ErrSyntax = errors.New("syntax error")
)

// Locatable is implemented by every error in this package.
type Locatable interface {
	error
	Location() position.Span
	at(position.Span) error
}

func param(name string) string {
	if name == "" {
		return ""
	}
	return "$" + name + ": "
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// ArityError represents a missing required argument or an oversized call
type ArityError struct {
	Message string
	Span    position.Span
}

func (e *ArityError) Error() string { return e.Message }
func (e *ArityError) Unwrap() error { return ErrArity }
func (e *ArityError) Location() position.Span { return e.Span }
func (e *ArityError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

// MissingArgument creates the error for a parameter with no value and no default
func MissingArgument(name string) error {
	return &ArityError{Message: fmt.Sprintf("Missing argument $%s.", name)}
}

// TooManyArguments creates the error for a call exceeding a builtin's signature
func TooManyArguments(max, got int) error {
	return &ArityError{Message: fmt.Sprintf("Only %d %s allowed, but %d %s passed.",
		max, plural(max, "argument", "arguments"), got, plural(got, "was", "were"))}
}

// NoArgumentNamed creates the error for a keyword argument the signature does not declare
func NoArgumentNamed(name string) error {
	return &ArityError{Message: fmt.Sprintf("No argument named $%s.", name)}
}

// TypeError represents an argument of the wrong kind. When Detail is set it
// replaces the "is not a" sentence.
type TypeError struct {
	Param    string
	Value    string
	Expected string
	Detail   string
	Span     position.Span
}

func (e *TypeError) Error() string {
	if e.Detail != "" {
		return param(e.Param) + e.Detail
	}
	return fmt.Sprintf("%s%s is not a%s %s.", param(e.Param), e.Value, article(e.Expected), e.Expected)
}
func (e *TypeError) Unwrap() error { return ErrType }
func (e *TypeError) Location() position.Span { return e.Span }
func (e *TypeError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

func article(noun string) string {
	if noun == "" {
		return ""
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "n"
	}
	return ""
}

// NotA creates a type error echoing the user's value, e.g. "$color: 5px is not a color."
func NotA(paramName, rendered, expected string) error {
	return &TypeError{Param: paramName, Value: rendered, Expected: expected}
}

// TypeDetail creates a type error with a custom sentence after the parameter prefix
func TypeDetail(paramName, detail string) error {
	return &TypeError{Param: paramName, Detail: detail}
}

// RangeError represents a numeric argument outside [Min, Max]
type RangeError struct {
	Param string
	Value string
	Min   string
	Max   string
	Span  position.Span
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%sExpected %s to be within %s and %s.", param(e.Param), e.Value, e.Min, e.Max)
}
func (e *RangeError) Unwrap() error { return ErrRange }
func (e *RangeError) Location() position.Span { return e.Span }
func (e *RangeError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

// OutOfRange creates a range error naming the parameter, the offending value and both bounds
func OutOfRange(paramName, rendered, min, max string) error {
	return &RangeError{Param: paramName, Value: rendered, Min: min, Max: max}
}

// StructureError represents a malformed list argument
type StructureError struct {
	Message string
	Span    position.Span
}

func (e *StructureError) Error() string { return e.Message }
func (e *StructureError) Unwrap() error { return ErrStructure }
func (e *StructureError) Location() position.Span { return e.Span }
func (e *StructureError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

// MissingElement creates the error for a list argument lacking a positional element
func MissingElement(name string) error {
	return &StructureError{Message: fmt.Sprintf("Missing element $%s.", name)}
}

// TooManyElements creates the error for a list argument with too many elements
func TooManyElements(max, got int) error {
	return &StructureError{Message: fmt.Sprintf("Only %d %s allowed, but %d %s passed.",
		max, plural(max, "element", "elements"), got, plural(got, "was", "were"))}
}

// Structuref creates a structural error with a custom message
func Structuref(format string, args ...any) error {
	return &StructureError{Message: fmt.Sprintf(format, args...)}
}

// UnitError represents arithmetic or comparison between incompatible units
type UnitError struct {
	Left  string
	Right string
	Span  position.Span
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("Incompatible units %s and %s.", e.Left, e.Right)
}
func (e *UnitError) Unwrap() error { return ErrUnits }
func (e *UnitError) Location() position.Span { return e.Span }
func (e *UnitError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

// IncompatibleUnits creates a unit error for the two unit spellings
func IncompatibleUnits(left, right string) error {
	return &UnitError{Left: left, Right: right}
}

// OperationError represents an operator that is undefined for its operands
type OperationError struct {
	Message string
	ByZero  bool
	Span    position.Span
}

func (e *OperationError) Error() string { return e.Message }
func (e *OperationError) Unwrap() error {
	if e.ByZero {
		return ErrDivisionByZero
	}
	return ErrOperation
}
func (e *OperationError) Location() position.Span { return e.Span }
func (e *OperationError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

// UndefinedOperation creates the error for e.g. "red + 1px"
func UndefinedOperation(left, op, right string) error {
	return &OperationError{Message: fmt.Sprintf("Undefined operation \"%s %s %s\".", left, op, right)}
}

// DivisionByZero creates the error for dividing or taking a modulo by zero
func DivisionByZero(left, op string) error {
	return &OperationError{Message: fmt.Sprintf("Undefined operation \"%s %s 0\": division by zero.", left, op), ByZero: true}
}

// Invalidf creates an operation error with a custom message, used for values
// that cannot be represented in CSS output.
func Invalidf(format string, args ...any) error {
	return &OperationError{Message: fmt.Sprintf(format, args...)}
}

// UndefinedFunctionError represents a call nothing could resolve
type UndefinedFunctionError struct {
	Name string
	Span position.Span
}

func (e *UndefinedFunctionError) Error() string { return "Undefined function." }
func (e *UndefinedFunctionError) Unwrap() error { return ErrUndefinedFunction }
func (e *UndefinedFunctionError) Location() position.Span { return e.Span }
func (e *UndefinedFunctionError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

// UndefinedFunction creates the error for a function name that resolved nowhere
func UndefinedFunction(name string) error {
	return &UndefinedFunctionError{Name: name}
}

// SyntaxError represents a declaration value the reader could not understand
type SyntaxError struct {
	Message string
	Span    position.Span
}

func (e *SyntaxError) Error() string { return e.Message }
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
func (e *SyntaxError) Location() position.Span { return e.Span }
func (e *SyntaxError) at(s position.Span) error {
	c := *e
	c.Span = s
	return &c
}

// Syntaxf creates a syntax error with a custom message
func Syntaxf(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

// WithSpan attaches span to err unless err already carries a location.
// Errors from outside this package are returned unchanged.
func WithSpan(err error, span position.Span) error {
	var l Locatable
	if err == nil || span.IsZero() || !errors.As(err, &l) || !l.Location().IsZero() {
		return err
	}
	if l == err {
		return l.at(span)
	}
	return err
}

// SpanOf returns the location recorded on err, if any.
func SpanOf(err error) (position.Span, bool) {
	var l Locatable
	if errors.As(err, &l) && !l.Location().IsZero() {
		return l.Location(), true
	}
	return position.Span{}, false
}

// Format renders err as "file:line:col: message" for terminal output.
func Format(file string, err error) string {
	if span, ok := SpanOf(err); ok {
		return fmt.Sprintf("%s:%s: %s", file, span.Start, err)
	}
	return fmt.Sprintf("%s: %s", file, err)
}
