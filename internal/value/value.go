// Package value is the SassScript runtime value algebra. Value is a closed
// set of variants; switch on the concrete type to handle each one.
package value

import (
	"strings"

	"bennypowers.dev/sasseval/internal/color"
)

// Value is any SassScript value.
type Value interface {
	sassValue()
}

func (Number) sassValue()   {}
func (Color) sassValue()    {}
func (String) sassValue()   {}
func (List) sassValue()     {}
func (*Map) sassValue()     {}
func (Bool) sassValue()     {}
func (Null) sassValue()     {}
func (ArgList) sassValue()  {}
func (Function) sassValue() {}
func (Special) sassValue()  {}

// Number is a magnitude with a possibly compound unit.
type Number struct {
	Num  float64
	Unit Unit
}

// Color wraps a color so it can travel as a Value.
type Color struct {
	*color.Color
}

// QuoteKind records whether a string was written with quotes.
type QuoteKind uint8

const (
	Unquoted QuoteKind = iota
	Quoted
)

// String is a Sass string. Quoting is kept for output but ignored by Equal.
type String struct {
	Text   string
	Quotes QuoteKind
}

// ListSeparator is how list elements are joined.
type ListSeparator uint8

const (
	Undecided ListSeparator = iota
	Space
	Comma
	Slash
)

func (s ListSeparator) String() string {
	switch s {
	case Comma:
		return "comma"
	case Slash:
		return "slash"
	}
	return "space"
}

// Brackets records whether a list was written in square brackets.
type Brackets uint8

const (
	NoBrackets Brackets = iota
	Bracketed
)

// List is an ordered sequence of values.
type List struct {
	Elems    []Value
	Sep      ListSeparator
	Brackets Brackets
}

// Bool is true or false.
type Bool bool

// Null is the absence of a value.
type Null struct{}

// ArgList holds the arguments captured by a variadic parameter.
type ArgList struct {
	Elems    []Value
	Keywords *Map
	Sep      ListSeparator
}

// Function refers to a callable by name.
type Function struct {
	Name    string
	Builtin bool
}

// Special is a plain-CSS function call, such as calc() or var(), that Sass
// must not evaluate. Raw is the call exactly as written.
type Special struct {
	Name string
	Raw  string
}

var (
	True  Value = Bool(true)
	False Value = Bool(false)
	// Nil is the single null value.
	Nil Value = Null{}
)

// Unitless returns a number without units.
func Unitless(n float64) Number { return Number{Num: n} }

// Percentage returns n%.
func Percentage(n float64) Number { return Number{Num: n, Unit: Single("%")} }

// WithUnit returns n with a single unit.
func WithUnit(n float64, unit string) Number { return Number{Num: n, Unit: Single(unit)} }

// QuotedString returns a quoted string.
func QuotedString(s string) String { return String{Text: s, Quotes: Quoted} }

// UnquotedString returns an unquoted string.
func UnquotedString(s string) String { return String{Text: s} }

// NewColor wraps c.
func NewColor(c *color.Color) Color { return Color{c} }

// NewList returns an unbracketed list.
func NewList(sep ListSeparator, elems ...Value) List {
	return List{Elems: elems, Sep: sep}
}

// FromBool converts a Go bool.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Truthy reports whether v counts as true in a condition: only false and
// null are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Null:
		return false
	}
	return true
}

// TypeName is what type-of() returns.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Color:
		return "color"
	case String, Special:
		return "string"
	case List:
		return "list"
	case *Map:
		return "map"
	case Bool:
		return "bool"
	case Null:
		return "null"
	case ArgList:
		return "arglist"
	case Function:
		return "function"
	}
	return "unknown"
}

var specialPrefixes = []string{"calc(", "var(", "env(", "min(", "max(", "clamp("}

// IsSpecialFunction reports whether v is a plain-CSS function call that
// builtins must pass through instead of evaluating.
func IsSpecialFunction(v Value) bool {
	switch v := v.(type) {
	case Special:
		return true
	case String:
		if v.Quotes != Unquoted {
			return false
		}
		for _, p := range specialPrefixes {
			if strings.HasPrefix(v.Text, p) {
				return true
			}
		}
	}
	return false
}

// IsSpecialName reports whether name is a CSS function whose arguments Sass
// leaves untouched.
func IsSpecialName(name string) bool {
	switch strings.ToLower(name) {
	case "calc", "var", "env", "clamp", "attr", "counter", "counters", "url":
		return true
	}
	return false
}

// Elements views any value as a list, the way Sass list functions do:
// lists and arglists yield their elements, maps yield key/value pairs and
// everything else is a one-element list.
func Elements(v Value) []Value {
	switch v := v.(type) {
	case List:
		return v.Elems
	case ArgList:
		return v.Elems
	case *Map:
		return v.AsList()
	}
	return []Value{v}
}

// Separator returns the separator Sass reports for v.
func Separator(v Value) ListSeparator {
	switch v := v.(type) {
	case List:
		if v.Sep == Undecided {
			return Space
		}
		return v.Sep
	case ArgList:
		return v.Sep
	case *Map:
		return Comma
	}
	return Space
}
