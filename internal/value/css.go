package value

import (
	"fmt"
	"strings"

	"bennypowers.dev/sasseval/internal/numeric"
	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
)

// Printer renders values. The zero Printer uses Sass's default precision.
type Printer struct {
	Precision int
}

var defaultPrinter Printer

// ToCSS renders v for CSS output with the default precision.
func ToCSS(v Value, span position.Span) (string, error) {
	return defaultPrinter.ToCSS(v, span)
}

// Inspect renders v the way inspect() does. It never fails.
func Inspect(v Value) string {
	return defaultPrinter.Inspect(v)
}

func (p Printer) precision() int {
	if p.Precision <= 0 {
		return numeric.Precision
	}
	return p.Precision
}

// FormatNumber renders a number with its unit, without checking that the
// unit is valid CSS.
func (p Printer) FormatNumber(n Number) string {
	return numeric.Format(n.Num, p.precision()) + n.Unit.String()
}

// ToCSS renders v as CSS text. Values with no CSS representation (maps,
// function references, null, empty lists, compound units) are errors
// rather than empty output.
func (p Printer) ToCSS(v Value, span position.Span) (string, error) {
	s, err := p.toCSS(v, false)
	return s, sasserr.WithSpan(err, span)
}

func (p Printer) toCSS(v Value, inList bool) (string, error) {
	switch v := v.(type) {
	case Number:
		if v.Unit.IsCompound() {
			return "", invalidCSS(p.Inspect(v))
		}
		return p.FormatNumber(v), nil
	case Color:
		return v.ToCSS(), nil
	case String:
		if v.Quotes == Quoted {
			return quote(v.Text), nil
		}
		return v.Text, nil
	case List:
		return p.listToCSS(v.Elems, v.Sep, v.Brackets, v)
	case ArgList:
		return p.listToCSS(v.Elems, v.Sep, NoBrackets, v)
	case *Map:
		if v.Len() == 0 {
			return "", invalidCSS("()")
		}
		return "", invalidCSS(p.Inspect(v))
	case Bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case Null:
		if inList {
			return "", nil
		}
		return "", invalidCSS("null")
	case Function:
		return "", invalidCSS(p.Inspect(v))
	case Special:
		return v.Raw, nil
	}
	return "", sasserr.Invalidf("%T isn't a valid CSS value.", v)
}

func (p Printer) listToCSS(elems []Value, sep ListSeparator, brackets Brackets, whole Value) (string, error) {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		if l, ok := e.(List); ok && len(l.Elems) == 0 && l.Brackets == NoBrackets {
			continue
		}
		s, err := p.toCSS(e, true)
		if err != nil {
			return "", err
		}
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	if brackets == Bracketed {
		return "[" + strings.Join(parts, separatorText(sep)) + "]", nil
	}
	if len(parts) == 0 {
		return "", invalidCSS(p.Inspect(whole))
	}
	return strings.Join(parts, separatorText(sep)), nil
}

func invalidCSS(rendered string) error {
	return sasserr.Invalidf("%s isn't a valid CSS value.", rendered)
}

func separatorText(sep ListSeparator) string {
	switch sep {
	case Comma:
		return ", "
	case Slash:
		return " / "
	}
	return " "
}

// quote picks double quotes unless the text has a double quote and no
// single quote.
func quote(s string) string {
	if strings.Contains(s, `"`) && !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\a `)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Inspect renders v as Sass source, the form used by inspect() and by error
// messages.
func (p Printer) Inspect(v Value) string {
	switch v := v.(type) {
	case Number:
		return p.FormatNumber(v)
	case Color:
		return v.ToCSS()
	case String:
		if v.Quotes == Quoted {
			return quote(v.Text)
		}
		return v.Text
	case List:
		return p.inspectList(v.Elems, v.Sep, v.Brackets)
	case ArgList:
		return p.inspectList(v.Elems, v.Sep, NoBrackets)
	case *Map:
		if v.Len() == 0 {
			return "()"
		}
		parts := make([]string, 0, v.Len())
		for k, val := range v.All() {
			parts = append(parts, p.inspectElem(k, Comma)+": "+p.inspectElem(val, Comma))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	case Function:
		return fmt.Sprintf("get-function(%s)", quote(v.Name))
	case Special:
		return v.Raw
	}
	return fmt.Sprintf("%v", v)
}

func (p Printer) inspectList(elems []Value, sep ListSeparator, brackets Brackets) string {
	if len(elems) == 0 {
		if brackets == Bracketed {
			return "[]"
		}
		return "()"
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = p.inspectElem(e, sep)
	}
	s := strings.Join(parts, separatorText(sep))
	if len(elems) == 1 && sep == Comma {
		s += ","
	}
	if brackets == Bracketed {
		return "[" + s + "]"
	}
	if len(elems) == 1 && sep == Comma {
		return "(" + s + ")"
	}
	return s
}

// inspectElem parenthesizes nested lists whose separator would be ambiguous
// inside the parent.
func (p Printer) inspectElem(v Value, parent ListSeparator) string {
	l, ok := v.(List)
	if !ok || l.Brackets == Bracketed || len(l.Elems) < 2 {
		return p.Inspect(v)
	}
	if l.Sep == Comma || (parent != Comma && l.Sep == parent) || parent == Slash {
		return "(" + p.Inspect(v) + ")"
	}
	return p.Inspect(v)
}
