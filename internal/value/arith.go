package value

import (
	"math"

	"bennypowers.dev/sasseval/internal/position"
	"bennypowers.dev/sasseval/internal/sasserr"
)

// Add implements +. Numbers add after unit conversion, with a unitless
// operand taking the other's unit. A string on either side concatenates,
// the left string's quoting winning. Colors do not take part in arithmetic.
func Add(a, b Value, span position.Span) (Value, error) {
	v, err := add(a, b)
	return v, sasserr.WithSpan(err, span)
}

func add(a, b Value) (Value, error) {
	if an, ok := a.(Number); ok {
		if bn, ok := b.(Number); ok {
			return addNumbers(an, bn)
		}
	}
	if err := rejectColorMath(a, "+", b); err != nil {
		return nil, err
	}
	if as, ok := a.(String); ok {
		right, err := concatText(b)
		if err != nil {
			return nil, err
		}
		return String{Text: as.Text + right, Quotes: as.Quotes}, nil
	}
	left, err := concatText(a)
	if err != nil {
		return nil, err
	}
	right, err := concatText(b)
	if err != nil {
		return nil, err
	}
	quotes := Unquoted
	if bs, ok := b.(String); ok {
		quotes = bs.Quotes
	}
	return String{Text: left + right, Quotes: quotes}, nil
}

func addNumbers(a, b Number) (Value, error) {
	if a.Unit.IsNone() {
		return Number{Num: a.Num + b.Num, Unit: b.Unit}, nil
	}
	bn, err := convertForArithmetic(a, b)
	if err != nil {
		return nil, err
	}
	return Number{Num: a.Num + bn, Unit: a.Unit}, nil
}

// Sub implements -. Non-numeric operands produce the unquoted text "a-b".
func Sub(a, b Value, span position.Span) (Value, error) {
	v, err := sub(a, b)
	return v, sasserr.WithSpan(err, span)
}

func sub(a, b Value) (Value, error) {
	if an, ok := a.(Number); ok {
		if bn, ok := b.(Number); ok {
			return addNumbers(an, Number{Num: -bn.Num, Unit: bn.Unit})
		}
	}
	if err := rejectColorMath(a, "-", b); err != nil {
		return nil, err
	}
	left, err := cssText(a)
	if err != nil {
		return nil, err
	}
	right, err := cssText(b)
	if err != nil {
		return nil, err
	}
	return UnquotedString(left + "-" + right), nil
}

// Mul implements *. Units multiply into a compound unit, cancelling
// convertible pairs.
func Mul(a, b Value, span position.Span) (Value, error) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if !aok || !bok {
		return nil, sasserr.WithSpan(undefined(a, "*", b), span)
	}
	unit, k := an.Unit.Mul(bn.Unit)
	return Number{Num: an.Num * bn.Num * k, Unit: unit}, nil
}

// Div implements / between numbers; dividing by zero is an error. Other
// operands produce the unquoted slash form "a/b".
func Div(a, b Value, span position.Span) (Value, error) {
	v, err := div(a, b, false)
	return v, sasserr.WithSpan(err, span)
}

// DivCSSMath is Div for plain-CSS math contexts, where dividing by zero
// yields Infinity or NaN as CSS does.
func DivCSSMath(a, b Value, span position.Span) (Value, error) {
	v, err := div(a, b, true)
	return v, sasserr.WithSpan(err, span)
}

func div(a, b Value, lenient bool) (Value, error) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if aok && bok {
		if bn.Num == 0 && !lenient {
			return nil, sasserr.DivisionByZero(Inspect(an), "/")
		}
		unit, k := an.Unit.Div(bn.Unit)
		return Number{Num: an.Num / bn.Num * k, Unit: unit}, nil
	}
	if err := rejectColorMath(a, "/", b); err != nil {
		return nil, err
	}
	left, err := cssText(a)
	if err != nil {
		return nil, err
	}
	right, err := cssText(b)
	if err != nil {
		return nil, err
	}
	return UnquotedString(left + "/" + right), nil
}

// Mod implements %, taking the sign of the divisor.
func Mod(a, b Value, span position.Span) (Value, error) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if !aok || !bok {
		return nil, sasserr.WithSpan(undefined(a, "%", b), span)
	}
	if bn.Num == 0 {
		return nil, sasserr.WithSpan(sasserr.DivisionByZero(Inspect(an), "%"), span)
	}
	divisor, err := convertForArithmetic(an, bn)
	if err != nil {
		return nil, sasserr.WithSpan(err, span)
	}
	unit := an.Unit
	if unit.IsNone() {
		unit = bn.Unit
	}
	r := math.Mod(an.Num, divisor)
	if r != 0 && (r < 0) != (divisor < 0) {
		r += divisor
	}
	return Number{Num: r, Unit: unit}, nil
}

// Negate implements unary minus.
func Negate(v Value, span position.Span) (Value, error) {
	switch v := v.(type) {
	case Number:
		return Number{Num: -v.Num, Unit: v.Unit}, nil
	case Color:
		return nil, sasserr.WithSpan(sasserr.Invalidf("Undefined operation \"-%s\".", Inspect(v)), span)
	}
	s, err := ToCSS(v, span)
	if err != nil {
		return nil, err
	}
	return UnquotedString("-" + s), nil
}

func rejectColorMath(a Value, op string, b Value) error {
	_, ac := a.(Color)
	_, bc := b.(Color)
	_, an := a.(Number)
	_, bn := b.(Number)
	if (ac && (bn || bc)) || (bc && an) {
		return undefined(a, op, b)
	}
	return nil
}

func undefined(a Value, op string, b Value) error {
	return sasserr.UndefinedOperation(Inspect(a), op, Inspect(b))
}

// concatText is an operand's contribution to string concatenation: string
// text without its quotes, anything else as CSS.
func concatText(v Value) (string, error) {
	if s, ok := v.(String); ok {
		return s.Text, nil
	}
	return cssText(v)
}

func cssText(v Value) (string, error) {
	return defaultPrinter.toCSS(v, true)
}
