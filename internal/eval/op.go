package eval

import (
	"unicode/utf8"

	"bennypowers.dev/sasseval/internal/symbols"
)

// Op is a SassScript operator.
type Op uint8

const (
	Add Op = iota + 1
	Sub
	Mul
	Div
	Mod
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
	And
	Or
	Not
)

var opText = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
	Eq:  "==",
	Neq: "!=",
	Lt:  "<",
	Lte: "<=",
	Gt:  ">",
	Gte: ">=",
	And: "and",
	Or:  "or",
	Not: "not",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return ""
}

var bySymbol = map[symbols.Symbol]Op{
	symbols.Plus:    Add,
	symbols.Minus:   Sub,
	symbols.Mul:     Mul,
	symbols.Div:     Div,
	symbols.Percent: Mod,
	symbols.Lt:      Lt,
	symbols.Gt:      Gt,
}

var byComparison = map[symbols.Op]Op{
	symbols.OpEqual:            Eq,
	symbols.OpNotEqual:         Neq,
	symbols.OpLessThanEqual:    Lte,
	symbols.OpGreaterThanEqual: Gte,
}

var byKeyword = map[symbols.Keyword]Op{
	symbols.And: And,
	symbols.Or:  Or,
	symbols.Not: Not,
}

// ParseOp reads an operator as written in a stylesheet.
func ParseOp(s string) (Op, bool) {
	if r, size := utf8.DecodeRuneInString(s); size == len(s) {
		if sym, ok := symbols.ParseSymbol(r); ok {
			op, ok := bySymbol[sym]
			return op, ok
		}
	}
	if c, ok := symbols.ParseOp(s); ok {
		return byComparison[c], true
	}
	if kw, ok := symbols.ParseKeyword(s); ok {
		op, ok := byKeyword[kw]
		return op, ok
	}
	return 0, false
}
