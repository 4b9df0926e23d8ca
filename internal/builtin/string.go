package builtin

import (
	"strings"
	"unicode/utf8"

	"bennypowers.dev/sasseval/internal/args"
	"bennypowers.dev/sasseval/internal/value"
	"github.com/google/uuid"
)

func declareString(r *Registry) {
	r.declare("quote", quote)
	r.declare("unquote", unquote)
	r.declare("str-length", strLength)
	r.declare("str-index", strIndex)
	r.declare("str-insert", strInsert)
	r.declare("str-slice", strSlice)
	r.declare("to-upper-case", changeCase(asciiUpper))
	r.declare("to-lower-case", changeCase(asciiLower))
	r.declare("unique-id", uniqueID)
}

func quote(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "string")
	if err != nil {
		return nil, err
	}
	return value.QuotedString(s.Text), nil
}

func unquote(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "string")
	if err != nil {
		return nil, err
	}
	return value.UnquotedString(s.Text), nil
}

func strLength(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(1); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "string")
	if err != nil {
		return nil, err
	}
	return value.Unitless(float64(utf8.RuneCountInString(s.Text))), nil
}

// strIndex returns the one-based code point index of $substring, or null.
func strIndex(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(2); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "string")
	if err != nil {
		return nil, err
	}
	sub, err := ctx.stringArg(a, 1, "substring")
	if err != nil {
		return nil, err
	}
	i := strings.Index(s.Text, sub.Text)
	if i < 0 {
		return value.Nil, nil
	}
	return value.Unitless(float64(utf8.RuneCountInString(s.Text[:i]) + 1)), nil
}

// strInsert inserts before the one-based $index; negative indexes count
// from the end, so -1 appends.
func strInsert(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(3); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "string")
	if err != nil {
		return nil, err
	}
	ins, err := ctx.stringArg(a, 1, "insert")
	if err != nil {
		return nil, err
	}
	index, err := ctx.intArg(a, 2, "index")
	if err != nil {
		return nil, err
	}

	runes := []rune(s.Text)
	n := len(runes)
	at := index
	if at < 0 {
		at = n + at + 2
	}
	at = min(max(at, 1), n+1) - 1

	out := string(runes[:at]) + ins.Text + string(runes[at:])
	return value.String{Text: out, Quotes: s.Quotes}, nil
}

// strSlice returns the code points from $start-at to $end-at inclusive,
// both one-based with negative values counting from the end.
func strSlice(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(3); err != nil {
		return nil, err
	}
	s, err := ctx.stringArg(a, 0, "string")
	if err != nil {
		return nil, err
	}
	start, err := ctx.intArg(a, 1, "start-at")
	if err != nil {
		return nil, err
	}
	endArg, err := a.DefaultArg(2, "end-at", value.Unitless(-1))
	if err != nil {
		return nil, err
	}
	endNum, err := ctx.asNumber(a, "end-at", endArg)
	if err != nil {
		return nil, err
	}
	end, err := ctx.asInt(a, "end-at", endNum)
	if err != nil {
		return nil, err
	}

	runes := []rune(s.Text)
	n := len(runes)
	if start < 0 {
		start = n + start + 1
	}
	if end < 0 {
		end = n + end + 1
	}
	start = max(start, 1)
	end = min(end, n)
	if end < start {
		return value.String{Quotes: s.Quotes}, nil
	}
	return value.String{Text: string(runes[start-1 : end]), Quotes: s.Quotes}, nil
}

// Sass changes case for ASCII letters only.
func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

func changeCase(mapping func(rune) rune) Func {
	return func(a *args.CallArgs, ctx *Context) (value.Value, error) {
		if err := a.MaxArgs(1); err != nil {
			return nil, err
		}
		s, err := ctx.stringArg(a, 0, "string")
		if err != nil {
			return nil, err
		}
		return value.String{Text: strings.Map(mapping, s.Text), Quotes: s.Quotes}, nil
	}
}

// uniqueID returns a random unquoted identifier that is a valid CSS name.
func uniqueID(a *args.CallArgs, ctx *Context) (value.Value, error) {
	if err := a.MaxArgs(0); err != nil {
		return nil, err
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return value.UnquotedString("u" + id[:12]), nil
}
