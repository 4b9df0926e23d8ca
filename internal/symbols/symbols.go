// Package symbols holds the closed vocabularies of SassScript: punctuation,
// whitespace, comparison operators, keywords, at-rules and CSS properties.
// Every table maps both ways between the enumerated tag and its spelling and
// is read-only after package initialization.
package symbols

// Symbol is a single punctuation character with meaning to the parser.
type Symbol uint8

const (
	Period Symbol = iota + 1
	Hash
	At
	Dollar
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	Comma
	Plus
	Minus
	Mul
	Div
	Colon
	SemiColon
	Tilde
	Gt
	Lt
	Xor
	Equal
	BitOr
	BitAnd
	Percent
	DoubleQuote
	SingleQuote
)

var symbolRunes = [...]rune{
	Period:       '.',
	Hash:         '#',
	At:           '@',
	Dollar:       '$',
	OpenParen:    '(',
	CloseParen:   ')',
	OpenBrace:    '{',
	CloseBrace:   '}',
	OpenBracket:  '[',
	CloseBracket: ']',
	Comma:        ',',
	Plus:         '+',
	Minus:        '-',
	Mul:          '*',
	Div:          '/',
	Colon:        ':',
	SemiColon:    ';',
	Tilde:        '~',
	Gt:           '>',
	Lt:           '<',
	Xor:          '^',
	Equal:        '=',
	BitOr:        '|',
	BitAnd:       '&',
	Percent:      '%',
	DoubleQuote:  '"',
	SingleQuote:  '\'',
}

var symbolsByRune = invert(symbolRunes[:])

// Rune returns the character the symbol stands for.
func (s Symbol) Rune() rune {
	if int(s) < len(symbolRunes) {
		return symbolRunes[s]
	}
	return 0
}

func (s Symbol) String() string {
	if r := s.Rune(); r != 0 {
		return string(r)
	}
	return ""
}

// ParseSymbol looks up the symbol for c.
func ParseSymbol(c rune) (Symbol, bool) {
	s, ok := symbolsByRune[c]
	return Symbol(s), ok
}

// Whitespace is a whitespace character significant to CSS output.
type Whitespace uint8

const (
	Space Whitespace = iota + 1
	Tab
	Newline
	CarriageReturn
)

var whitespaceRunes = [...]rune{
	Space:          ' ',
	Tab:            '\t',
	Newline:        '\n',
	CarriageReturn: '\r',
}

var whitespaceByRune = invert(whitespaceRunes[:])

func (w Whitespace) String() string {
	if int(w) < len(whitespaceRunes) && w != 0 {
		return string(whitespaceRunes[w])
	}
	return ""
}

// ParseWhitespace looks up the whitespace tag for c.
func ParseWhitespace(c rune) (Whitespace, bool) {
	w, ok := whitespaceByRune[c]
	return Whitespace(w), ok
}

// Op is a two-character comparison operator.
type Op uint8

const (
	OpEqual Op = iota + 1
	OpNotEqual
	OpGreaterThanEqual
	OpLessThanEqual
)

var opSpellings = [...]string{
	OpEqual:            "==",
	OpNotEqual:         "!=",
	OpGreaterThanEqual: ">=",
	OpLessThanEqual:    "<=",
}

var opsBySpelling = invert(opSpellings[:])

func (o Op) String() string { return lookup(opSpellings[:], int(o)) }

// ParseOp looks up a comparison operator.
func ParseOp(s string) (Op, bool) {
	o, ok := opsBySpelling[s]
	return Op(o), ok
}

// Keyword is a reserved SassScript word.
type Keyword uint8

const (
	Important Keyword = iota + 1
	Infinity
	NaN
	Auto
	Inherit
	Initial
	Unset
	True
	False
	Not
	And
	Or
	Null
)

// keywordSpellings is how a keyword renders; keywordSources is how it is
// written in a stylesheet. They differ for !important, Infinity and NaN.
var keywordSpellings = [...]string{
	Important: "!important",
	Infinity:  "Infinity",
	NaN:       "NaN",
	Auto:      "auto",
	Inherit:   "inherit",
	Initial:   "initial",
	Unset:     "unset",
	True:      "true",
	False:     "false",
	Not:       "not",
	And:       "and",
	Or:        "or",
	Null:      "null",
}

var keywordSources = [...]string{
	Important: "important",
	Infinity:  "infinity",
	NaN:       "nan",
	Auto:      "auto",
	Inherit:   "inherit",
	Initial:   "initial",
	Unset:     "unset",
	True:      "true",
	False:     "false",
	Not:       "not",
	And:       "and",
	Or:        "or",
	Null:      "null",
}

var keywordsBySource = invert(keywordSources[:])

func (k Keyword) String() string { return lookup(keywordSpellings[:], int(k)) }

// ParseKeyword matches kw case-sensitively against the source spellings.
func ParseKeyword(kw string) (Keyword, bool) {
	k, ok := keywordsBySource[kw]
	return Keyword(k), ok
}

// AtRule is an @-rule name, Sass-specific or plain CSS.
type AtRule uint8

const (
	// Sass at-rules
	Use AtRule = iota + 1
	Forward
	Import
	Mixin
	Include
	Function
	Return
	Content
	Extend
	AtRoot
	Error
	Warn
	Debug
	If
	Else
	Each
	For
	While

	// CSS at-rules
	Charset
	Namespace
	Media
	Supports
	Page
	FontFace
	Keyframes
	FontFeatureValues
	Swash
	Ornaments
	Annotation
	Stylistic
	Styleset
	CharacterVariant

	// Experimental CSS at-rules
	Viewport
	Document
	CounterStyle
)

var atRuleSpellings = [...]string{
	Use:               "use",
	Forward:           "forward",
	Import:            "import",
	Mixin:             "mixin",
	Include:           "include",
	Function:          "function",
	Return:            "return",
	Content:           "content",
	Extend:            "extend",
	AtRoot:            "at-root",
	Error:             "error",
	Warn:              "warn",
	Debug:             "debug",
	If:                "if",
	Else:              "else",
	Each:              "each",
	For:               "for",
	While:             "while",
	Charset:           "charset",
	Namespace:         "namespace",
	Media:             "media",
	Supports:          "supports",
	Page:              "page",
	FontFace:          "font-face",
	Keyframes:         "keyframes",
	FontFeatureValues: "font-feature-values",
	Swash:             "swash",
	Ornaments:         "ornaments",
	Annotation:        "annotation",
	Stylistic:         "stylistic",
	Styleset:          "styleset",
	CharacterVariant:  "character-variant",
	Viewport:          "viewport",
	Document:          "document",
	CounterStyle:      "counter-style",
}

var atRulesBySpelling = invert(atRuleSpellings[:])

func (a AtRule) String() string { return lookup(atRuleSpellings[:], int(a)) }

// IsSass reports whether the rule is handled by Sass rather than emitted as CSS.
func (a AtRule) IsSass() bool { return a >= Use && a <= While }

// ParseAtRule looks up an at-rule name given without its leading "@".
func ParseAtRule(name string) (AtRule, bool) {
	a, ok := atRulesBySpelling[name]
	return AtRule(a), ok
}

func (p Property) String() string { return lookup(propertyNames[:], int(p)) }

// ParseProperty looks up a CSS property name.
func ParseProperty(name string) (Property, bool) {
	p, ok := propertiesByName[name]
	return Property(p), ok
}

var propertiesByName = invert(propertyNames[:])

func lookup(table []string, i int) string {
	if i > 0 && i < len(table) {
		return table[i]
	}
	return ""
}

// invert builds the reverse index of a tag-indexed table. Index 0 is the
// invalid tag and is skipped.
func invert[K comparable](table []K) map[K]int {
	m := make(map[K]int, len(table))
	for i, k := range table {
		if i == 0 {
			continue
		}
		m[k] = i
	}
	return m
}
