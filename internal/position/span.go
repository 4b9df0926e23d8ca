// Package position locates values in source text. Lines and characters are
// zero-based and characters count UTF-16 code units, which is what the
// language server protocol expects; String renders one-based positions for
// humans.
package position

import (
	"fmt"
	"strings"
)

// Position is a zero-based line and UTF-16 character offset.
type Position struct {
	Line      uint32
	Character uint32
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Character < o.Character)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// Span is a half-open source range. The zero Span means "unknown location".
type Span struct {
	Start Position
	End   Position
}

// IsZero reports whether the span carries no location.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Contains reports whether p falls inside the span (end inclusive, so a
// cursor placed right after a call still hovers it).
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && !s.End.Before(p)
}

// Len returns a rough ordering key for choosing the innermost of nested spans.
func (s Span) Len() uint64 {
	return uint64(s.End.Line-s.Start.Line)<<32 | uint64(s.End.Character) - uint64(s.Start.Character)
}

func (s Span) String() string {
	if s.IsZero() {
		return "-"
	}
	return s.Start.String()
}

// FromByteOffsets builds a span from two byte offsets into content.
func FromByteOffsets(content string, start, end int) Span {
	return Span{Start: At(content, start), End: At(content, end)}
}

// At converts a byte offset into content to a Position.
func At(content string, offset int) Position {
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Line:      uint32(line),
		Character: uint32(ByteOffsetToUTF16(content[lineStart:], offset-lineStart)),
	}
}

// Offset converts a Position back into a byte offset into content. Positions
// past the end of a line clamp to the line end; lines past the end of content
// clamp to len(content).
func Offset(content string, p Position) int {
	start := 0
	for i := uint32(0); i < p.Line; i++ {
		nl := strings.IndexByte(content[start:], '\n')
		if nl < 0 {
			return len(content)
		}
		start += nl + 1
	}
	line := content[start:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	return start + UTF16ToByteOffset(line, int(p.Character))
}
