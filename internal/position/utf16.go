package position

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16ToByteOffset converts a UTF-16 column within a single line to a byte
// offset. A column that lands inside a surrogate pair clamps to the start of
// the rune; a column past the end clamps to len(line).
func UTF16ToByteOffset(line string, col int) int {
	units := 0
	for i, r := range line {
		if units >= col {
			return i
		}
		n := utf16.RuneLen(r)
		if n < 1 {
			// invalid UTF-8 counts as one unit
			n = 1
		}
		if units+n > col {
			return i
		}
		units += n
	}
	return len(line)
}

// ByteOffsetToUTF16 converts a byte offset within a line to a UTF-16 column.
// Offsets that split a rune count only the runes that end before them.
func ByteOffsetToUTF16(line string, offset int) int {
	if offset > len(line) {
		offset = len(line)
	}
	units := 0
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(line[i:])
		if i+size > offset {
			break
		}
		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		units += n
		i += size
	}
	return units
}

// StringLengthUTF16 returns the length of s in UTF-16 code units.
func StringLengthUTF16(s string) int {
	return ByteOffsetToUTF16(s, len(s))
}
