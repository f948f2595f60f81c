package restructure

import (
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Count tallies lines, words, chars, and bytes in one pass over the
// raw input. Lines are newline bytes; words are maximal
// whitespace-delimited non-empty runs; chars are counted per byte
// read (single-byte-per-character model).
func Count(data []byte) types.Counts {
	var counts types.Counts
	inWord := false

	for _, c := range data {
		counts.Bytes++
		counts.Chars++
		if c == '\n' {
			counts.Lines++
		}
		if isSpace(c) {
			inWord = false
		} else if !inWord {
			inWord = true
			counts.Words++
		}
	}
	return counts
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
