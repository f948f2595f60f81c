// Package compare holds the two comparison engines: the byte
// comparator, which finds the first differing byte between two
// inputs, and the set comparator, which partitions two line
// collections three ways.
package compare

import (
	"fmt"

	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Bytes compares two byte sequences and reports the first mismatch.
// Offsets and line numbers are 1-based; the line number advances on
// every newline consumed up to and including the mismatching
// position. With silent set, only Identical is populated.
func Bytes(a, b []byte, nameA, nameB string, silent bool) types.CmpResult {
	var offset int64
	lineNumber := 1
	identical := true

	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	for i := 0; i < limit; i++ {
		offset++
		if a[i] == '\n' {
			lineNumber++
		}
		if a[i] != b[i] {
			identical = false
			break
		}
	}

	// One input ending before the other is a difference at the first
	// position past the common prefix.
	if identical && len(a) != len(b) {
		identical = false
		offset++
	}

	result := types.CmpResult{Identical: identical}
	if !identical && !silent {
		result.ByteOffset = offset
		result.LineNumber = lineNumber
		result.Message = fmt.Sprintf("%s %s differ: byte %d, line %d", nameA, nameB, offset, lineNumber)
	}
	return result
}
