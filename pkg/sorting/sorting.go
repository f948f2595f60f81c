// Package sorting orders line collections by a derived key with
// numeric, lexicographic, and case-insensitive comparators, optional
// reversal, and adjacent de-duplication.
package sorting

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Aurum-R/Shellfast/pkg/fields"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Options configures one sort call.
type Options struct {
	Reverse    bool
	Numeric    bool
	Unique     bool
	IgnoreCase bool

	// Key derives the comparison key per line; the zero value compares
	// whole lines.
	Key types.FieldKey
}

// Lines returns a sorted copy of the input. The sort is stable, so
// ties preserve original relative order before Reverse inverts the
// final ordering. Unique then removes lines equal to their immediate
// predecessor in the final sequence.
func Lines(lines []string, opts Options) []string {
	sorted := make([]string, len(lines))
	copy(sorted, lines)

	key := func(line string) string {
		return fields.ExtractFirst(line, opts.Key)
	}

	switch {
	case opts.Numeric:
		sort.SliceStable(sorted, func(i, j int) bool {
			return numericLess(sorted[i], sorted[j], key)
		})
	case opts.IgnoreCase:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(key(sorted[i])) < strings.ToLower(key(sorted[j]))
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return key(sorted[i]) < key(sorted[j])
		})
	}

	if opts.Reverse {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	if opts.Unique {
		sorted = dedupeAdjacent(sorted)
	}

	return sorted
}

// numericLess compares the derived keys as floating-point numbers.
// When either key fails to parse, the whole lines are compared
// lexicographically, not the keys.
func numericLess(a, b string, key func(string) string) bool {
	va, errA := strconv.ParseFloat(strings.TrimSpace(key(a)), 64)
	vb, errB := strconv.ParseFloat(strings.TrimSpace(key(b)), 64)
	if errA != nil || errB != nil {
		return a < b
	}
	return va < vb
}

// dedupeAdjacent drops lines identical to their immediate
// predecessor. Non-adjacent duplicates survive.
func dedupeAdjacent(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	out := lines[:1]
	for _, line := range lines[1:] {
		if line != out[len(out)-1] {
			out = append(out, line)
		}
	}
	return out
}
