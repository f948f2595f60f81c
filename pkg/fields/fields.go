// Package fields implements field extraction: given a line, a
// delimiter, and a 1-based selector, it returns the selected tokens.
// The sort, join, cut, and search engines all derive their keys
// through this package.
package fields

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Aurum-R/Shellfast/pkg/errors"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// ParseSelector parses a selector like "1", "2-4" or "1,3-5" into the
// ascending, deduplicated list of 1-based field indices it names.
// Overlapping ranges collapse by index.
func ParseSelector(selector string) ([]int, error) {
	seen := make(map[int]bool)

	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.Newf(errors.ErrInvalidFieldSpec, "empty field in selector %q", selector)
		}

		if dash := strings.Index(part, "-"); dash > 0 {
			start, err := parseIndex(part[:dash], selector)
			if err != nil {
				return nil, err
			}
			end, err := parseIndex(part[dash+1:], selector)
			if err != nil {
				return nil, err
			}
			if end < start {
				return nil, errors.Newf(errors.ErrInvalidFieldSpec, "range %q is reversed", part)
			}
			for i := start; i <= end; i++ {
				seen[i] = true
			}
			continue
		}

		idx, err := parseIndex(part, selector)
		if err != nil {
			return nil, err
		}
		seen[idx] = true
	}

	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices, nil
}

func parseIndex(s, selector string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidFieldSpec, "bad field index %q in selector %q", s, selector)
	}
	if idx < 1 {
		return 0, errors.Newf(errors.ErrInvalidFieldSpec, "field index %d is not 1-based", idx)
	}
	return idx, nil
}

// Split tokenizes a line according to the key's delimiter. With no
// delimiter, tokens are maximal runs of non-whitespace; with one, the
// delimiter is a literal single character.
func Split(line string, key types.FieldKey) []string {
	if key.Delimiter == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, key.Delimiter)
}

// Extract returns the tokens the key selects, in ascending index
// order. An index beyond the available field count yields an empty
// string, never an error. A whole-line key yields the line itself.
func Extract(line string, key types.FieldKey) ([]string, error) {
	if key.WholeLine() {
		return []string{line}, nil
	}

	indices, err := ParseSelector(key.Selector)
	if err != nil {
		return nil, err
	}

	tokens := Split(line, key)
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		out = append(out, tokenAt(tokens, idx))
	}
	return out, nil
}

// ExtractFirst derives a single key string from the first selector
// entry, the form the sort and join engines use. An out-of-range
// index silently yields the empty string, and a malformed selector
// degrades to the whole line rather than raising.
func ExtractFirst(line string, key types.FieldKey) string {
	if key.WholeLine() {
		return line
	}

	indices, err := ParseSelector(key.Selector)
	if err != nil || len(indices) == 0 {
		return line
	}
	return tokenAt(Split(line, key), indices[0])
}

func tokenAt(tokens []string, idx int) string {
	if idx < 1 || idx > len(tokens) {
		return ""
	}
	return tokens[idx-1]
}
