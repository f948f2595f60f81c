package restructure

import (
	"strconv"
	"strings"

	"github.com/Aurum-R/Shellfast/pkg/fields"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// DefaultJoinSeparator is used when no separator is given; it selects
// whitespace-run field splitting.
const DefaultJoinSeparator = " "

// Join performs an indexed inner equi-join of two line collections.
// It builds a multi-map from the join key of every b line, then emits
// one row per (a line, matching b line) pair, so a line with k
// matches produces k rows and a line with none is silently dropped.
// Row format: a line, separator, b line. Matches for a key keep b's
// original order.
func Join(a, b []string, fieldA, fieldB int, separator string) string {
	if separator == "" {
		separator = DefaultJoinSeparator
	}

	key := func(line string, field int) string {
		k := types.FieldKey{Selector: strconv.Itoa(field)}
		if separator != " " {
			k.Delimiter = separator
		}
		return fields.ExtractFirst(line, k)
	}

	index := make(map[string][]string)
	for _, line := range b {
		k := key(line, fieldB)
		index[k] = append(index[k], line)
	}

	var sb strings.Builder
	for _, line := range a {
		for _, match := range index[key(line, fieldA)] {
			sb.WriteString(line)
			sb.WriteString(separator)
			sb.WriteString(match)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
