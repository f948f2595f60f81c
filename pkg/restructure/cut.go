// Package restructure implements the field-based restructuring
// engines: cut (field extraction), paste (multi-file line zipping),
// join (indexed equi-join), and the line/word/char/byte counter.
package restructure

import (
	"strings"

	"github.com/Aurum-R/Shellfast/pkg/fields"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// DefaultCutDelimiter is the field delimiter used when none is given.
const DefaultCutDelimiter = "\t"

// Cut extracts the selected fields from every line and re-emits them
// joined by the same delimiter, in ascending index order, one output
// line per input line. The selector is validated once before any line
// is processed.
func Cut(lines []string, delimiter, selector string) (string, error) {
	if delimiter == "" {
		delimiter = DefaultCutDelimiter
	}
	key := types.FieldKey{Delimiter: delimiter, Selector: selector}

	// Validate up front so a bad selector fails before any output.
	if _, err := fields.ParseSelector(selector); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, line := range lines {
		tokens, err := fields.Extract(line, key)
		if err != nil {
			return "", err
		}
		sb.WriteString(strings.Join(tokens, delimiter))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
