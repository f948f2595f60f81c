package restructure

import "strings"

// DefaultPasteDelimiter separates pasted columns when none is given.
const DefaultPasteDelimiter = "\t"

// Paste zips the i-th line of every input together, separated by the
// delimiter. Inputs of unequal length contribute empty fields past
// their end; the row is still emitted with all delimiters in place.
func Paste(inputs [][]string, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultPasteDelimiter
	}

	maxLines := 0
	for _, lines := range inputs {
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}

	var sb strings.Builder
	for i := 0; i < maxLines; i++ {
		for f, lines := range inputs {
			if f > 0 {
				sb.WriteString(delimiter)
			}
			if i < len(lines) {
				sb.WriteString(lines[i])
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
