package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Renderer formats structured results for the terminal. With Color
// off every style collapses to plain text, so output stays pipeable.
type Renderer struct {
	Color bool
}

// NewRenderer creates a renderer with color decided by the given mode
// (auto, always, never).
func NewRenderer(colorMode string) *Renderer {
	return &Renderer{Color: ColorEnabled(colorMode)}
}

func (r *Renderer) styled(style interface{ Render(...string) string }, s string) string {
	if !r.Color {
		return s
	}
	return style.Render(s)
}

// RenderGrep formats a search result according to its mode.
func (r *Renderer) RenderGrep(result *types.GrepResult) string {
	var sb strings.Builder

	switch result.Mode {
	case types.GrepCounts:
		files := make([]string, 0, len(result.Counts))
		for file := range result.Counts {
			files = append(files, file)
		}
		sort.Strings(files)
		for _, file := range files {
			fmt.Fprintf(&sb, "%s:%d\n", r.styled(FileStyle, file), result.Counts[file])
		}

	case types.GrepFiles:
		for _, file := range result.Files {
			sb.WriteString(r.styled(FileStyle, file))
			sb.WriteString("\n")
		}

	default:
		for _, match := range result.Matches {
			var parts []string
			if match.File != "" {
				parts = append(parts, r.styled(FileStyle, match.File))
			}
			if match.LineNumber > 0 {
				parts = append(parts, r.styled(LineNumberStyle, fmt.Sprintf("%d", match.LineNumber)))
			}
			parts = append(parts, match.Line)
			sb.WriteString(strings.Join(parts, ":"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderDiff colorizes a rendered diff, line by line.
func (r *Renderer) RenderDiff(rendered string) string {
	if !r.Color {
		return rendered
	}

	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(rendered, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			sb.WriteString(InsertStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(DeleteStyle.Render(line))
		default:
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCmp formats a byte comparison result.
func (r *Renderer) RenderCmp(result *types.CmpResult) string {
	if result.Identical {
		return "files are identical\n"
	}
	if result.Message != "" {
		return result.Message + "\n"
	}
	return "files differ\n"
}

// RenderComm formats a set partition as three headed sections.
func (r *Renderer) RenderComm(result *types.CommResult) string {
	var sb strings.Builder
	sections := []struct {
		title string
		lines []string
	}{
		{"only in first", result.OnlyInFirst},
		{"only in second", result.OnlyInSecond},
		{"in both", result.InBoth},
	}
	for _, section := range sections {
		sb.WriteString(r.styled(HeadingStyle, section.title))
		sb.WriteString("\n")
		for _, line := range section.lines {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderCounts formats a wc result, restricted to one field when the
// corresponding flag is set.
func (r *Renderer) RenderCounts(counts *types.Counts, linesOnly, wordsOnly, charsOnly, bytesOnly bool) string {
	switch {
	case linesOnly:
		return fmt.Sprintf("%8d %s\n", counts.Lines, counts.File)
	case wordsOnly:
		return fmt.Sprintf("%8d %s\n", counts.Words, counts.File)
	case charsOnly:
		return fmt.Sprintf("%8d %s\n", counts.Chars, counts.File)
	case bytesOnly:
		return fmt.Sprintf("%8d %s\n", counts.Bytes, counts.File)
	default:
		return fmt.Sprintf("%8d %8d %8d %s\n", counts.Lines, counts.Words, counts.Bytes, counts.File)
	}
}

// RenderError prints an error with pterm's error styling when color
// is on.
func (r *Renderer) RenderError(err error) string {
	if !r.Color {
		return fmt.Sprintf("Error: %v", err)
	}
	return pterm.Error.Sprintf("%v", err)
}
