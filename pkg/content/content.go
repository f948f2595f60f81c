// Package content implements the simple line-slicing operations: cat
// with line numbering and blank squeezing, echo, and head/tail over
// lines or bytes.
package content

import (
	"fmt"
	"strings"
)

// Cat re-emits the lines as a single string, one terminator per line.
// With numberLines set, every emitted line is prefixed with its
// 1-based output number. With squeezeBlank set, runs of blank lines
// collapse to one.
func Cat(lines []string, numberLines, squeezeBlank bool) string {
	var sb strings.Builder
	lineNum := 1
	prevBlank := false

	for _, line := range lines {
		isBlank := strings.TrimSpace(line) == ""

		if squeezeBlank && isBlank && prevBlank {
			continue
		}

		if numberLines {
			fmt.Fprintf(&sb, "     %d\t", lineNum)
			lineNum++
		}

		sb.WriteString(line)
		sb.WriteString("\n")
		prevBlank = isBlank
	}
	return sb.String()
}

// Echo returns the text with a trailing newline unless noNewline is
// set.
func Echo(text string, noNewline bool) string {
	if noNewline {
		return text
	}
	return text + "\n"
}

// Head returns the first n lines, re-terminated.
func Head(lines []string, n int) string {
	if n > len(lines) {
		n = len(lines)
	}
	if n < 0 {
		n = 0
	}
	return joinLines(lines[:n])
}

// HeadBytes returns the first n bytes.
func HeadBytes(data []byte, n int) []byte {
	if n > len(data) {
		n = len(data)
	}
	if n < 0 {
		n = 0
	}
	return data[:n]
}

// Tail returns the last n lines, re-terminated.
func Tail(lines []string, n int) string {
	start := len(lines) - n
	if start < 0 {
		start = 0
	}
	return joinLines(lines[start:])
}

// TailBytes returns the last n bytes.
func TailBytes(data []byte, n int) []byte {
	start := len(data) - n
	if start < 0 {
		start = 0
	}
	return data[start:]
}

func joinLines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
