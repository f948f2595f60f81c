package diff

import (
	"strings"

	"github.com/Aurum-R/Shellfast/pkg/types"
)

func prefix(kind types.DiffOpKind) string {
	switch kind {
	case types.DiffInsert:
		return "+"
	case types.DiffDelete:
		return "-"
	default:
		return " "
	}
}

// RenderUnified renders the script with ---/+++ headers and every op
// prefixed. The context parameter is accepted for interface
// compatibility but does not truncate output: all lines are shown.
func RenderUnified(ops []types.DiffOp, nameA, nameB string, context int) string {
	_ = context

	var sb strings.Builder
	sb.WriteString("--- " + nameA + "\n")
	sb.WriteString("+++ " + nameB + "\n")
	for _, op := range ops {
		sb.WriteString(prefix(op.Kind))
		sb.WriteString(" ")
		sb.WriteString(op.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderPlain renders only the Insert and Delete ops; equal lines are
// suppressed.
func RenderPlain(ops []types.DiffOp) string {
	var sb strings.Builder
	for _, op := range ops {
		if op.Kind == types.DiffEqual {
			continue
		}
		sb.WriteString(prefix(op.Kind))
		sb.WriteString(" ")
		sb.WriteString(op.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
