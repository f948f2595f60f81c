// Package diff computes LCS-based edit scripts between two line
// sequences and renders them as unified or plain diffs.
package diff

import (
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Compute returns the minimal edit script transforming a into b,
// derived from a full O(n·m) dynamic-programming LCS table. Line
// equality is exact string equality.
//
// When the backtrack could legally take either a deletion-first or an
// insertion-first step, it prefers the insertion from b. This
// tie-break is fixed: on degenerate inputs with repeated lines it
// decides the output order, and callers rely on it being
// deterministic.
func Compute(a, b []string) []types.DiffOp {
	n, m := len(a), len(b)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] > dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack from the corner, building the script in reverse.
	var ops []types.DiffOp
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			ops = append(ops, types.DiffOp{Kind: types.DiffEqual, Text: a[i-1], LineA: i, LineB: j})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			ops = append(ops, types.DiffOp{Kind: types.DiffInsert, Text: b[j-1], LineB: j})
			j--
		default:
			ops = append(ops, types.DiffOp{Kind: types.DiffDelete, Text: a[i-1], LineA: i})
			i--
		}
	}

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}

// Apply replays an edit script against its first input: Equal lines
// are kept, Insert lines added, Delete lines skipped. The result is
// the second input, reconstructed exactly.
func Apply(ops []types.DiffOp) []string {
	var out []string
	for _, op := range ops {
		switch op.Kind {
		case types.DiffEqual, types.DiffInsert:
			out = append(out, op.Text)
		}
	}
	return out
}
