package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aurum-R/Shellfast/pkg/diff"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

func TestComputeReplacement(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}

	ops := diff.Compute(a, b)
	require.Len(t, ops, 4)

	assert.Equal(t, types.DiffOp{Kind: types.DiffEqual, Text: "a", LineA: 1, LineB: 1}, ops[0])
	assert.Equal(t, types.DiffOp{Kind: types.DiffDelete, Text: "b", LineA: 2}, ops[1])
	assert.Equal(t, types.DiffOp{Kind: types.DiffInsert, Text: "x", LineB: 2}, ops[2])
	assert.Equal(t, types.DiffOp{Kind: types.DiffEqual, Text: "c", LineA: 3, LineB: 3}, ops[3])
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		a, b      []string
		wantKinds []types.DiffOpKind
	}{
		{
			name:      "identical inputs",
			a:         []string{"a", "b"},
			b:         []string{"a", "b"},
			wantKinds: []types.DiffOpKind{types.DiffEqual, types.DiffEqual},
		},
		{
			name:      "pure insertion",
			a:         []string{"a", "c"},
			b:         []string{"a", "b", "c"},
			wantKinds: []types.DiffOpKind{types.DiffEqual, types.DiffInsert, types.DiffEqual},
		},
		{
			name:      "pure deletion",
			a:         []string{"a", "b", "c"},
			b:         []string{"a", "c"},
			wantKinds: []types.DiffOpKind{types.DiffEqual, types.DiffDelete, types.DiffEqual},
		},
		{
			name:      "empty to nonempty",
			a:         nil,
			b:         []string{"a", "b"},
			wantKinds: []types.DiffOpKind{types.DiffInsert, types.DiffInsert},
		},
		{
			name:      "nonempty to empty",
			a:         []string{"a", "b"},
			b:         nil,
			wantKinds: []types.DiffOpKind{types.DiffDelete, types.DiffDelete},
		},
		{
			name:      "both empty",
			a:         nil,
			b:         nil,
			wantKinds: nil,
		},
		{
			name:      "no common lines",
			a:         []string{"a"},
			b:         []string{"x", "y"},
			wantKinds: []types.DiffOpKind{types.DiffDelete, types.DiffInsert, types.DiffInsert},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := diff.Compute(tt.a, tt.b)
			kinds := make([]types.DiffOpKind, 0, len(ops))
			for _, op := range ops {
				kinds = append(kinds, op.Kind)
			}
			if tt.wantKinds == nil {
				assert.Empty(t, ops)
				return
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestApplyRoundTrip(t *testing.T) {
	cases := [][2][]string{
		{{"a", "b", "c"}, {"a", "x", "c"}},
		{{"one", "two"}, {"two", "three", "four"}},
		{{}, {"a"}},
		{{"a", "a", "a"}, {"a", "b", "a"}},
		{{"x", "y", "z"}, {}},
	}

	for _, c := range cases {
		ops := diff.Compute(c[0], c[1])
		got := diff.Apply(ops)
		assert.Equal(t, len(c[1]), len(got))
		for i := range c[1] {
			assert.Equal(t, c[1][i], got[i])
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	// Repeated lines admit multiple minimal scripts; the tie-break must
	// pick the same one every run.
	a := []string{"x", "x", "y", "x"}
	b := []string{"x", "y", "x", "x"}

	first := diff.Compute(a, b)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, diff.Compute(a, b))
	}
}

func TestRenderUnified(t *testing.T) {
	ops := diff.Compute([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	got := diff.RenderUnified(ops, "old.txt", "new.txt", 3)

	want := "--- old.txt\n" +
		"+++ new.txt\n" +
		"  a\n" +
		"- b\n" +
		"+ x\n" +
		"  c\n"
	assert.Equal(t, want, got)
}

func TestRenderPlain(t *testing.T) {
	ops := diff.Compute([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	got := diff.RenderPlain(ops)

	assert.Equal(t, "- b\n+ x\n", got)
}
