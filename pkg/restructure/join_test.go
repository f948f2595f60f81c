package restructure_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aurum-R/Shellfast/pkg/restructure"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name           string
		a, b           []string
		fieldA, fieldB int
		separator      string
		want           string
	}{
		{
			name:   "inner join on first field",
			a:      []string{"1 alice", "2 bob"},
			b:      []string{"1 admin", "3 guest"},
			fieldA: 1, fieldB: 1,
			want: "1 alice 1 admin\n",
		},
		{
			name:   "unmatched lines dropped from both sides",
			a:      []string{"k1 x", "k2 y"},
			b:      []string{"k3 z"},
			fieldA: 1, fieldB: 1,
			want: "",
		},
		{
			name:   "join on different field positions",
			a:      []string{"alice 10"},
			b:      []string{"10 engineering"},
			fieldA: 2, fieldB: 1,
			want: "alice 10 10 engineering\n",
		},
		{
			name:   "explicit separator splits on it",
			a:      []string{"1:alice"},
			b:      []string{"1:admin"},
			fieldA: 1, fieldB: 1,
			separator: ":",
			want:      "1:alice:1:admin\n",
		},
		{
			name:   "multiple matches keep b order",
			a:      []string{"k left"},
			b:      []string{"k first", "k second"},
			fieldA: 1, fieldB: 1,
			want: "k left k first\nk left k second\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := restructure.Join(tt.a, tt.b, tt.fieldA, tt.fieldB, tt.separator)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinCardinality(t *testing.T) {
	// n matching lines on one side and m on the other produce n*m rows.
	a := []string{"k a1", "k a2", "k a3"}
	b := []string{"k b1", "k b2"}

	got := restructure.Join(a, b, 1, 1, "")
	rows := strings.Count(got, "\n")
	assert.Equal(t, 6, rows)

	// Rows are grouped per a line, with b's order inside each group.
	want := "k a1 k b1\nk a1 k b2\n" +
		"k a2 k b1\nk a2 k b2\n" +
		"k a3 k b1\nk a3 k b2\n"
	assert.Equal(t, want, got)
}

func TestJoinEmptyInputs(t *testing.T) {
	assert.Empty(t, restructure.Join(nil, []string{"k x"}, 1, 1, ""))
	assert.Empty(t, restructure.Join([]string{"k x"}, nil, 1, 1, ""))
}
