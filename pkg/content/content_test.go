package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aurum-R/Shellfast/pkg/content"
)

func TestCat(t *testing.T) {
	tests := []struct {
		name         string
		lines        []string
		numberLines  bool
		squeezeBlank bool
		want         string
	}{
		{
			name:  "plain passthrough",
			lines: []string{"one", "two"},
			want:  "one\ntwo\n",
		},
		{
			name:        "numbered",
			lines:       []string{"one", "two"},
			numberLines: true,
			want:        "     1\tone\n     2\ttwo\n",
		},
		{
			name:         "squeeze collapses blank runs",
			lines:        []string{"a", "", "", "", "b", "", "c"},
			squeezeBlank: true,
			want:         "a\n\nb\n\nc\n",
		},
		{
			name:         "whitespace-only lines count as blank",
			lines:        []string{"a", "  ", "\t", "b"},
			squeezeBlank: true,
			want:         "a\n  \nb\n",
		},
		{
			name:         "numbering counts emitted lines only",
			lines:        []string{"a", "", "", "b"},
			numberLines:  true,
			squeezeBlank: true,
			want:         "     1\ta\n     2\t\n     3\tb\n",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := content.Cat(tt.lines, tt.numberLines, tt.squeezeBlank)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEcho(t *testing.T) {
	assert.Equal(t, "hello\n", content.Echo("hello", false))
	assert.Equal(t, "hello", content.Echo("hello", true))
	assert.Equal(t, "\n", content.Echo("", false))
}

func TestHead(t *testing.T) {
	lines := []string{"1", "2", "3", "4", "5"}

	assert.Equal(t, "1\n2\n3\n", content.Head(lines, 3))
	assert.Equal(t, "1\n2\n3\n4\n5\n", content.Head(lines, 10))
	assert.Equal(t, "", content.Head(lines, 0))
	assert.Equal(t, "", content.Head(nil, 3))
}

func TestTail(t *testing.T) {
	lines := []string{"1", "2", "3", "4", "5"}

	assert.Equal(t, "3\n4\n5\n", content.Tail(lines, 3))
	assert.Equal(t, "1\n2\n3\n4\n5\n", content.Tail(lines, 10))
	assert.Equal(t, "", content.Tail(lines, 0))
	assert.Equal(t, "", content.Tail(nil, 3))
}

func TestHeadTailBytes(t *testing.T) {
	data := []byte("abcdefgh")

	assert.Equal(t, []byte("abc"), content.HeadBytes(data, 3))
	assert.Equal(t, data, content.HeadBytes(data, 100))
	assert.Equal(t, []byte("fgh"), content.TailBytes(data, 3))
	assert.Equal(t, data, content.TailBytes(data, 100))
	assert.Empty(t, content.HeadBytes(data, 0))
	assert.Empty(t, content.TailBytes(data, 0))
}
