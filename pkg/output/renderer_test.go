package output_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aurum-R/Shellfast/pkg/output"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

func plain() *output.Renderer {
	return &output.Renderer{Color: false}
}

func TestRenderGrepMatches(t *testing.T) {
	result := &types.GrepResult{
		Mode: types.GrepMatches,
		Matches: []types.Match{
			{File: "a.txt", LineNumber: 3, Line: "error: one"},
			{File: "b.txt", LineNumber: 7, Line: "error: two"},
		},
	}

	got := plain().RenderGrep(result)
	assert.Equal(t, "a.txt:3:error: one\nb.txt:7:error: two\n", got)
}

func TestRenderGrepMatchesSingleFile(t *testing.T) {
	result := &types.GrepResult{
		Mode:    types.GrepMatches,
		Matches: []types.Match{{Line: "hit"}},
	}
	assert.Equal(t, "hit\n", plain().RenderGrep(result))
}

func TestRenderGrepCountsSorted(t *testing.T) {
	result := &types.GrepResult{
		Mode:   types.GrepCounts,
		Counts: map[string]int{"b.txt": 0, "a.txt": 2},
	}
	assert.Equal(t, "a.txt:2\nb.txt:0\n", plain().RenderGrep(result))
}

func TestRenderGrepFiles(t *testing.T) {
	result := &types.GrepResult{
		Mode:  types.GrepFiles,
		Files: []string{"x.txt", "y.txt"},
	}
	assert.Equal(t, "x.txt\ny.txt\n", plain().RenderGrep(result))
}

func TestRenderDiffPlainPassthrough(t *testing.T) {
	rendered := "--- a\n+++ b\n- x\n+ y\n"
	assert.Equal(t, rendered, plain().RenderDiff(rendered))
}

func TestRenderCmp(t *testing.T) {
	assert.Equal(t, "files are identical\n",
		plain().RenderCmp(&types.CmpResult{Identical: true}))

	assert.Equal(t, "a b differ: byte 5, line 1\n",
		plain().RenderCmp(&types.CmpResult{Message: "a b differ: byte 5, line 1"}))

	// Silent comparisons carry no message.
	assert.Equal(t, "files differ\n",
		plain().RenderCmp(&types.CmpResult{}))
}

func TestRenderComm(t *testing.T) {
	result := &types.CommResult{
		OnlyInFirst:  []string{"alpha"},
		OnlyInSecond: []string{"beta"},
		InBoth:       []string{"gamma"},
	}

	want := "only in first\n  alpha\n" +
		"only in second\n  beta\n" +
		"in both\n  gamma\n"
	assert.Equal(t, want, plain().RenderComm(result))
}

func TestRenderCounts(t *testing.T) {
	counts := &types.Counts{File: "f.txt", Lines: 3, Words: 12, Chars: 70, Bytes: 70}
	r := plain()

	assert.Equal(t, "       3       12       70 f.txt\n",
		r.RenderCounts(counts, false, false, false, false))
	assert.Equal(t, "       3 f.txt\n", r.RenderCounts(counts, true, false, false, false))
	assert.Equal(t, "      12 f.txt\n", r.RenderCounts(counts, false, true, false, false))
	assert.Equal(t, "      70 f.txt\n", r.RenderCounts(counts, false, false, true, false))
	assert.Equal(t, "      70 f.txt\n", r.RenderCounts(counts, false, false, false, true))
}

func TestRenderError(t *testing.T) {
	got := plain().RenderError(stderrors.New("boom"))
	assert.Equal(t, "Error: boom", got)
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, output.ColorEnabled("always"))
	assert.False(t, output.ColorEnabled("never"))
}
