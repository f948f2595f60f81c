package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aurum-R/Shellfast/pkg/errors"
	"github.com/Aurum-R/Shellfast/pkg/search"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

func TestCompileInvalidPattern(t *testing.T) {
	_, err := search.Compile(types.MatchSpec{Pattern: "["})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
}

func TestMatchLine(t *testing.T) {
	tests := []struct {
		name string
		spec types.MatchSpec
		line string
		want bool
	}{
		{
			name: "plain substring",
			spec: types.MatchSpec{Pattern: "err"},
			line: "an error occurred",
			want: true,
		},
		{
			name: "anchored pattern",
			spec: types.MatchSpec{Pattern: "^err"},
			line: "an error occurred",
			want: false,
		},
		{
			name: "case sensitive by default",
			spec: types.MatchSpec{Pattern: "Error"},
			line: "error",
			want: false,
		},
		{
			name: "ignore case",
			spec: types.MatchSpec{Pattern: "Error", IgnoreCase: true},
			line: "an error occurred",
			want: true,
		},
		{
			name: "whole word rejects substring hit",
			spec: types.MatchSpec{Pattern: "err", WholeWord: true},
			line: "an error occurred",
			want: false,
		},
		{
			name: "whole word accepts isolated token",
			spec: types.MatchSpec{Pattern: "err", WholeWord: true},
			line: "err: bad input",
			want: true,
		},
		{
			name: "invert flips the result",
			spec: types.MatchSpec{Pattern: "err", Invert: true},
			line: "an error occurred",
			want: false,
		},
		{
			name: "invert matches clean line",
			spec: types.MatchSpec{Pattern: "err", Invert: true},
			line: "all good",
			want: true,
		},
		{
			name: "invert composes with ignore case",
			spec: types.MatchSpec{Pattern: "ERR", IgnoreCase: true, Invert: true},
			line: "an error occurred",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := search.Compile(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.MatchLine(tt.line))
		})
	}
}
