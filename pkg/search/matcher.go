// Package search implements pattern matching over line collections:
// a compiled matcher derived from a MatchSpec, and the engine that
// runs it across one or many files in three output modes.
package search

import (
	"regexp"

	"github.com/Aurum-R/Shellfast/pkg/errors"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Matcher is a MatchSpec compiled once per search request and reused
// across all candidate lines.
type Matcher struct {
	re     *regexp.Regexp
	invert bool
}

// Compile derives a matcher from the spec. WholeWord wraps the
// pattern in word-boundary assertions before compilation; IgnoreCase
// is applied as a regexp flag. Invalid pattern syntax fails with
// ErrInvalidPattern before any input is inspected.
func Compile(spec types.MatchSpec) (*Matcher, error) {
	pattern := spec.Pattern
	if spec.WholeWord {
		pattern = `\b` + pattern + `\b`
	}
	if spec.IgnoreCase {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", spec.Pattern)
	}

	return &Matcher{re: re, invert: spec.Invert}, nil
}

// MatchLine evaluates one line. Inversion flips the boolean result
// after the whole-word and case adjustments have been applied.
func (m *Matcher) MatchLine(line string) bool {
	match := m.re.MatchString(line)
	if m.invert {
		match = !match
	}
	return match
}
