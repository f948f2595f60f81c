package search

import (
	"github.com/Aurum-R/Shellfast/pkg/filesystem"
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// Options configures one search request.
type Options struct {
	Spec types.MatchSpec

	// Recursive allows a directory target, expanded depth-first into
	// all contained regular files.
	Recursive bool

	// CountOnly returns per-file match counts; FilesOnly returns the
	// names of files with at least one match. The default mode lists
	// every matching line.
	CountOnly bool
	FilesOnly bool

	// LineNumbers includes 1-based line numbers in listed matches.
	LineNumbers bool
}

// Search runs a compiled pattern over the target path. The whole call
// fails on the first unreadable file; no partial results are
// returned.
func Search(fsys types.FS, path string, opts Options) (*types.GrepResult, error) {
	logger := logging.GetLogger("search")

	// Reject a bad pattern before touching any file.
	matcher, err := Compile(opts.Spec)
	if err != nil {
		return nil, err
	}

	files, err := filesystem.CollectFiles(fsys, path, opts.Recursive)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("pattern", opts.Spec.Pattern).
		Int("files", len(files)).
		Msg("Searching files")

	switch {
	case opts.CountOnly:
		return searchCounts(fsys, files, matcher)
	case opts.FilesOnly:
		return searchFiles(fsys, files, matcher)
	default:
		return searchMatches(fsys, files, matcher, opts.LineNumbers)
	}
}

func searchCounts(fsys types.FS, files []string, m *Matcher) (*types.GrepResult, error) {
	counts := make(map[string]int, len(files))
	for _, file := range files {
		lines, err := filesystem.ReadLines(fsys, file)
		if err != nil {
			return nil, err
		}
		n := 0
		for _, line := range lines {
			if m.MatchLine(line) {
				n++
			}
		}
		counts[file] = n
	}
	return &types.GrepResult{Mode: types.GrepCounts, Counts: counts}, nil
}

func searchFiles(fsys types.FS, files []string, m *Matcher) (*types.GrepResult, error) {
	var matching []string
	for _, file := range files {
		lines, err := filesystem.ReadLines(fsys, file)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			if m.MatchLine(line) {
				matching = append(matching, file)
				break
			}
		}
	}
	return &types.GrepResult{Mode: types.GrepFiles, Files: matching}, nil
}

func searchMatches(fsys types.FS, files []string, m *Matcher, lineNumbers bool) (*types.GrepResult, error) {
	multiFile := len(files) > 1

	var matches []types.Match
	for _, file := range files {
		lines, err := filesystem.ReadLines(fsys, file)
		if err != nil {
			return nil, err
		}
		for i, line := range lines {
			if !m.MatchLine(line) {
				continue
			}
			match := types.Match{Line: line}
			if multiFile {
				match.File = file
			}
			if lineNumbers {
				match.LineNumber = i + 1
			}
			matches = append(matches, match)
		}
	}
	return &types.GrepResult{Mode: types.GrepMatches, Matches: matches}, nil
}
