package core

import (
	"github.com/Aurum-R/Shellfast/pkg/filesystem"
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/restructure"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// CutOptions configures the CutFile operation.
type CutOptions struct {
	Path string

	// Delimiter is a single character; empty means tab.
	Delimiter string
	// Fields is a selector like "1", "2-4", or "1,3-5".
	Fields string

	FileSystem types.FS
}

// CutFile extracts the selected fields from every line of the file.
func CutFile(opts CutOptions) (string, error) {
	logger := logging.GetLogger("core.cut")
	defer logging.LogOperationStart(logger, "cut")()

	lines, err := filesystem.ReadLines(resolveFS(opts.FileSystem), opts.Path)
	if err != nil {
		return "", err
	}
	return restructure.Cut(lines, opts.Delimiter, opts.Fields)
}

// PasteOptions configures the PasteFiles operation.
type PasteOptions struct {
	Paths     []string
	Delimiter string

	FileSystem types.FS
}

// PasteFiles zips corresponding lines of the input files together.
func PasteFiles(opts PasteOptions) (string, error) {
	logger := logging.GetLogger("core.paste")
	defer logging.LogOperationStart(logger, "paste")()

	fsys := resolveFS(opts.FileSystem)
	inputs := make([][]string, 0, len(opts.Paths))
	for _, path := range opts.Paths {
		lines, err := filesystem.ReadLines(fsys, path)
		if err != nil {
			return "", err
		}
		inputs = append(inputs, lines)
	}
	return restructure.Paste(inputs, opts.Delimiter), nil
}

// JoinOptions configures the JoinFiles operation.
type JoinOptions struct {
	PathA string
	PathB string

	// FieldA and FieldB are the 1-based join fields; 0 means field 1.
	FieldA int
	FieldB int
	// Separator is the field separator; empty or space selects
	// whitespace splitting.
	Separator string

	FileSystem types.FS
}

// JoinFiles performs an indexed inner equi-join of two files.
func JoinFiles(opts JoinOptions) (string, error) {
	logger := logging.GetLogger("core.join")
	defer logging.LogOperationStart(logger, "join")()

	fsys := resolveFS(opts.FileSystem)
	linesA, err := filesystem.ReadLines(fsys, opts.PathA)
	if err != nil {
		return "", err
	}
	linesB, err := filesystem.ReadLines(fsys, opts.PathB)
	if err != nil {
		return "", err
	}

	fieldA, fieldB := opts.FieldA, opts.FieldB
	if fieldA < 1 {
		fieldA = 1
	}
	if fieldB < 1 {
		fieldB = 1
	}
	return restructure.Join(linesA, linesB, fieldA, fieldB, opts.Separator), nil
}

// WcOptions configures the CountFile operation.
type WcOptions struct {
	Path string

	LinesOnly bool
	WordsOnly bool
	CharsOnly bool
	BytesOnly bool

	FileSystem types.FS
}

// CountFile tallies lines, words, chars, and bytes. The *Only flags
// do not change the counting logic; they restrict which fields the
// renderer shows, so the full Counts is always returned.
func CountFile(opts WcOptions) (*types.Counts, error) {
	logger := logging.GetLogger("core.wc")
	defer logging.LogOperationStart(logger, "wc")()

	data, err := filesystem.ReadBytes(resolveFS(opts.FileSystem), opts.Path)
	if err != nil {
		return nil, err
	}

	counts := restructure.Count(data)
	counts.File = opts.Path
	return &counts, nil
}
