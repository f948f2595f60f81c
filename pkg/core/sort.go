package core

import (
	"strconv"
	"strings"

	"github.com/Aurum-R/Shellfast/pkg/filesystem"
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/sorting"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// SortOptions configures the SortFile operation.
type SortOptions struct {
	Path string

	Reverse    bool
	Numeric    bool
	Unique     bool
	IgnoreCase bool

	// Key is the 1-based sort field; 0 sorts on the entire line.
	Key int
	// Separator is the field separator character; empty means
	// whitespace-run splitting.
	Separator string

	FileSystem types.FS
}

// SortFile reads the file and returns its lines sorted according to
// the options, re-terminated.
func SortFile(opts SortOptions) (string, error) {
	logger := logging.GetLogger("core.sort")
	defer logging.LogOperationStart(logger, "sort")()

	fsys := resolveFS(opts.FileSystem)
	lines, err := filesystem.ReadLines(fsys, opts.Path)
	if err != nil {
		return "", err
	}

	key := types.FieldKey{Delimiter: opts.Separator}
	if opts.Key > 0 {
		key.Selector = strconv.Itoa(opts.Key)
	}

	sorted := sorting.Lines(lines, sorting.Options{
		Reverse:    opts.Reverse,
		Numeric:    opts.Numeric,
		Unique:     opts.Unique,
		IgnoreCase: opts.IgnoreCase,
		Key:        key,
	})

	var sb strings.Builder
	for _, line := range sorted {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
