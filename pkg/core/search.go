package core

import (
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/search"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// GrepOptions configures the Grep operation.
type GrepOptions struct {
	Pattern string
	Path    string

	IgnoreCase  bool
	WholeWord   bool
	Invert      bool
	Recursive   bool
	LineNumbers bool
	CountOnly   bool
	FilesOnly   bool

	FileSystem types.FS
}

// Grep searches the target path for the pattern and returns the
// result in the mode the flags select.
func Grep(opts GrepOptions) (*types.GrepResult, error) {
	logger := logging.GetLogger("core.grep")
	defer logging.LogOperationStart(logger, "grep")()

	return search.Search(resolveFS(opts.FileSystem), opts.Path, search.Options{
		Spec: types.MatchSpec{
			Pattern:    opts.Pattern,
			IgnoreCase: opts.IgnoreCase,
			WholeWord:  opts.WholeWord,
			Invert:     opts.Invert,
		},
		Recursive:   opts.Recursive,
		CountOnly:   opts.CountOnly,
		FilesOnly:   opts.FilesOnly,
		LineNumbers: opts.LineNumbers,
	})
}
