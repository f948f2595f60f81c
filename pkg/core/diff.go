package core

import (
	"github.com/Aurum-R/Shellfast/pkg/diff"
	"github.com/Aurum-R/Shellfast/pkg/filesystem"
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// DiffOptions configures the DiffFiles operation.
type DiffOptions struct {
	PathA string
	PathB string

	// Unified renders with ---/+++ headers and equal lines included;
	// otherwise only changed lines are shown.
	Unified bool
	// Context is accepted for interface compatibility; output is
	// never truncated.
	Context int

	FileSystem types.FS
}

// DiffResult carries both the structured edit script and its rendered
// form.
type DiffResult struct {
	Ops      []types.DiffOp
	Rendered string
}

// DiffFiles computes the edit script between two files and renders
// it.
func DiffFiles(opts DiffOptions) (*DiffResult, error) {
	logger := logging.GetLogger("core.diff")
	defer logging.LogOperationStart(logger, "diff")()

	fsys := resolveFS(opts.FileSystem)
	linesA, err := filesystem.ReadLines(fsys, opts.PathA)
	if err != nil {
		return nil, err
	}
	linesB, err := filesystem.ReadLines(fsys, opts.PathB)
	if err != nil {
		return nil, err
	}

	ops := diff.Compute(linesA, linesB)

	var rendered string
	if opts.Unified {
		rendered = diff.RenderUnified(ops, opts.PathA, opts.PathB, opts.Context)
	} else {
		rendered = diff.RenderPlain(ops)
	}

	logger.Debug().
		Int("linesA", len(linesA)).
		Int("linesB", len(linesB)).
		Int("ops", len(ops)).
		Msg("Computed edit script")

	return &DiffResult{Ops: ops, Rendered: rendered}, nil
}
