package core

import (
	"github.com/Aurum-R/Shellfast/pkg/compare"
	"github.com/Aurum-R/Shellfast/pkg/filesystem"
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// CmpOptions configures the CompareBytes operation.
type CmpOptions struct {
	PathA string
	PathB string

	// Silent populates only the Identical flag.
	Silent bool

	FileSystem types.FS
}

// CompareBytes finds the first differing byte between two files.
func CompareBytes(opts CmpOptions) (*types.CmpResult, error) {
	logger := logging.GetLogger("core.cmp")
	defer logging.LogOperationStart(logger, "cmp")()

	fsys := resolveFS(opts.FileSystem)
	dataA, err := filesystem.ReadBytes(fsys, opts.PathA)
	if err != nil {
		return nil, err
	}
	dataB, err := filesystem.ReadBytes(fsys, opts.PathB)
	if err != nil {
		return nil, err
	}

	result := compare.Bytes(dataA, dataB, opts.PathA, opts.PathB, opts.Silent)
	return &result, nil
}

// CommOptions configures the CompareSets operation.
type CommOptions struct {
	PathA string
	PathB string

	FileSystem types.FS
}

// CompareSets partitions the distinct lines of two files three ways.
func CompareSets(opts CommOptions) (*types.CommResult, error) {
	logger := logging.GetLogger("core.comm")
	defer logging.LogOperationStart(logger, "comm")()

	fsys := resolveFS(opts.FileSystem)
	linesA, err := filesystem.ReadLines(fsys, opts.PathA)
	if err != nil {
		return nil, err
	}
	linesB, err := filesystem.ReadLines(fsys, opts.PathB)
	if err != nil {
		return nil, err
	}

	result := compare.Sets(linesA, linesB)
	return &result, nil
}
