package core

import (
	"github.com/Aurum-R/Shellfast/pkg/filesystem"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// resolveFS returns the injected filesystem or the OS default.
func resolveFS(fsys types.FS) types.FS {
	if fsys == nil {
		return filesystem.NewOS()
	}
	return fsys
}
