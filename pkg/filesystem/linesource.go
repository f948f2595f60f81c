package filesystem

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Aurum-R/Shellfast/pkg/errors"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// ReadBytes reads the full contents of a regular file. A missing
// path, a directory, or a permission failure surfaces as a taxonomy
// error before any engine sees the data.
func ReadBytes(fsys types.FS, path string) ([]byte, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, mapStatError(err, path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrIsADirectory, "%s: is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Newf(errors.ErrNotAFile, "%s: not a regular file", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, mapStatError(err, path)
	}
	return data, nil
}

// ReadLines reads a file as an ordered sequence of lines with the
// terminators stripped. Ordering is preserved from the source; a
// trailing newline does not produce a final empty line.
func ReadLines(fsys types.FS, path string) ([]string, error) {
	data, err := ReadBytes(fsys, path)
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// SplitLines splits raw bytes into terminator-stripped lines.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CollectFiles resolves a search target into the list of regular
// files to process. A regular file yields itself; a directory is
// expanded depth-first when recursive is set and rejected otherwise.
// Entries are visited in sorted name order so the file set is
// deterministic per run.
func CollectFiles(fsys types.FS, path string, recursive bool) ([]string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, mapStatError(err, path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	if !recursive {
		return nil, errors.Newf(errors.ErrIsADirectory, "%s: is a directory (use recursive)", path)
	}

	var files []string
	if err := walkFiles(fsys, path, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func walkFiles(fsys types.FS, dir string, files *[]string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return mapStatError(err, dir)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := walkFiles(fsys, path, files); err != nil {
				return err
			}
			continue
		}
		if entry.Type().IsRegular() {
			*files = append(*files, path)
		}
	}
	return nil
}

// mapStatError converts an OS-level failure into a taxonomy error
func mapStatError(err error, path string) error {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.Wrapf(err, errors.ErrNotFound, "%s: no such file or directory", path)
	case stderrors.Is(err, fs.ErrPermission):
		return errors.Wrapf(err, errors.ErrPermission, "%s: permission denied", path)
	default:
		return errors.Wrapf(err, errors.ErrNotFound, "%s: cannot read", path)
	}
}
