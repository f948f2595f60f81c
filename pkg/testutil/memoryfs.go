// Package testutil provides test helpers for the engines, most
// importantly an in-memory types.FS so engine tests never touch the
// real filesystem.
package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Seed it with
// WriteFile, then hand it to any core operation. Errors can be
// injected per path to exercise failure handling.
type MemoryFS struct {
	files      map[string][]byte
	dirs       map[string]bool
	errorPaths map[string]error
}

// NewMemoryFS creates an empty in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		dirs:       map[string]bool{"/": true},
		errorPaths: make(map[string]error),
	}
}

// WriteFile seeds a file, creating all parent directories
func (m *MemoryFS) WriteFile(path string, content []byte) {
	path = filepath.Clean(path)
	m.files[path] = content
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

// WriteString seeds a file from a string
func (m *MemoryFS) WriteString(path, content string) {
	m.WriteFile(path, []byte(content))
}

// InjectError makes every access to path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) lookup(name string) (isDir bool, err error) {
	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return false, err
	}
	if m.dirs[name] {
		return true, nil
	}
	if _, ok := m.files[name]; ok {
		return false, nil
	}
	return false, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// Stat implements types.FS
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	isDir, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	size := 0
	if !isDir {
		size = len(m.files[filepath.Clean(name)])
	}
	return &memFileInfo{name: filepath.Base(name), size: int64(size), isDir: isDir}, nil
}

// ReadFile implements types.FS
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}
	content, ok := m.files[name]
	if !ok {
		if m.dirs[name] {
			return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
		}
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// ReadDir implements types.FS
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry

	addChild := func(path string, isDir bool) {
		rel, err := filepath.Rel(name, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return
		}
		child := strings.Split(rel, string(filepath.Separator))[0]
		if seen[child] {
			return
		}
		seen[child] = true
		// An intermediate path component is a directory even when the
		// map entry is a file deeper down.
		childIsDir := isDir || child != rel
		entries = append(entries, &memDirEntry{name: child, isDir: childIsDir})
	}

	for path := range m.files {
		addChild(path, false)
	}
	for path := range m.dirs {
		addChild(path, true)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type memFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (i *memFileInfo) Name() string { return i.name }
func (i *memFileInfo) Size() int64  { return i.size }
func (i *memFileInfo) Mode() fs.FileMode {
	if i.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return i.isDir }
func (i *memFileInfo) Sys() interface{}   { return nil }

type memDirEntry struct {
	name  string
	isDir bool
}

func (e *memDirEntry) Name() string { return e.name }
func (e *memDirEntry) IsDir() bool  { return e.isDir }
func (e *memDirEntry) Type() fs.FileMode {
	if e.isDir {
		return fs.ModeDir
	}
	return 0
}
func (e *memDirEntry) Info() (fs.FileInfo, error) {
	return &memFileInfo{name: e.name, isDir: e.isDir}, nil
}
