package types

import "io/fs"

// FS is the read-only filesystem surface the engines consume. Every
// operation materializes its input through this interface, which keeps
// the engines pure and lets tests inject an in-memory implementation.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
