package core

import (
	"github.com/Aurum-R/Shellfast/pkg/content"
	"github.com/Aurum-R/Shellfast/pkg/filesystem"
	"github.com/Aurum-R/Shellfast/pkg/logging"
	"github.com/Aurum-R/Shellfast/pkg/types"
)

// CatOptions configures the Cat operation.
type CatOptions struct {
	Path string

	NumberLines  bool
	SqueezeBlank bool

	FileSystem types.FS
}

// Cat returns the file contents, optionally numbered and with blank
// runs squeezed.
func Cat(opts CatOptions) (string, error) {
	logger := logging.GetLogger("core.cat")
	defer logging.LogOperationStart(logger, "cat")()

	lines, err := filesystem.ReadLines(resolveFS(opts.FileSystem), opts.Path)
	if err != nil {
		return "", err
	}
	return content.Cat(lines, opts.NumberLines, opts.SqueezeBlank), nil
}

// EchoOptions configures the Echo operation.
type EchoOptions struct {
	Text      string
	NoNewline bool
}

// Echo returns the text, newline-terminated unless NoNewline is set.
func Echo(opts EchoOptions) string {
	return content.Echo(opts.Text, opts.NoNewline)
}

// HeadOptions configures the Head operation.
type HeadOptions struct {
	Path string

	// Lines is the number of leading lines to return.
	Lines int
	// Bytes, when positive, returns leading bytes instead of lines.
	Bytes int

	FileSystem types.FS
}

// Head returns the first N lines or bytes of the file.
func Head(opts HeadOptions) (string, error) {
	logger := logging.GetLogger("core.head")
	defer logging.LogOperationStart(logger, "head")()

	fsys := resolveFS(opts.FileSystem)
	if opts.Bytes > 0 {
		data, err := filesystem.ReadBytes(fsys, opts.Path)
		if err != nil {
			return "", err
		}
		return string(content.HeadBytes(data, opts.Bytes)), nil
	}

	lines, err := filesystem.ReadLines(fsys, opts.Path)
	if err != nil {
		return "", err
	}
	return content.Head(lines, opts.Lines), nil
}

// TailOptions configures the Tail operation.
type TailOptions struct {
	Path string

	Lines int
	Bytes int

	FileSystem types.FS
}

// Tail returns the last N lines or bytes of the file.
func Tail(opts TailOptions) (string, error) {
	logger := logging.GetLogger("core.tail")
	defer logging.LogOperationStart(logger, "tail")()

	fsys := resolveFS(opts.FileSystem)
	if opts.Bytes > 0 {
		data, err := filesystem.ReadBytes(fsys, opts.Path)
		if err != nil {
			return "", err
		}
		return string(content.TailBytes(data, opts.Bytes)), nil
	}

	lines, err := filesystem.ReadLines(fsys, opts.Path)
	if err != nil {
		return "", err
	}
	return content.Tail(lines, opts.Lines), nil
}
