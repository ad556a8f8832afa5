// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"bufio"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// DirName is the project-relative directory holding Cargo configuration.
	DirName = ".cargo"
	// FileName is the name of the generated file inside DirName.
	FileName = "config"
)

// Writer persists rendered configuration.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer on fs; nil means the OS filesystem.
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// Write creates dir and any missing ancestors, then creates or truncates
// dir/FileName and writes text to it in full. The file is synced before
// Write returns. There is no atomic rename, so an interrupted write can leave
// a truncated file; rerunning the generator repairs it.
func (w *Writer) Write(text []byte, dir string) (path string, err error) {
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return "", &DirectoryCreateError{Path: dir, Cause: err}
	}

	path = filepath.Join(dir, FileName)
	f, err := w.fs.Create(path)
	if err != nil {
		return "", &FileWriteError{Path: path, Op: "create", Cause: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			path, err = "", &FileWriteError{Path: path, Op: "close", Cause: closeErr}
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := bw.Write(text); err != nil {
		return "", &FileWriteError{Path: path, Op: "write", Cause: err}
	}
	if err := bw.Flush(); err != nil {
		return "", &FileWriteError{Path: path, Op: "write", Cause: err}
	}
	if err := f.Sync(); err != nil {
		return "", &FileWriteError{Path: path, Op: "sync", Cause: err}
	}
	return path, nil
}
