// Package fsutil is the thin filesystem layer that downloads and the
// session store write through.
package fsutil

import (
	"online-judge-toolchain/internal/components/failure"

	"github.com/spf13/afero"
)

type FS struct {
	fs afero.Fs
}

func New(fs afero.Fs) FS {
	return FS{fs: fs}
}

// OS returns an FS over the real filesystem.
func OS() FS {
	return FS{fs: afero.NewOsFs()}
}

func (f FS) Afero() afero.Fs {
	return f.fs
}

// CreateDirectory creates `path` and all its parents, it succeeds if the
// directory already exists.
func (f FS) CreateDirectory(path string) error {
	err := f.fs.MkdirAll(path, 0755)
	if err != nil {
		return failure.New(failure.KindFilesystem, "create directory "+path, err)
	}
	return nil
}

// CreateFileWithContent creates or truncates `path` and writes `content` to it.
func (f FS) CreateFileWithContent(path string, content []byte) error {
	err := afero.WriteFile(f.fs, path, content, 0644)
	if err != nil {
		return failure.New(failure.KindFilesystem, "write file "+path, err)
	}
	return nil
}

func (f FS) ReadFile(path string) ([]byte, error) {
	contents, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, failure.New(failure.KindFilesystem, "read file "+path, err)
	}
	return contents, nil
}

func (f FS) Exists(path string) (bool, error) {
	ok, err := afero.Exists(f.fs, path)
	if err != nil {
		return false, failure.New(failure.KindFilesystem, "stat "+path, err)
	}
	return ok, nil
}
