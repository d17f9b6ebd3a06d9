package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Target is where rendered contracts are written.
type Target interface {
	MkdirAll(dir string) error
	WriteFile(path string, data []byte) error
}

// DiskTarget writes contracts to the local filesystem. Each file is written
// to a temp file and renamed into place, so readers never see a partial contract.
type DiskTarget struct{}

// MkdirAll creates dir and any missing parents.
func (DiskTarget) MkdirAll(dir string) error {
	return os.MkdirAll(dir, dirPerm)
}

// WriteFile replaces path with data. An existing file keeps its mode; a file
// without the owner write bit is refused rather than replaced.
func (DiskTarget) WriteFile(path string, data []byte) error {
	perm := filePerm
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.Mode().Perm()&0200 == 0 {
			return &fs.PathError{Op: "write", Path: path, Err: fs.ErrPermission}
		}
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// FsTarget writes contracts into an afero filesystem.
type FsTarget struct {
	fs afero.Fs
}

// NewFsTarget wraps fs as a Target.
func NewFsTarget(fs afero.Fs) *FsTarget {
	return &FsTarget{fs: fs}
}

// NewMemTarget returns a Target backed by an in-memory filesystem.
func NewMemTarget() *FsTarget {
	return NewFsTarget(afero.NewMemMapFs())
}

// Fs returns the underlying filesystem.
func (t *FsTarget) Fs() afero.Fs {
	return t.fs
}

// MkdirAll creates dir and any missing parents.
func (t *FsTarget) MkdirAll(dir string) error {
	return t.fs.MkdirAll(dir, dirPerm)
}

// WriteFile replaces path with data.
func (t *FsTarget) WriteFile(path string, data []byte) error {
	return afero.WriteFile(t.fs, path, data, filePerm)
}
