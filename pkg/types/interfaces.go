package types

import (
	"io/fs"
)

// FS is the filesystem interface required for wheresmy storage
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Rename must replace newpath atomically where the platform allows it
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
