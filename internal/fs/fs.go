// Package fs defines the filesystem abstraction used to file snapshots into
// the archive tree. Moves retry transient errors and fall back to
// copy-and-rename across devices.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Name  string
	Size  int64
	MTime time.Time
	Inode uint64
	IsDir bool
}

type FS interface {
	Stat(path string) (FileInfo, error)
	Exists(path string) (bool, error)
	ReadDir(dir string) ([]FileInfo, error)
	CopyFile(ctx context.Context, src, dst string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Link(ctx context.Context, oldPath, newPath string) error
	Move(ctx context.Context, src, dst string) error
	MkdirAll(path string) error
	Remove(path string) error
}
