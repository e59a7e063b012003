//go:build windows

package fs

import "os"

// inodeOf returns 0: Windows does not expose POSIX inodes, so change
// detection falls back to size and modification time.
func inodeOf(os.FileInfo) uint64 {
	return 0
}
