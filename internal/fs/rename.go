package fs

import (
	"context"
	"os"
)

// renameWithRetry wraps os.Rename with retry logic. Renames within one
// filesystem are atomic, which is what makes a filed snapshot appear whole.
func renameWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}

// linkWithRetry wraps os.Link with retry logic. Unlike a rename, a link
// fails when newPath exists, so it never replaces a file.
func linkWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "link", func() error {
		return os.Link(oldPath, newPath)
	})
}
