package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// ErrExists is returned by Move when the destination is already present.
var ErrExists = errors.New("destination already exists")

// move places src at dst, creating parent directories, and never replaces an
// existing dst. Within one filesystem it hard-links src to dst and removes
// src. Across filesystems it copies to a hidden temporary sibling of dst and
// links that into place. Filesystems without hard links fall back to a
// rename after an existence check, which a concurrent writer can still race.
func move(ctx context.Context, f FS, src, dst string) error {
	exists, err := f.Exists(dst)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrExists, dst)
	}

	dir := filepath.Dir(dst)
	if err := f.MkdirAll(dir); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	renamed, err := place(ctx, f, src, dst)
	switch {
	case err == nil && renamed:
		return nil
	case err == nil:
		return f.Remove(src)
	case !isCrossDevice(err):
		return err
	}

	tmp := filepath.Join(dir, ".tmp-"+filepath.Base(dst))
	if err := f.CopyFile(ctx, src, tmp); err != nil {
		_ = f.Remove(tmp)
		return fmt.Errorf("copying %s: %w", src, err)
	}
	renamed, err = place(ctx, f, tmp, dst)
	if err != nil {
		_ = f.Remove(tmp)
		return fmt.Errorf("finalizing %s: %w", dst, err)
	}
	if !renamed {
		if err := f.Remove(tmp); err != nil {
			return err
		}
	}
	return f.Remove(src)
}

// place makes src reachable at dst without replacing dst. renamed reports
// that the rename fallback was used and src no longer exists.
func place(ctx context.Context, f FS, src, dst string) (renamed bool, err error) {
	err = f.Link(ctx, src, dst)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrExist):
		return false, fmt.Errorf("%w: %s", ErrExists, dst)
	case !isLinkUnsupported(err):
		return false, err
	}
	if err := f.Rename(ctx, src, dst); err != nil {
		return false, err
	}
	return true, nil
}
