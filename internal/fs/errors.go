package fs

import (
	"errors"
	"syscall"
)

// ErrSourceChanged is returned when a file is modified while being copied.
var ErrSourceChanged = errors.New("source changed during copy")

// isTransient reports whether an operation should be retried.
func isTransient(err error) bool {
	return errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ETIMEDOUT)
}

// isCrossDevice reports whether a rename failed because source and target
// are on different filesystems.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// isLinkUnsupported reports whether a hard link failed because the
// filesystem does not provide them.
func isLinkUnsupported(err error) bool {
	return errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.ENOTSUP) ||
		errors.Is(err, syscall.EOPNOTSUPP) ||
		errors.Is(err, syscall.EMLINK)
}
