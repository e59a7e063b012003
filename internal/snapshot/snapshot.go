// Package snapshot validates hourly archive timestamps and enumerates the
// snapshots inside a time range.
package snapshot

import "time"

// Snapshot represents a single archived hourly grid on disk.
type Snapshot struct {
	Path      string
	Timestamp time.Time
	Size      int64
}
