// Package inventory reports which snapshots are present in a local archive
// tree and which still have to be fetched.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
	"github.com/jdossgollin/climate-data/internal/snapshot"
)

// Inventory is the set of GRIB2 snapshots found under a root directory.
type Inventory struct {
	Root    string
	byTime  map[time.Time][]snapshot.Snapshot
	Skipped []string // archive-looking files whose names could not be decoded
}

// Scan walks root and decodes every .grib2 and .grib2.gz file in it. A
// missing root yields an empty inventory.
func Scan(ctx context.Context, root string) (*Inventory, error) {
	inv := &Inventory{Root: root, byTime: map[time.Time][]snapshot.Snapshot{}}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		kind, ok := naming.KindOf(d.Name())
		if !ok || kind == naming.Derived {
			return nil
		}

		t, err := naming.Decode(d.Name())
		if err != nil {
			inv.Skipped = append(inv.Skipped, path)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		inv.byTime[t] = append(inv.byTime[t], snapshot.Snapshot{
			Path:      path,
			Timestamp: t,
			Size:      info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return inv, nil
}

// Has reports whether a snapshot for t is present.
func (inv *Inventory) Has(t time.Time) bool {
	return len(inv.byTime[snapshot.Naive(t)]) > 0
}

// Get returns the files found for t.
func (inv *Inventory) Get(t time.Time) []snapshot.Snapshot {
	return inv.byTime[snapshot.Naive(t)]
}

// Len returns the number of distinct snapshot times present.
func (inv *Inventory) Len() int { return len(inv.byTime) }

// Times returns the snapshot times present, oldest first.
func (inv *Inventory) Times() []time.Time {
	out := make([]time.Time, 0, len(inv.byTime))
	for t := range inv.byTime {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
