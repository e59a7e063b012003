package inventory

import (
	"context"
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
	"github.com/jdossgollin/climate-data/internal/snapshot"
)

// Entry is a snapshot still to be fetched: where it comes from and where it
// should be stored.
type Entry struct {
	Time time.Time
	Path string
	URL  string
}

// Plan lists the valid snapshots of tr that are absent under root.
func Plan(ctx context.Context, codec naming.Codec, tr snapshot.TimeRange, root string) ([]Entry, error) {
	inv, err := Scan(ctx, root)
	if err != nil {
		return nil, err
	}
	return inv.Plan(codec, tr)
}

// Plan lists the valid snapshots of tr missing from inv.
func (inv *Inventory) Plan(codec naming.Codec, tr snapshot.TimeRange) ([]Entry, error) {
	var out []Entry
	for t := range tr.Valid() {
		if inv.Has(t) {
			continue
		}
		path, err := codec.CompressedName(t, inv.Root)
		if err != nil {
			return nil, err
		}
		url, err := codec.URL(t)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Time: t, Path: path, URL: url})
	}
	return out, nil
}
