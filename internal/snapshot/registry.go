package snapshot

import (
	"sort"
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
)

// Registry is an immutable set of snapshots known to be absent from the
// archive, for instance because of a radar outage. Lookups compare wall-clock
// values, so the location of a timestamp does not matter.
type Registry struct {
	missing map[time.Time]struct{}
}

// NewRegistry returns a registry holding ts.
func NewRegistry(ts ...time.Time) Registry {
	m := make(map[time.Time]struct{}, len(ts))
	for _, t := range ts {
		m[Naive(t)] = struct{}{}
	}
	return Registry{missing: m}
}

// Contains reports whether t is registered as missing.
func (r Registry) Contains(t time.Time) bool {
	_, ok := r.missing[Naive(t)]
	return ok
}

// Len returns the number of registered snapshots.
func (r Registry) Len() int { return len(r.missing) }

// Times returns the registered snapshots in ascending order.
func (r Registry) Times() []time.Time {
	out := make([]time.Time, 0, len(r.missing))
	for t := range r.missing {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Naive drops the location of t, keeping its wall clock, and returns the
// equivalent UTC value.
func Naive(t time.Time) time.Time { return naming.Naive(t) }
