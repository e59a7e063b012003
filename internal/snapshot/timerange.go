package snapshot

import (
	"fmt"
	"iter"
	"time"

	"github.com/robfig/cron/v3"
)

// boundsLayout is the human-readable format used by Describe.
const boundsLayout = "2006-01-02 15:04:05"

// hourly is the publishing cadence of the archive.
var hourly = mustSchedule("@hourly")

func mustSchedule(spec string) cron.Schedule {
	s, err := cron.ParseStandard(spec)
	if err != nil {
		panic(fmt.Sprintf("snapshot: bad schedule %q: %v", spec, err))
	}
	return s
}

// TimeRange is an inclusive range of validated hourly snapshots. A range
// whose end precedes its start is valid and empty.
type TimeRange struct {
	start, end time.Time
	missing    Registry
}

// NewRange validates both ends and returns the range between them.
func (v Validator) NewRange(start, end time.Time) (TimeRange, error) {
	if err := v.Validate(start); err != nil {
		return TimeRange{}, fmt.Errorf("start: %w", err)
	}
	if err := v.Validate(end); err != nil {
		return TimeRange{}, fmt.Errorf("end: %w", err)
	}
	return TimeRange{start: Naive(start), end: Naive(end), missing: v.Missing}, nil
}

// NewStrictRange is NewRange that also rejects end < start.
func (v Validator) NewStrictRange(start, end time.Time) (TimeRange, error) {
	r, err := v.NewRange(start, end)
	if err != nil {
		return TimeRange{}, err
	}
	if r.end.Before(r.start) {
		return TimeRange{}, fmt.Errorf("%w: %s", ErrReversedRange, r.Describe())
	}
	return r, nil
}

// Start returns the first timestamp of the range.
func (r TimeRange) Start() time.Time { return r.start }

// End returns the last timestamp of the range.
func (r TimeRange) End() time.Time { return r.end }

// All yields every hour from start to end inclusive, in ascending order.
func (r TimeRange) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if r.start.IsZero() {
			return
		}
		for t := r.start; !t.After(r.end); t = hourly.Next(t) {
			if !yield(t) {
				return
			}
		}
	}
}

// Valid yields the hours of All that are not registered as missing.
func (r TimeRange) Valid() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for t := range r.All() {
			if r.missing.Contains(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of hours yielded by All.
func (r TimeRange) Len() int {
	if r.start.IsZero() || r.end.Before(r.start) {
		return 0
	}
	return int(r.end.Sub(r.start)/time.Hour) + 1
}

// Describe renders the bounds for logs.
func (r TimeRange) Describe() string {
	return r.start.Format(boundsLayout) + " to " + r.end.Format(boundsLayout)
}

func (r TimeRange) String() string { return r.Describe() }
