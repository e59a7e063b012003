package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/jdossgollin/climate-data/internal/snapshot"
)

// rangeFlags are the -start, -end and -strict flags shared by the commands
// that enumerate snapshots.
type rangeFlags struct {
	start, end string
	strict     bool
}

func (f *rangeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.start, "start", "", "first snapshot `time`, e.g. 2025-04-07T12 or 20250407-120000")
	fs.StringVar(&f.end, "end", "", "last snapshot `time` (inclusive)")
	fs.BoolVar(&f.strict, "strict", false, "reject ranges whose end precedes their start")
}

// build parses the flags and builds a range checked by v.
func (f *rangeFlags) build(v snapshot.Validator) (snapshot.TimeRange, error) {
	if f.start == "" || f.end == "" {
		return snapshot.TimeRange{}, fmt.Errorf("both -start and -end are required")
	}
	start, err := parseFlagTime("start", f.start)
	if err != nil {
		return snapshot.TimeRange{}, err
	}
	end, err := parseFlagTime("end", f.end)
	if err != nil {
		return snapshot.TimeRange{}, err
	}
	if f.strict {
		return v.NewStrictRange(start, end)
	}
	return v.NewRange(start, end)
}

func parseFlagTime(name, s string) (time.Time, error) {
	t, err := snapshot.ParseTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("-%s: %w", name, err)
	}
	return t, nil
}
