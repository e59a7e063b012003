package snapshot

import (
	"errors"
	"fmt"
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
)

var (
	// ErrBeforeCoverage is the coverage error of the naming package, so
	// either name matches with errors.Is.
	ErrBeforeCoverage = naming.ErrOutOfCoverage

	// ErrNotHourAligned is returned for timestamps with minutes, seconds or sub-seconds.
	ErrNotHourAligned = errors.New("timestamp is not on the hour")

	// ErrKnownMissing is returned for timestamps listed in the missing registry.
	ErrKnownMissing = errors.New("snapshot is known to be missing")

	// ErrReversedRange is returned by NewStrictRange when end precedes start.
	ErrReversedRange = errors.New("range end precedes start")
)

// Validator checks timestamps against archive coverage and the missing registry.
type Validator struct {
	Eras    naming.Eras
	Missing Registry
}

// NewValidator returns a validator for the given era table and registry.
func NewValidator(eras naming.Eras, missing Registry) Validator {
	return Validator{Eras: eras, Missing: missing}
}

// Validate returns nil when t addresses a snapshot that should exist.
func (v Validator) Validate(t time.Time) error {
	t = Naive(t)
	stamp := naming.Format(t)
	if !v.Eras.Covers(t) {
		return fmt.Errorf("%w: no data for %s, archive starts %s", ErrBeforeCoverage, stamp, naming.Format(v.Eras.Coverage()))
	}
	if t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return fmt.Errorf("%w: %s", ErrNotHourAligned, t.Format("2006-01-02 15:04:05.999999999"))
	}
	if v.Missing.Contains(t) {
		return fmt.Errorf("%w: data is missing for %s", ErrKnownMissing, stamp)
	}
	return nil
}
