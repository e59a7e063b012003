package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdossgollin/climate-data/internal/logging"
	"github.com/jdossgollin/climate-data/internal/naming"
	"github.com/jdossgollin/climate-data/internal/snapshot"
)

// Eras parses the configured era table.
func (c *Config) Eras() (naming.Eras, error) {
	eras := make(naming.Eras, 0, len(c.Archive.Eras))
	for i, e := range c.Archive.Eras {
		start, err := snapshot.ParseTime(e.Start)
		if err != nil {
			return nil, fmt.Errorf("archive.eras[%d]: %w", i, err)
		}
		eras = append(eras, naming.Era{Start: start, Product: e.Product})
	}
	if err := eras.Validate(); err != nil {
		return nil, fmt.Errorf("archive.eras: %w", err)
	}
	return eras, nil
}

// Codec returns the naming codec described by the archive section.
func (c *Config) Codec() (naming.Codec, error) {
	eras, err := c.Eras()
	if err != nil {
		return naming.Codec{}, err
	}
	return naming.Codec{
		Host:        c.Archive.Host,
		PathSegment: c.Archive.PathSegment,
		Eras:        eras,
	}, nil
}

// Registry returns the set of snapshots listed under archive.missing.
func (c *Config) Registry() (snapshot.Registry, error) {
	var errs []error
	ts := make([]time.Time, 0, len(c.Archive.Missing))
	for i, s := range c.Archive.Missing {
		t, err := snapshot.ParseTime(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("archive.missing[%d]: %w", i, err))
			continue
		}
		ts = append(ts, t)
	}
	if len(errs) > 0 {
		return snapshot.Registry{}, errors.Join(errs...)
	}
	return snapshot.NewRegistry(ts...), nil
}

// Validator returns a validator sharing the codec's era table.
func (c *Config) Validator() (snapshot.Validator, error) {
	eras, err := c.Eras()
	if err != nil {
		return snapshot.Validator{}, err
	}
	missing, err := c.Registry()
	if err != nil {
		return snapshot.Validator{}, err
	}
	return snapshot.NewValidator(eras, missing), nil
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Archive.Host == "" {
		errs = append(errs, errors.New("archive.host is empty"))
	}
	if _, err := c.Eras(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Registry(); err != nil {
		errs = append(errs, err)
	}

	w := c.Incoming.Watch
	switch w.Mode {
	case "auto", "poll", "fsnotify":
	default:
		errs = append(errs, fmt.Errorf("incoming.watch.mode: unknown mode %q", w.Mode))
	}
	if w.PollSchedule != "" {
		if _, err := cron.ParseStandard(w.PollSchedule); err != nil {
			errs = append(errs, fmt.Errorf("incoming.watch.pollSchedule: %w", err))
		}
	} else if w.PollInterval <= 0 {
		errs = append(errs, errors.New("incoming.watch.pollInterval must be positive"))
	}
	if w.DebounceWindow < 0 || w.StabilityWindow < 0 {
		errs = append(errs, errors.New("incoming.watch windows must not be negative"))
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
