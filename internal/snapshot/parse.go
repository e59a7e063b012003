package snapshot

import (
	"fmt"
	"strings"
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
)

// inputLayouts are the timestamp formats accepted from users and config files.
var inputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	naming.Layout,
	"2006010215",
}

// ParseTime parses s as a timezone-naive timestamp. An explicit offset is
// accepted and dropped, keeping the wall clock.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Naive(t), nil
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}
