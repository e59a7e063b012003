// Package naming builds and parses the file names and URLs used by the hourly
// QPE archive.
//
// A snapshot at 2025-04-07 12:00 is stored as
//
//	2025/04/07/MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2.gz
//
// and published at
//
//	https://mtarchive.geol.iastate.edu/2025/04/07/mrms/ncep/MultiSensor_QPE_01H_Pass2/MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2.gz
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Layout is the timestamp format embedded in every archive name.
const Layout = "20060102-150405"

// Delimiter separates the product from the timestamp. The "00.00" is a fixed
// resolution tag kept for compatibility with the archive.
const Delimiter = "_00.00_"

// Extensions of the three name projections.
const (
	ExtCompressed = ".grib2.gz"
	ExtRaw        = ".grib2"
	ExtDerived    = ".nc"
)

// Kind selects a name projection.
type Kind int

const (
	Compressed Kind = iota
	Raw
	Derived
)

func (k Kind) String() string {
	switch k {
	case Compressed:
		return "compressed"
	case Raw:
		return "raw"
	case Derived:
		return "derived"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts a kind name or its extension without the dot.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "compressed", "gz", "grib2.gz":
		return Compressed, nil
	case "raw", "grib2":
		return Raw, nil
	case "derived", "nc", "netcdf":
		return Derived, nil
	}
	return 0, fmt.Errorf("unknown name kind %q", s)
}

// KindOf classifies a filename by extension.
func KindOf(name string) (Kind, bool) {
	switch {
	case strings.HasSuffix(name, ExtCompressed):
		return Compressed, true
	case strings.HasSuffix(name, ExtRaw):
		return Raw, true
	case strings.HasSuffix(name, ExtDerived):
		return Derived, true
	}
	return 0, false
}

// Codec converts between timestamps and archive names.
// The zero value is not usable; start from Default.
type Codec struct {
	Host        string // e.g. https://mtarchive.geol.iastate.edu
	PathSegment string // path between the date and the product, e.g. mrms/ncep
	Eras        Eras
}

// Default is the codec for the public Iowa State mirror.
var Default = Codec{
	Host:        "https://mtarchive.geol.iastate.edu",
	PathSegment: "mrms/ncep",
	Eras:        DefaultEras,
}

// Naive drops the location of t, keeping its wall clock, and returns the
// equivalent UTC value. Archive timestamps carry no zone, so every name,
// product and coverage decision is made on the wall clock.
func Naive(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// Format renders the wall clock of t in the archive layout.
func Format(t time.Time) string {
	return Naive(t).Format(Layout)
}

// Product returns the product name for t.
func (c Codec) Product(t time.Time) (string, error) {
	return c.Eras.ProductFor(t)
}

// BaseName returns the bare name of the snapshot at t, without directory or extension.
func (c Codec) BaseName(t time.Time) (string, error) {
	product, err := c.Product(t)
	if err != nil {
		return "", err
	}
	return product + Delimiter + Format(t), nil
}

// NestedPath returns root/YYYY/MM/DD/BaseName(t). root may be empty.
func (c Codec) NestedPath(t time.Time, root string) (string, error) {
	base, err := c.BaseName(t)
	if err != nil {
		return "", err
	}
	t = Naive(t)
	return filepath.Join(root, t.Format("2006"), t.Format("01"), t.Format("02"), base), nil
}

// CompressedName is the path of the gzipped GRIB2 snapshot.
func (c Codec) CompressedName(t time.Time, root string) (string, error) {
	p, err := c.NestedPath(t, root)
	if err != nil {
		return "", err
	}
	return p + ExtCompressed, nil
}

// RawName is the path of the uncompressed GRIB2 snapshot.
func (c Codec) RawName(t time.Time, root string) (string, error) {
	p, err := c.NestedPath(t, root)
	if err != nil {
		return "", err
	}
	return p + ExtRaw, nil
}

// DerivedName is the path of the NetCDF subset. Unlike the GRIB2 names it
// needs an explicit root; a non-empty bbox adds a subdirectory under it.
func (c Codec) DerivedName(t time.Time, root, bbox string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRoot, Format(t))
	}
	if bbox != "" {
		root = filepath.Join(root, bbox)
	}
	p, err := c.NestedPath(t, root)
	if err != nil {
		return "", err
	}
	return p + ExtDerived, nil
}

// Name dispatches to the projection selected by kind.
func (c Codec) Name(kind Kind, t time.Time, root, bbox string) (string, error) {
	switch kind {
	case Compressed:
		return c.CompressedName(t, root)
	case Raw:
		return c.RawName(t, root)
	case Derived:
		return c.DerivedName(t, root, bbox)
	}
	return "", fmt.Errorf("unknown name kind %v", kind)
}

// URL returns the remote location of the snapshot at t. The local
// year/month/day nesting is not part of the remote layout.
func (c Codec) URL(t time.Time) (string, error) {
	product, err := c.Product(t)
	if err != nil {
		return "", err
	}
	name, err := c.CompressedName(t, "")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		strings.TrimRight(c.Host, "/"),
		Naive(t).Format("2006/01/02"),
		strings.Trim(c.PathSegment, "/"),
		product,
		filepath.Base(name),
	), nil
}

// Decode extracts the timestamp embedded in name. Leading directories are ignored.
func (c Codec) Decode(name string) (time.Time, error) {
	return Decode(name)
}

// FilenameToURL maps a local filename to its remote URL.
func (c Codec) FilenameToURL(name string) (string, error) {
	t, err := Decode(name)
	if err != nil {
		return "", err
	}
	return c.URL(t)
}

// Decode extracts the timestamp embedded in name. Leading directories, with
// either separator, are ignored.
func Decode(name string) (time.Time, error) {
	base := name
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		base = name[i+1:]
	}

	_, rest, found := strings.Cut(base, Delimiter)
	if !found {
		return time.Time{}, fmt.Errorf("%w: %q has no %q", ErrMalformedName, name, Delimiter)
	}
	stamp, _, _ := strings.Cut(rest, ".")

	t, err := time.Parse(Layout, stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedName, name, err)
	}
	return t, nil
}
