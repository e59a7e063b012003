package naming

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Products published by the archive.
const (
	GaugeCorr   = "GaugeCorr_QPE_01H"
	MultiSensor = "MultiSensor_QPE_01H_Pass2"
)

// Era is a period starting at Start during which Product names the data.
type Era struct {
	Start   time.Time
	Product string
}

// Eras is an ordered list of eras, oldest first. The last era whose Start is
// not after a timestamp decides its product.
type Eras []Era

// DefaultEras is the era table of the hourly QPE archive.
var DefaultEras = Eras{
	{Start: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), Product: GaugeCorr},
	{Start: time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC), Product: MultiSensor},
}

// ProductFor returns the product covering the wall clock of t.
func (e Eras) ProductFor(t time.Time) (string, error) {
	t = Naive(t)
	for i := len(e) - 1; i >= 0; i-- {
		if !t.Before(Naive(e[i].Start)) {
			return e[i].Product, nil
		}
	}
	return "", fmt.Errorf("%w: no data for %s", ErrOutOfCoverage, Format(t))
}

// Coverage returns the first instant covered by any era.
func (e Eras) Coverage() time.Time {
	if len(e) == 0 {
		return time.Time{}
	}
	return e[0].Start
}

// Covers reports whether the wall clock of t falls inside an era.
func (e Eras) Covers(t time.Time) bool {
	return len(e) > 0 && !Naive(t).Before(Naive(e[0].Start))
}

// Validate checks that the table is non-empty, strictly ascending and fully labelled.
func (e Eras) Validate() error {
	if len(e) == 0 {
		return errors.New("era table is empty")
	}
	for i, era := range e {
		if era.Product == "" {
			return fmt.Errorf("era %d starting %s has no product", i, Format(era.Start))
		}
	}
	sorted := sort.SliceIsSorted(e, func(i, j int) bool { return e[i].Start.Before(e[j].Start) })
	if !sorted {
		return errors.New("era starts are not in ascending order")
	}
	for i := 1; i < len(e); i++ {
		if e[i].Start.Equal(e[i-1].Start) {
			return fmt.Errorf("eras %d and %d share start %s", i-1, i, Format(e[i].Start))
		}
	}
	return nil
}
