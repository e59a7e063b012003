package naming_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestProductFor(t *testing.T) {
	tests := []struct {
		name    string
		when    time.Time
		want    string
		wantErr error
	}{
		{name: "early era", when: at(2019, 6, 15, 12), want: naming.GaugeCorr},
		{name: "first covered hour", when: at(2014, 1, 1, 0), want: naming.GaugeCorr},
		{name: "hour before switch", when: at(2020, 9, 30, 23), want: naming.GaugeCorr},
		{name: "switch instant", when: at(2020, 10, 1, 0), want: naming.MultiSensor},
		{name: "later era", when: at(2021, 1, 1, 0), want: naming.MultiSensor},
		{name: "before coverage", when: at(2010, 1, 1, 0), wantErr: naming.ErrOutOfCoverage},
		{name: "hour before coverage", when: at(2013, 12, 31, 23), wantErr: naming.ErrOutOfCoverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := naming.DefaultEras.ProductFor(tt.when)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if !strings.Contains(err.Error(), naming.Format(tt.when)) {
					t.Errorf("error %q does not name the timestamp", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ProductFor(%v) = %q, want %q", tt.when, got, tt.want)
			}
		})
	}
}

func TestErasExtend(t *testing.T) {
	eras := append(naming.Eras{}, naming.DefaultEras...)
	eras = append(eras, naming.Era{Start: at(2030, 1, 1, 0), Product: "Future_QPE"})

	if err := eras.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got, err := eras.ProductFor(at(2031, 5, 1, 0))
	if err != nil || got != "Future_QPE" {
		t.Fatalf("ProductFor = %q, %v", got, err)
	}
	got, _ = eras.ProductFor(at(2025, 5, 1, 0))
	if got != naming.MultiSensor {
		t.Errorf("ProductFor(2025) = %q, want %q", got, naming.MultiSensor)
	}
}

func TestErasValidate(t *testing.T) {
	tests := []struct {
		name string
		eras naming.Eras
	}{
		{name: "empty", eras: nil},
		{name: "blank product", eras: naming.Eras{{Start: at(2014, 1, 1, 0)}}},
		{name: "descending", eras: naming.Eras{
			{Start: at(2020, 1, 1, 0), Product: "b"},
			{Start: at(2014, 1, 1, 0), Product: "a"},
		}},
		{name: "duplicate start", eras: naming.Eras{
			{Start: at(2014, 1, 1, 0), Product: "a"},
			{Start: at(2014, 1, 1, 0), Product: "b"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.eras.Validate(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNames(t *testing.T) {
	c := naming.Default
	when := at(2025, 4, 7, 12)
	base := "MultiSensor_QPE_01H_Pass2_00.00_20250407-120000"

	got, err := c.BaseName(when)
	if err != nil || got != base {
		t.Fatalf("BaseName = %q, %v", got, err)
	}

	gz, _ := c.CompressedName(when, "/data")
	if want := filepath.Join("/data", "2025", "04", "07", base+".grib2.gz"); gz != want {
		t.Errorf("CompressedName = %q, want %q", gz, want)
	}

	raw, _ := c.RawName(when, "")
	if want := filepath.Join("2025", "04", "07", base+".grib2"); raw != want {
		t.Errorf("RawName = %q, want %q", raw, want)
	}

	nc, err := c.DerivedName(when, "/x", "")
	if err != nil {
		t.Fatalf("DerivedName: %v", err)
	}
	if want := filepath.Join("/x", "2025", "04", "07", base+".nc"); nc != want {
		t.Errorf("DerivedName = %q, want %q", nc, want)
	}

	nc, _ = c.DerivedName(when, "/x", "conus")
	if want := filepath.Join("/x", "conus", "2025", "04", "07", base+".nc"); nc != want {
		t.Errorf("DerivedName with bbox = %q, want %q", nc, want)
	}
}

func TestDerivedNameRequiresRoot(t *testing.T) {
	_, err := naming.Default.DerivedName(at(2025, 4, 7, 12), "", "conus")
	if !errors.Is(err, naming.ErrMissingRoot) {
		t.Fatalf("err = %v, want ErrMissingRoot", err)
	}
}

func TestNamesOutOfCoverage(t *testing.T) {
	c := naming.Default
	when := at(2010, 1, 1, 0)
	for _, kind := range []naming.Kind{naming.Compressed, naming.Raw, naming.Derived} {
		if _, err := c.Name(kind, when, "/r", ""); !errors.Is(err, naming.ErrOutOfCoverage) {
			t.Errorf("%v: err = %v, want ErrOutOfCoverage", kind, err)
		}
	}
	if _, err := c.URL(when); !errors.Is(err, naming.ErrOutOfCoverage) {
		t.Errorf("URL: err = %v, want ErrOutOfCoverage", err)
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		when time.Time
		want string
	}{
		{
			when: at(2025, 4, 7, 12),
			want: "https://mtarchive.geol.iastate.edu/2025/04/07/mrms/ncep/MultiSensor_QPE_01H_Pass2/MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2.gz",
		},
		{
			when: at(2019, 6, 15, 3),
			want: "https://mtarchive.geol.iastate.edu/2019/06/15/mrms/ncep/GaugeCorr_QPE_01H/GaugeCorr_QPE_01H_00.00_20190615-030000.grib2.gz",
		},
	}
	for _, tt := range tests {
		got, err := naming.Default.URL(tt.when)
		if err != nil {
			t.Fatalf("URL(%v): %v", tt.when, err)
		}
		if got != tt.want {
			t.Errorf("URL(%v) =\n %q\nwant\n %q", tt.when, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	got, err := naming.Decode("MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if want := at(2025, 4, 7, 12); !got.Equal(want) {
		t.Errorf("Decode = %v, want %v", got, want)
	}
}

func TestDecodeMalformed(t *testing.T) {
	names := []string{
		"",
		"MultiSensor_QPE_01H_Pass2_20250407-120000.grib2",
		"MultiSensor_QPE_01H_Pass2_00.00_2025-04-07.grib2",
		"MultiSensor_QPE_01H_Pass2_00.00_.grib2",
		"/data/2025/04/07/",
	}
	for _, name := range names {
		if _, err := naming.Decode(name); !errors.Is(err, naming.ErrMalformedName) {
			t.Errorf("Decode(%q) err = %v, want ErrMalformedName", name, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c := naming.Default
	roots := []string{"", "/data", "relative/dir", "/tmp/_00.00_odd"}
	start := at(2014, 1, 1, 0)

	for i := 0; i < 24*400; i += 37 {
		when := start.Add(time.Duration(i) * 24 * time.Hour / 7).Truncate(time.Hour)
		for _, root := range roots {
			for _, kind := range []naming.Kind{naming.Compressed, naming.Raw} {
				name, err := c.Name(kind, when, root, "")
				if err != nil {
					t.Fatalf("Name(%v, %v, %q): %v", kind, when, root, err)
				}
				got, err := c.Decode(name)
				if err != nil {
					t.Fatalf("Decode(%q): %v", name, err)
				}
				if !got.Equal(when) {
					t.Fatalf("Decode(%q) = %v, want %v", name, got, when)
				}
			}
		}
	}
}

func TestDecodeIgnoresDirectories(t *testing.T) {
	c := naming.Default
	raw, _ := c.RawName(at(2022, 2, 28, 23), "")

	plain, err := c.Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	for _, prefix := range []string{"/a/b/c/", "a/b/", `C:\x\y\`} {
		got, err := c.Decode(prefix + raw)
		if err != nil {
			t.Fatalf("Decode(%q): %v", prefix+raw, err)
		}
		if !got.Equal(plain) {
			t.Errorf("Decode(%q) = %v, want %v", prefix+raw, got, plain)
		}
	}
}

func TestFilenameToURL(t *testing.T) {
	c := naming.Default

	got, err := c.FilenameToURL("/data/2025/04/07/MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := c.URL(at(2025, 4, 7, 12))
	if got != want {
		t.Errorf("FilenameToURL = %q, want %q", got, want)
	}

	if _, err := c.FilenameToURL("nope.grib2"); !errors.Is(err, naming.ErrMalformedName) {
		t.Errorf("malformed: err = %v", err)
	}
	if _, err := c.FilenameToURL("GaugeCorr_QPE_01H_00.00_20100101-000000.grib2"); !errors.Is(err, naming.ErrOutOfCoverage) {
		t.Errorf("out of coverage: err = %v", err)
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		want naming.Kind
		ok   bool
	}{
		{"a_00.00_20250407-120000.grib2.gz", naming.Compressed, true},
		{"a_00.00_20250407-120000.grib2", naming.Raw, true},
		{"a_00.00_20250407-120000.nc", naming.Derived, true},
		{"a_00.00_20250407-120000.idx", 0, false},
	}
	for _, tt := range tests {
		got, ok := naming.KindOf(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("KindOf(%q) = %v, %v", tt.name, got, ok)
		}
	}

	for _, s := range []string{"gz", "raw", "nc"} {
		if _, err := naming.ParseKind(s); err != nil {
			t.Errorf("ParseKind(%q): %v", s, err)
		}
	}
	if _, err := naming.ParseKind("zip"); err == nil {
		t.Error("ParseKind(zip) should fail")
	}
}

func TestWallClockIgnoresLocation(t *testing.T) {
	c := naming.Default
	east := time.FixedZone("UTC+1", 3600)
	west := time.FixedZone("UTC-5", -5*3600)

	tests := []struct {
		name    string
		when    time.Time
		product string
	}{
		{name: "hour before switch, west", when: time.Date(2020, 9, 30, 23, 0, 0, 0, west), product: naming.GaugeCorr},
		{name: "switch instant, east", when: time.Date(2020, 10, 1, 0, 0, 0, 0, east), product: naming.MultiSensor},
		{name: "coverage start, east", when: time.Date(2014, 1, 1, 0, 0, 0, 0, east), product: naming.GaugeCorr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Product(tt.when)
			if err != nil || got != tt.product {
				t.Fatalf("Product = %q, %v, want %q", got, err, tt.product)
			}
			if !naming.DefaultEras.Covers(tt.when) {
				t.Error("Covers = false")
			}

			raw, err := c.RawName(tt.when, "/r")
			if err != nil {
				t.Fatal(err)
			}
			decoded, err := c.Decode(raw)
			if err != nil {
				t.Fatal(err)
			}
			if want := naming.Naive(tt.when); !decoded.Equal(want) {
				t.Errorf("Decode = %v, want %v", decoded, want)
			}
			again, err := c.RawName(decoded, "/r")
			if err != nil || again != raw {
				t.Errorf("re-encoded %q, want %q (%v)", again, raw, err)
			}

			url, _ := c.URL(tt.when)
			fromName, _ := c.FilenameToURL(raw)
			if url != fromName {
				t.Errorf("URL = %q, FilenameToURL = %q", url, fromName)
			}
		})
	}

	_, err := naming.DefaultEras.ProductFor(time.Date(2013, 12, 31, 23, 0, 0, 0, west))
	if !errors.Is(err, naming.ErrOutOfCoverage) || !strings.Contains(err.Error(), "20131231-230000") {
		t.Errorf("err = %v, want out of coverage naming 20131231-230000", err)
	}
}
