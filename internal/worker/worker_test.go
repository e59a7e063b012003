package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/jdossgollin/climate-data/internal/config"
	"github.com/jdossgollin/climate-data/internal/logging"
	"github.com/jdossgollin/climate-data/internal/mailbox"
	"github.com/jdossgollin/climate-data/internal/metrics"
)

type fixture struct {
	incoming, root, derived, reject string
	cfg                             *config.Config
	metrics                         *metrics.FilerMetrics
	worker                          *Worker
	mb                              *mailbox.Mailbox[Job]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	f := &fixture{
		incoming: filepath.Join(base, "incoming"),
		root:     filepath.Join(base, "archive"),
		derived:  filepath.Join(base, "nc"),
		reject:   filepath.Join(base, "rejected"),
	}
	if err := os.MkdirAll(f.incoming, 0o755); err != nil {
		t.Fatal(err)
	}

	f.cfg = config.Default()
	f.cfg.Incoming.Path = f.incoming
	f.cfg.Incoming.RejectDir = f.reject
	f.cfg.Storage.Root = f.root
	f.cfg.Storage.DerivedRoot = f.derived
	f.cfg.Archive.Missing = []string{"2025-04-07T02:00:00"}

	f.metrics = metrics.NewFilerMetrics(prometheus.NewRegistry())
	f.mb = mailbox.New[Job]()
	w, err := New(f.cfg, logging.Nop(), f.metrics, f.mb, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.worker = w
	return f
}

func (f *fixture) drop(t *testing.T, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(f.incoming, name), []byte(name), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestFileAll(t *testing.T) {
	f := newFixture(t)
	f.drop(t, "MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2.gz")
	f.drop(t, "GaugeCorr_QPE_01H_00.00_20190615-030000.grib2")
	f.drop(t, "MultiSensor_QPE_01H_Pass2_00.00_20250407-130000.nc")
	f.drop(t, "MultiSensor_QPE_01H_Pass2_00.00_20250407-020000.grib2.gz") // registered missing
	f.drop(t, "GaugeCorr_QPE_01H_00.00_20250407-140000.grib2.gz")        // wrong product for era
	f.drop(t, "random_00.00_garbage.grib2")                              // undecodable
	f.drop(t, "notes.txt")
	f.drop(t, ".partial")

	res, err := f.worker.FileAll(context.Background())
	if err != nil {
		t.Fatalf("FileAll: %v", err)
	}

	want := Result{Filed: 3, Rejected: 3, Skipped: 1}
	if res != want {
		t.Errorf("result = %+v, want %+v", res, want)
	}

	for _, p := range []string{
		filepath.Join(f.root, "2025", "04", "07", "MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2.gz"),
		filepath.Join(f.root, "2019", "06", "15", "GaugeCorr_QPE_01H_00.00_20190615-030000.grib2"),
		filepath.Join(f.derived, "2025", "04", "07", "MultiSensor_QPE_01H_Pass2_00.00_20250407-130000.nc"),
		filepath.Join(f.reject, "GaugeCorr_QPE_01H_00.00_20250407-140000.grib2.gz"),
		filepath.Join(f.reject, "random_00.00_garbage.grib2"),
		filepath.Join(f.incoming, "notes.txt"),
	} {
		if !exists(p) {
			t.Errorf("expected %s", p)
		}
	}

	if got := testutil.ToFloat64(f.metrics.Files.WithLabelValues(metrics.OutcomeFiled)); got != 3 {
		t.Errorf("filed metric = %v", got)
	}
	if got := testutil.ToFloat64(f.metrics.Scans); got != 1 {
		t.Errorf("scans metric = %v", got)
	}
}

func TestFileAllDuplicate(t *testing.T) {
	f := newFixture(t)
	name := "MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2.gz"
	f.drop(t, name)
	if _, err := f.worker.FileAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	f.drop(t, name)
	res, err := f.worker.FileAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Duplicate != 1 || res.Filed != 0 {
		t.Errorf("result = %+v", res)
	}
	if !exists(filepath.Join(f.incoming, name)) {
		t.Error("duplicate should stay in the incoming directory")
	}
}

func TestRejectInPlace(t *testing.T) {
	f := newFixture(t)
	f.cfg.Incoming.RejectDir = ""
	if err := f.worker.UpdateConfig(f.cfg); err != nil {
		t.Fatal(err)
	}
	name := "GaugeCorr_QPE_01H_00.00_20100101-000000.grib2"
	f.drop(t, name)

	res, err := f.worker.FileAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Rejected != 1 || !exists(filepath.Join(f.incoming, name)) {
		t.Errorf("result = %+v", res)
	}
}

func TestDerivedWithoutRootSkipped(t *testing.T) {
	f := newFixture(t)
	f.cfg.Storage.DerivedRoot = ""
	if err := f.worker.UpdateConfig(f.cfg); err != nil {
		t.Fatal(err)
	}
	f.drop(t, "MultiSensor_QPE_01H_Pass2_00.00_20250407-130000.nc")

	res, _ := f.worker.FileAll(context.Background())
	if res.Skipped != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestBBoxNamespacesDerived(t *testing.T) {
	f := newFixture(t)
	f.cfg.Storage.BBox = "conus"
	if err := f.worker.UpdateConfig(f.cfg); err != nil {
		t.Fatal(err)
	}
	name := "MultiSensor_QPE_01H_Pass2_00.00_20250407-130000.nc"
	f.drop(t, name)

	if _, err := f.worker.FileAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !exists(filepath.Join(f.derived, "conus", "2025", "04", "07", name)) {
		t.Error("derived file not filed under bbox")
	}
}

func TestStartProcessesJobs(t *testing.T) {
	f := newFixture(t)
	name := "MultiSensor_QPE_01H_Pass2_00.00_20250407-120000.grib2.gz"
	f.drop(t, name)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.worker.Start(ctx)
		close(done)
	}()

	f.mb.Put(Job{Reason: "test", Requested: time.Now()})
	dst := filepath.Join(f.root, "2025", "04", "07", name)
	deadline := time.Now().Add(2 * time.Second)
	for !exists(dst) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !exists(dst) {
		t.Error("job was not processed")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestFileAllWithoutIncoming(t *testing.T) {
	f := newFixture(t)
	f.cfg.Incoming.Path = ""
	if err := f.worker.UpdateConfig(f.cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := f.worker.FileAll(context.Background()); err == nil {
		t.Error("expected an error")
	}
}

func TestRejectKeepsEarlierReject(t *testing.T) {
	f := newFixture(t)
	name := "GaugeCorr_QPE_01H_00.00_20100101-000000.grib2"
	if err := os.MkdirAll(f.reject, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(f.reject, name), []byte("earlier"), 0o644); err != nil {
		t.Fatal(err)
	}
	f.drop(t, name)

	res, err := f.worker.FileAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Rejected != 1 || res.Failed != 0 {
		t.Errorf("result = %+v", res)
	}
	if exists(filepath.Join(f.incoming, name)) {
		t.Error("rejected file left in the incoming directory")
	}
	if got, _ := os.ReadFile(filepath.Join(f.reject, name)); string(got) != "earlier" {
		t.Errorf("earlier reject overwritten: %q", got)
	}
	entries, err := os.ReadDir(f.reject)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("reject directory holds %d files, want 2", len(entries))
	}
}
