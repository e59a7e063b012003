package worker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jdossgollin/climate-data/internal/fs"
	"github.com/jdossgollin/climate-data/internal/metrics"
	"github.com/jdossgollin/climate-data/internal/naming"
	"github.com/jdossgollin/climate-data/internal/snapshot"
)

const (
	outcomeFiled     = metrics.OutcomeFiled
	outcomeDuplicate = metrics.OutcomeDuplicate
	outcomeRejected  = metrics.OutcomeRejected
	outcomeSkipped   = metrics.OutcomeSkipped
	outcomeError     = metrics.OutcomeError
)

// rejectSuffixLayout disambiguates rejected files that share a name.
const rejectSuffixLayout = "20060102T150405.000000000"


// fileOne files a single incoming file and reports what happened to it.
func (w *Worker) fileOne(ctx context.Context, set settings, info fs.FileInfo) string {
	art := snapshot.Artifact{Name: info.Name, Size: info.Size, ModTime: info.MTime}

	kind, ok := art.Kind()
	if !ok {
		w.log.Debug("ignoring non-snapshot file", "file", info.Path)
		return outcomeSkipped
	}

	root := set.storage.Root
	if kind == naming.Derived {
		root = set.storage.DerivedRoot
		if root == "" {
			w.log.Debug("no derived root configured, leaving file", "file", info.Path)
			return outcomeSkipped
		}
	}

	t, err := art.Timestamp()
	if err != nil {
		return w.reject(ctx, set, info, err)
	}
	if err := set.validator.Validate(t); err != nil {
		return w.reject(ctx, set, info, err)
	}

	dst, err := set.codec.Name(kind, t, root, set.storage.BBox)
	if err != nil {
		return w.reject(ctx, set, info, err)
	}
	// The product prefix must match the era of the embedded timestamp.
	if filepath.Base(dst) != art.Name {
		return w.reject(ctx, set, info, fmt.Errorf("name does not match archive convention, expected %s", filepath.Base(dst)))
	}

	w.log.Debug("filing snapshot", "src", info.Path, "dst", dst)
	if err := w.fs.Move(ctx, info.Path, dst); err != nil {
		if errors.Is(err, fs.ErrExists) {
			w.log.Warn("snapshot already archived, leaving incoming copy", "file", info.Path, "dst", dst)
			return outcomeDuplicate
		}
		w.log.Error("filing failed", "file", info.Path, "error", err)
		return outcomeError
	}

	w.metrics.LastFiled.Set(float64(t.Unix()))
	w.log.Info("filed snapshot", "snapshot", naming.Format(t), "path", dst)
	return outcomeFiled
}

// reject logs why a file cannot be archived and moves it to the reject
// directory when one is configured.
func (w *Worker) reject(ctx context.Context, set settings, info fs.FileInfo, reason error) string {
	w.log.Warn("rejecting incoming file", "file", info.Path, "reason", reason)
	if set.incoming.RejectDir == "" {
		return outcomeRejected
	}

	dst := filepath.Join(set.incoming.RejectDir, info.Name)
	err := w.fs.Move(ctx, info.Path, dst)
	if errors.Is(err, fs.ErrExists) {
		// An earlier reject holds the name; keep both.
		dst = fmt.Sprintf("%s.%s", dst, time.Now().UTC().Format(rejectSuffixLayout))
		err = w.fs.Move(ctx, info.Path, dst)
	}
	if err != nil {
		w.log.Error("moving rejected file failed", "file", info.Path, "error", err)
		return outcomeError
	}
	w.log.Debug("moved rejected file", "file", info.Path, "dst", dst)
	return outcomeRejected
}
