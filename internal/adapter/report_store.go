package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	m "recon.dev/pkg/recon/internal/model"
)

const (
	reportIndexFile = "index.json"
	reportLockFile  = "index.lock"
	reportFileExt   = ".json"
	lockRetryDelay  = 20 * time.Millisecond
)

// ErrReportNotFound is returned when a report id has no stored report.
var ErrReportNotFound = errors.New("report not found")

// ReportStore persists reconciliation reports in a reports directory.
type ReportStore interface {
	// SaveReport assigns an id and creation time when missing, writes the
	// report and records it in the directory index.
	SaveReport(ctx context.Context, dir m.Path, report m.StoredReport) (m.StoredReport, error)
	// LoadReport reads a stored report by id.
	LoadReport(ctx context.Context, dir m.Path, id string) (m.StoredReport, error)
	// ListReports returns the index entries ordered by creation time.
	ListReports(ctx context.Context, dir m.Path) ([]m.ReportSummary, error)
}

// LocalReportStore keeps one JSON file per report plus an index.json guarded
// by a file lock, so concurrent writers never interleave index updates.
type LocalReportStore struct {
	now   func() time.Time
	newID func() string
}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SaveReport implements ReportStore.
func (s *LocalReportStore) SaveReport(ctx context.Context, dir m.Path, report m.StoredReport) (m.StoredReport, error) {
	if report.ID == "" {
		report.ID = s.newID()
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = s.now().UTC()
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return m.StoredReport{}, fmt.Errorf("create reports dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return m.StoredReport{}, fmt.Errorf("marshal report: %w", err)
	}

	path := reportPath(dir, report.ID)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return m.StoredReport{}, fmt.Errorf("write report %s: %w", path, err)
	}

	err = s.withIndexLock(ctx, dir, func() error {
		index, err := readIndex(dir)
		if err != nil {
			return err
		}

		index = append(index, report.Summary())

		return writeIndex(dir, index)
	})
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			slog.Error("Failed to remove unindexed report", "path", path, "error", rmErr)
		}

		return m.StoredReport{}, err
	}

	slog.Debug("saved report", "id", report.ID, "dir", dir)

	return report, nil
}

// LoadReport implements ReportStore.
func (s *LocalReportStore) LoadReport(ctx context.Context, dir m.Path, id string) (m.StoredReport, error) {
	if err := ctx.Err(); err != nil {
		return m.StoredReport{}, err
	}

	if id == "" || filepath.Base(id) != id {
		return m.StoredReport{}, fmt.Errorf("invalid report id %q", id)
	}

	path := reportPath(dir, id)

	// #nosec G304 - id is checked to be a bare file name
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m.StoredReport{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
		}

		slog.Error("Failed to read report", "path", path, "error", err)

		return m.StoredReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.StoredReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.StoredReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}

// ListReports implements ReportStore.
func (s *LocalReportStore) ListReports(ctx context.Context, dir m.Path) ([]m.ReportSummary, error) {
	var index []m.ReportSummary

	err := s.withIndexLock(ctx, dir, func() error {
		var err error

		index, err = readIndex(dir)

		return err
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(index, func(i, j int) bool {
		if index[i].CreatedAt.Equal(index[j].CreatedAt) {
			return index[i].ID < index[j].ID
		}

		return index[i].CreatedAt.Before(index[j].CreatedAt)
	})

	return index, nil
}

func (s *LocalReportStore) withIndexLock(ctx context.Context, dir m.Path, fn func() error) error {
	if _, err := os.Stat(string(dir)); os.IsNotExist(err) {
		return fn()
	}

	lock := flock.New(filepath.Join(string(dir), reportLockFile))

	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		slog.Error("Failed to lock report index", "dir", dir, "error", err)
		return fmt.Errorf("lock report index: %w", err)
	}

	if !locked {
		return fmt.Errorf("lock report index: %s is busy", dir)
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Error("Failed to unlock report index", "dir", dir, "error", err)
		}
	}()

	return fn()
}

func readIndex(dir m.Path) ([]m.ReportSummary, error) {
	path := filepath.Join(string(dir), reportIndexFile)

	// #nosec G304 - fixed file name inside the reports dir
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []m.ReportSummary{}, nil
		}

		return nil, fmt.Errorf("read report index: %w", err)
	}

	var index []m.ReportSummary
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("decode report index %s: %w", path, err)
	}

	return index, nil
}

func writeIndex(dir m.Path, index []m.ReportSummary) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report index: %w", err)
	}

	path := filepath.Join(string(dir), reportIndexFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report index: %w", err)
	}

	return nil
}

func reportPath(dir m.Path, id string) string {
	return filepath.Join(string(dir), id+reportFileExt)
}
