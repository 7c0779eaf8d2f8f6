package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"recon.dev/pkg/recon/internal/adapter"
	"recon.dev/pkg/recon/internal/controller"
	m "recon.dev/pkg/recon/internal/model"
)

// ErrRunFailed is returned when a reconciled replay did not succeed.
var ErrRunFailed = errors.New("replay failed")

// RunArgs describes a single replay to reconcile.
type RunArgs struct {
	Name       string
	Commands   m.Path
	Transcript m.Path
	Stdout     m.Path
	Stderr     m.Path
	ExitCode   int
	Error      string
	Patterns   m.Path
	Reports    m.Path

	// SkipPatternDiscovery disables the .clt/patterns lookup when Patterns is empty.
	SkipPatternDiscovery bool
}

// BatchArgs describes a manifest of replays reconciled concurrently.
type BatchArgs struct {
	Manifest m.Path
	Reports  m.Path
	Threads  int

	SkipPatternDiscovery bool
}

// ViewArgs selects a stored report to display.
type ViewArgs struct {
	Reports m.Path
	ID      string
}

// ListArgs selects the reports directory to list.
type ListArgs struct {
	Reports m.Path
}

// Workflow drives reconciliation from CLI arguments to stored and displayed reports.
type Workflow interface {
	Reconcile(ctx context.Context, args RunArgs) (m.StoredReport, error)
	Batch(ctx context.Context, args BatchArgs) ([]m.StoredReport, error)
	View(ctx context.Context, args ViewArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.InputAdapter
	adapter.ReportStore
	controller.UI
	Reconciler
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	inputAdapter adapter.InputAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	reconciler Reconciler,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		InputAdapter:    inputAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Reconciler:      reconciler,
	}
}

// Reconcile reconciles one replay, stores the report and displays it with
// the diffs of its failed commands. ErrRunFailed is returned for a failed replay.
func (w *workflow) Reconcile(ctx context.Context, args RunArgs) (m.StoredReport, error) {
	stored, matcher, err := w.reconcileRun(ctx, args)
	if err != nil {
		return m.StoredReport{}, err
	}

	diffs := FailedCommandDiffs(matcher, stored.Report.Commands)
	if err := w.DisplayReport(ctx, stored, diffs); err != nil {
		slog.Error("Failed to display report", "id", stored.ID, "error", err)
		return stored, fmt.Errorf("display: %w", err)
	}

	if !stored.Report.Success {
		return stored, fmt.Errorf("%w: %s exited with code %d", ErrRunFailed, displayName(stored), stored.Report.ExitCode)
	}

	return stored, nil
}

// Batch reconciles every run of a manifest with at most Threads runs in
// flight. Results keep manifest order; runs that could not be reconciled are
// reported in the returned error and left out of the results.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) ([]m.StoredReport, error) {
	manifest, err := w.LoadManifest(ctx, args.Manifest)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	slots := make([]*m.StoredReport, len(manifest.Runs))

	var (
		mu   sync.Mutex
		errs []error
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, run := range manifest.Runs {
		group.Go(func() error {
			stored, _, err := w.reconcileRun(groupCtx, RunArgs{
				Name:       run.Name,
				Commands:   run.Commands,
				Transcript: run.Transcript,
				Stdout:     run.Stdout,
				Stderr:     run.Stderr,
				ExitCode:   run.ExitCode,
				Error:      run.Error,
				Patterns:   run.Patterns,
				Reports:    args.Reports,

				SkipPatternDiscovery: args.SkipPatternDiscovery,
			})
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}

				slog.Error("Failed to reconcile run", "run", run.Name, "error", err)

				mu.Lock()
				errs = append(errs, fmt.Errorf("run %d (%s): %w", i, run.Name, err))
				mu.Unlock()

				return nil
			}

			slots[i] = &stored

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	reports := make([]m.StoredReport, 0, len(slots))
	failed := 0

	for _, slot := range slots {
		if slot == nil {
			continue
		}

		if !slot.Report.Success {
			failed++
		}

		reports = append(reports, *slot)
	}

	slog.Info("batch reconciled",
		"runs", len(manifest.Runs),
		"reconciled", len(reports),
		"failed", failed,
		"matchRate", fmt.Sprintf("%.2f%%", matchRate(reports)*100),
	)

	if err := w.DisplayBatch(ctx, reports); err != nil {
		slog.Error("Failed to display batch", "error", err)
		return reports, fmt.Errorf("display: %w", err)
	}

	if failed > 0 {
		errs = append(errs, fmt.Errorf("%w: %d of %d runs", ErrRunFailed, failed, len(manifest.Runs)))
	}

	return reports, errors.Join(errs...)
}

// View displays a stored report together with the diffs of its failed commands.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	stored, err := w.LoadReport(ctx, args.Reports, args.ID)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	diffs := FailedCommandDiffs(NewPatternMatcher(nil), stored.Report.Commands)
	if err := w.DisplayReport(ctx, stored, diffs); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// List displays the index of stored reports.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	summaries, err := w.ListReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	if err := w.DisplayReportList(ctx, summaries); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) reconcileRun(ctx context.Context, args RunArgs) (m.StoredReport, *PatternMatcher, error) {
	commands, err := w.LoadCommands(ctx, args.Commands)
	if err != nil {
		return m.StoredReport{}, nil, fmt.Errorf("load commands: %w", err)
	}

	stdout, err := w.readOptional(ctx, args.Stdout)
	if err != nil {
		return m.StoredReport{}, nil, fmt.Errorf("read stdout: %w", err)
	}

	stderr, err := w.readOptional(ctx, args.Stderr)
	if err != nil {
		return m.StoredReport{}, nil, fmt.Errorf("read stderr: %w", err)
	}

	patterns, err := w.loadPatterns(ctx, args)
	if err != nil {
		return m.StoredReport{}, nil, fmt.Errorf("load patterns: %w", err)
	}

	outcome := Outcome{ExitCode: args.ExitCode, Stdout: stdout, Stderr: stderr}
	if args.Error != "" {
		outcome.Err = errors.New(args.Error)
	}

	result := w.Reconciler.Reconcile(ctx, Run{
		Commands:   commands,
		Transcript: args.Transcript,
		Outcome:    outcome,
	})

	name := args.Name
	if name == "" {
		name = string(args.Commands)
	}

	stored, err := w.SaveReport(ctx, args.Reports, m.StoredReport{
		Name:   name,
		Origin: result.Origin,
		Report: result.Report,
	})
	if err != nil {
		return m.StoredReport{}, nil, fmt.Errorf("save report: %w", err)
	}

	slog.Info("reconciled run",
		"id", stored.ID,
		"name", stored.Name,
		"exitCode", stored.Report.ExitCode,
		"origin", stored.Origin,
	)

	return stored, NewPatternMatcher(patterns), nil
}

func (w *workflow) readOptional(ctx context.Context, path m.Path) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := w.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// loadPatterns uses the explicit patterns file when given and otherwise looks
// for one next to the commands file unless discovery is off. Discovery
// problems only disable patterns.
func (w *workflow) loadPatterns(ctx context.Context, args RunArgs) (map[string]string, error) {
	if args.Patterns != "" {
		return w.LoadPatterns(ctx, args.Patterns)
	}

	if args.SkipPatternDiscovery {
		return nil, nil
	}

	found, err := w.FindPatternsFile(ctx, args.Commands)
	if err != nil {
		slog.Warn("pattern discovery failed", "commands", args.Commands, "error", err)
		return nil, nil
	}

	if found == "" {
		return nil, nil
	}

	patterns, err := w.LoadPatterns(ctx, found)
	if err != nil {
		slog.Warn("ignoring unreadable patterns file", "path", found, "error", err)
		return nil, nil
	}

	return patterns, nil
}

func displayName(stored m.StoredReport) string {
	if stored.Name != "" {
		return stored.Name
	}

	return stored.ID
}
