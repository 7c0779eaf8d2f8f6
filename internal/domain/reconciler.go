package domain

import (
	"context"
	"log/slog"

	"recon.dev/pkg/recon/internal/adapter"
	m "recon.dev/pkg/recon/internal/model"
)

// Outcome is the execution result handed over by the process layer.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// Run bundles everything needed to reconcile one replay.
type Run struct {
	Commands   []m.Command
	Transcript m.Path // companion result file; may be empty
	Outcome    Outcome
}

// Result is a reconciled report together with the transcript source it used.
type Result struct {
	Report m.Report
	Origin m.TranscriptOrigin
}

// Reconciler turns a replay outcome into a status report.
type Reconciler interface {
	Reconcile(ctx context.Context, run Run) Result
}

type reconciler struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewReconciler constructs a Reconciler that reads primary transcripts
// through the provided filesystem adapter.
func NewReconciler(fsAdapter adapter.SourceFSAdapter) Reconciler {
	return &reconciler{fsAdapter: fsAdapter}
}

// Reconcile loads the transcript sections (with stdout fallback) and builds the
// report. It never fails: every failure state is encoded in the report.
func (r *reconciler) Reconcile(ctx context.Context, run Run) Result {
	sections, origin := LoadSections(ctx, r.fsAdapter, run.Transcript, run.Outcome.Stdout)
	slog.Debug("loaded transcript sections", "origin", origin, "sections", len(sections))

	return Result{
		Report: ReconcileSections(run.Commands, sections, run.Outcome),
		Origin: origin,
	}
}

// passFunc runs matching and propagation over commands and reports whether
// any command failed to match.
type passFunc func(commands []m.Command, sections []m.Section, exitCode int) bool

func matchAndPropagate(commands []m.Command, sections []m.Section, exitCode int) bool {
	mt := newMatcher(sections, exitCode)
	mt.assign(commands)
	newPropagator(commands, exitCode).resolve(commands)

	return mt.anyFailed
}

// ReconcileSections matches commands against already parsed sections and
// assembles the report. The caller's commands are not modified.
func ReconcileSections(commands []m.Command, sections []m.Section, outcome Outcome) m.Report {
	return reconcile(commands, sections, outcome, matchAndPropagate)
}

func reconcile(commands []m.Command, sections []m.Section, outcome Outcome, pass passFunc) m.Report {
	steps := m.CloneCommands(commands)
	if steps == nil {
		steps = []m.Command{}
	}

	passed := outcome.ExitCode == 0

	anyFailed, ok := runPass(pass, steps, sections, outcome.ExitCode)
	switch {
	case !ok:
		fillUnset(steps, m.StatusFailed)
	case passed:
		fillUnset(steps, m.StatusMatched)
	default:
		fillUnset(steps, m.StatusPending)
	}

	if anyFailed {
		slog.Info("some commands did not match their expected output", "exitCode", outcome.ExitCode)
	}

	report := m.Report{
		Commands:         steps,
		Success:          passed,
		ExitCode:         outcome.ExitCode,
		ExitCodeSuccess:  passed,
		Stderr:           outcome.Stderr,
		Stdout:           outcome.Stdout,
		Message:          ClassifyExitCode(outcome.ExitCode).Description,
		TestReallyFailed: !passed,
	}

	if !passed && outcome.Err != nil {
		report.ErrorMessage = m.Ptr(outcome.Err.Error())
	}

	return report
}

// runPass executes pass and recovers from a panic inside it. ok is false when
// the pass did not complete.
func runPass(pass passFunc, steps []m.Command, sections []m.Section, exitCode int) (anyFailed bool, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("reconciliation pass aborted, undetermined steps marked failed", "panic", r)

			anyFailed = true
			ok = false
		}
	}()

	return pass(steps, sections, exitCode), true
}
