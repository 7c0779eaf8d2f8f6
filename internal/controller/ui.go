// Package controller provides output adapters for displaying reconciliation reports.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "recon.dev/pkg/recon/internal/model"
)

// UI defines the interface for displaying reconciliation results.
type UI interface {
	DisplayReport(ctx context.Context, report m.StoredReport, diffs []m.CommandDiff) error
	DisplayBatch(ctx context.Context, reports []m.StoredReport) error
	DisplayReportList(ctx context.Context, summaries []m.ReportSummary) error
}

// NewUI returns the UI for the given command. Terminals get colored status labels.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
