package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "recon.dev/pkg/recon/internal/model"
)

const (
	noStatusLabel = "-"
	nestIndent    = "  "
	commentPrefix = "# "
	timeLayout    = "2006-01-02 15:04:05"
	resultPass    = "PASS"
	resultFail    = "FAIL"
)

// SimpleUI implements UI by printing tables to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styles *styles
}

// NewSimpleUI creates a SimpleUI that prints plain text.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// NewStyledUI creates a SimpleUI that colors status labels and diff lines.
func NewStyledUI(cmd *cobra.Command) *SimpleUI {
	st := newStyles()

	return &SimpleUI{cmd: cmd, styles: &st}
}

// DisplayReport prints the command table of one report followed by the
// diffs of its failed commands.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.StoredReport, diffs []m.CommandDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", s.title(reportTitle(report)))
	s.printf("Transcript: %s\n", report.Origin)

	s.printf("Exit code %d: %s\n", report.Report.ExitCode, report.Report.Message)

	if report.Report.ErrorMessage != nil {
		s.printf("Error: %s\n", *report.Report.ErrorMessage)
	}

	s.printf("\n%s", s.renderCommandTable(report.Report))

	for _, diff := range diffs {
		s.printf("\n%s\n", s.title("--- "+diff.Command))
		s.printf("%s", s.renderDiff(diff))
	}

	return nil
}

func reportTitle(report m.StoredReport) string {
	if report.Name == "" {
		return "Report " + report.ID
	}

	return fmt.Sprintf("Report %s (%s)", report.ID, report.Name)
}

func (s *SimpleUI) renderCommandTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Status", "Step", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	s.appendCommandRows(table, report.Commands, 0)

	counts := report.Counts()
	table.SetFooter([]string{
		s.result(report.Success),
		fmt.Sprintf("matched %d  failed %d  pending %d", counts.Matched, counts.Failed, counts.Pending),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) appendCommandRows(table *tablewriter.Table, commands []m.Command, depth int) {
	indent := strings.Repeat(nestIndent, depth)

	for i := range commands {
		cmd := &commands[i]

		text := firstLine(cmd.Text)
		status := noStatusLabel

		switch cmd.Variant() {
		case m.VariantComment:
			text = commentPrefix + text
		case m.VariantLegacyBlock, m.VariantNestedBlock:
			text = "[" + text + "]"
			status = s.status(cmd.Status)
		case m.VariantCommand:
			status = s.status(cmd.Status)
		}

		duration := ""
		if cmd.Duration != nil {
			duration = fmt.Sprintf("%dms", *cmd.Duration)
		}

		if cmd.IsLegacyBlockMember {
			text = nestIndent + text
		}

		table.Append([]string{status, indent + text, duration})

		s.appendCommandRows(table, cmd.NestedSteps, depth+1)
	}
}

// renderDiff prefers the pattern-aware line diff and falls back to the
// unified diff when patterns hide every difference.
func (s *SimpleUI) renderDiff(diff m.CommandDiff) string {
	if !diff.Diff.HasDiff {
		if diff.Unified == "" {
			return ""
		}

		var out strings.Builder

		for _, line := range strings.Split(strings.TrimSuffix(diff.Unified, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
				out.WriteString(s.paint(line, diffAdded) + "\n")
			case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
				out.WriteString(s.paint(line, diffRemoved) + "\n")
			default:
				out.WriteString(line + "\n")
			}
		}

		return out.String()
	}

	var out strings.Builder

	for _, line := range diff.Diff.Lines {
		switch line.Type {
		case m.DiffSame:
			out.WriteString("  " + line.Content + "\n")
		case m.DiffChanged:
			out.WriteString(s.paint("- "+line.OldContent, diffRemoved) + "\n")
			out.WriteString(s.paint("+ "+line.Content, diffAdded) + "\n")
		case m.DiffAdded:
			out.WriteString(s.paint("+ "+line.Content, diffAdded) + "\n")
		case m.DiffRemoved:
			out.WriteString(s.paint("- "+line.Content, diffRemoved) + "\n")
		}
	}

	return out.String()
}

// DisplayBatch prints one summary row per reconciled run.
func (s *SimpleUI) DisplayBatch(ctx context.Context, reports []m.StoredReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Result", "Exit", "Matched", "Failed", "Pending", "ID"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	failedRuns := 0

	for i := range reports {
		report := &reports[i]
		counts := report.Report.Counts()

		if !report.Report.Success {
			failedRuns++
		}

		table.Append([]string{
			report.Name,
			s.result(report.Report.Success),
			fmt.Sprintf("%d", report.Report.ExitCode),
			fmt.Sprintf("%d", counts.Matched),
			fmt.Sprintf("%d", counts.Failed),
			fmt.Sprintf("%d", counts.Pending),
			report.ID,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Runs %d", len(reports)),
		fmt.Sprintf("%d failed", failedRuns),
		"", "", "", "", "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayReportList prints the stored report index.
func (s *SimpleUI) DisplayReportList(ctx context.Context, summaries []m.ReportSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(summaries) == 0 {
		s.printf("No reports found.\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Name", "Created", "Result", "Exit", "Matched", "Failed", "Pending"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, summary := range summaries {
		table.Append([]string{
			summary.ID,
			summary.Name,
			summary.CreatedAt.Local().Format(timeLayout),
			s.result(summary.Success),
			fmt.Sprintf("%d", summary.ExitCode),
			fmt.Sprintf("%d", summary.Counts.Matched),
			fmt.Sprintf("%d", summary.Counts.Failed),
			fmt.Sprintf("%d", summary.Counts.Pending),
		})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

type diffPaint int

const (
	diffAdded diffPaint = iota
	diffRemoved
)

func (s *SimpleUI) paint(text string, kind diffPaint) string {
	if s.styles == nil {
		return text
	}

	if kind == diffAdded {
		return s.styles.added.Render(text)
	}

	return s.styles.removed.Render(text)
}

func (s *SimpleUI) status(status m.Status) string {
	label := string(status)
	if !status.IsSet() {
		label = noStatusLabel
	}

	if s.styles == nil {
		return label
	}

	return s.styles.status(status, label)
}

func (s *SimpleUI) result(success bool) string {
	if s.styles == nil {
		if success {
			return resultPass
		}

		return resultFail
	}

	if success {
		return s.styles.matched.Render(resultPass)
	}

	return s.styles.failed.Render(resultFail)
}

func (s *SimpleUI) title(text string) string {
	if s.styles == nil {
		return text
	}

	return s.styles.title.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func firstLine(text string) string {
	line, _, found := strings.Cut(text, "\n")
	if found {
		return line + " ..."
	}

	return line
}
