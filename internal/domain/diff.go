package domain

import (
	"log/slog"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	m "recon.dev/pkg/recon/internal/model"
)

const unifiedContextLines = 3

// DiffOutputs compares expected and actual output line by line, treating
// pattern-equivalent lines as unchanged.
func DiffOutputs(matcher *PatternMatcher, expected, actual string) m.OutputDiff {
	expectedLines := outputLines(expected)
	actualLines := outputLines(actual)
	result := m.OutputDiff{Lines: []m.DiffLine{}}

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		switch {
		case i >= len(actualLines):
			result.HasDiff = true
			result.Lines = append(result.Lines, m.DiffLine{Type: m.DiffRemoved, Content: expectedLines[i]})
		case i >= len(expectedLines):
			result.HasDiff = true
			result.Lines = append(result.Lines, m.DiffLine{Type: m.DiffAdded, Content: actualLines[i]})
		case matcher.HasDiff(expectedLines[i], actualLines[i]):
			result.HasDiff = true
			result.Lines = append(result.Lines, m.DiffLine{
				Type:       m.DiffChanged,
				Content:    actualLines[i],
				OldContent: expectedLines[i],
			})
		default:
			result.Lines = append(result.Lines, m.DiffLine{Type: m.DiffSame, Content: actualLines[i]})
		}
	}

	return result
}

// UnifiedDiff renders a unified diff of expected against actual.
func UnifiedDiff(expected, actual string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  unifiedContextLines,
	})
}

// FailedCommandDiffs collects diffs for every failed command in the tree.
func FailedCommandDiffs(matcher *PatternMatcher, commands []m.Command) []m.CommandDiff {
	var diffs []m.CommandDiff

	collectFailedDiffs(matcher, commands, &diffs)

	return diffs
}

func collectFailedDiffs(matcher *PatternMatcher, commands []m.Command, diffs *[]m.CommandDiff) {
	for i := range commands {
		cmd := &commands[i]

		if cmd.Variant() == m.VariantCommand && cmd.Status == m.StatusFailed {
			expected := deref(cmd.ExpectedOutput)
			actual := deref(cmd.ActualOutput)

			unified, err := UnifiedDiff(expected, actual)
			if err != nil {
				slog.Warn("failed to render unified diff", "command", cmd.Text, "error", err)
			}

			*diffs = append(*diffs, m.CommandDiff{
				Command: cmd.Text,
				Diff:    DiffOutputs(matcher, expected, actual),
				Unified: unified,
			})
		}

		collectFailedDiffs(matcher, cmd.NestedSteps, diffs)
	}
}

func outputLines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
