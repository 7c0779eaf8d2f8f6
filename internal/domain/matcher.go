package domain

import (
	"fmt"
	"log/slog"
	"strings"

	m "recon.dev/pkg/recon/internal/model"
)

const (
	missingSectionPassedOutput = "No matching output section found in the transcript, but the test passed"
	missingSectionFailedFormat = "No matching output section found in the transcript for command: %s"
)

// matcher assigns statuses to commands by looking their echoes up in the
// transcript sections.
type matcher struct {
	sections  []m.Section
	exitCode  int
	anyFailed bool
}

func newMatcher(sections []m.Section, exitCode int) *matcher {
	return &matcher{sections: sections, exitCode: exitCode}
}

func (mt *matcher) passed() bool {
	return mt.exitCode == 0
}

// assign walks the commands in document order. Nested-tree blocks are
// descended into so their steps are matched before the block is resolved.
func (mt *matcher) assign(commands []m.Command) {
	for i := range commands {
		cmd := &commands[i]

		switch cmd.Variant() {
		case m.VariantComment:
			continue
		case m.VariantCommand:
			mt.matchCommand(cmd)
		case m.VariantNestedBlock:
			mt.assign(cmd.NestedSteps)
			mt.provisional(cmd)
		case m.VariantLegacyBlock:
			mt.provisional(cmd)
		}
	}
}

// provisional gives a block a status that propagation may later overwrite.
func (mt *matcher) provisional(block *m.Command) {
	if block.IsLegacyBlockMember {
		return
	}

	if mt.passed() {
		block.Status = m.StatusMatched
	} else {
		block.Status = m.StatusPending
	}
}

func (mt *matcher) matchCommand(cmd *m.Command) {
	section := mt.findSection(cmd.Text)
	if section == nil {
		mt.assignMissing(cmd)
		return
	}

	if d, ok := ExtractDuration(section.Raw); ok {
		cmd.Duration = m.Ptr(d.Millis)
	}

	actual := actualOutput(*section)
	cmd.ActualOutput = m.Ptr(actual)

	if cmd.ExpectedOutput == nil {
		cmd.ExpectedOutput = m.Ptr(actual)
	}

	switch {
	case mt.passed():
		cmd.Status = m.StatusMatched
	case *cmd.ExpectedOutput == actual:
		cmd.Status = m.StatusMatched
	default:
		cmd.Status = m.StatusFailed
		mt.anyFailed = true

		slog.Debug("command output differs", "command", cmd.Text)
	}
}

func (mt *matcher) assignMissing(cmd *m.Command) {
	if mt.passed() {
		cmd.Status = m.StatusMatched
		cmd.ActualOutput = m.Ptr(missingSectionPassedOutput)

		return
	}

	cmd.Status = m.StatusFailed
	cmd.ActualOutput = m.Ptr(fmt.Sprintf(missingSectionFailedFormat, cmd.Text))
	mt.anyFailed = true

	slog.Debug("no transcript section for command", "command", cmd.Text)
}

// findSection returns the first section echoing text. Sections stay in the
// pool after a match, so identical commands all bind to the same section.
func (mt *matcher) findSection(text string) *m.Section {
	want := strings.TrimSpace(text)

	for i := range mt.sections {
		if strings.TrimSpace(mt.sections[i].Command) == want {
			return &mt.sections[i]
		}
	}

	return nil
}
