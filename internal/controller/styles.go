package controller

import (
	"github.com/charmbracelet/lipgloss"
	m "recon.dev/pkg/recon/internal/model"
)

type styles struct {
	matched lipgloss.Style
	failed  lipgloss.Style
	pending lipgloss.Style
	muted   lipgloss.Style
	title   lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

func newStyles() styles {
	return styles{
		matched: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		muted:   lipgloss.NewStyle().Faint(true),
		title:   lipgloss.NewStyle().Bold(true),
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (st *styles) status(status m.Status, label string) string {
	switch status {
	case m.StatusMatched:
		return st.matched.Render(label)
	case m.StatusFailed:
		return st.failed.Render(label)
	case m.StatusPending:
		return st.pending.Render(label)
	case m.StatusUnset:
	}

	return st.muted.Render(label)
}
