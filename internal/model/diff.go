package model

// DiffLineType tags a line of an output diff.
type DiffLineType string

const (
	DiffSame    DiffLineType = "same"
	DiffChanged DiffLineType = "changed"
	DiffAdded   DiffLineType = "added"
	DiffRemoved DiffLineType = "removed"
)

// DiffLine is one line of a positional expected/actual comparison.
type DiffLine struct {
	Type       DiffLineType `json:"type"`
	Content    string       `json:"content"`
	OldContent string       `json:"oldContent,omitempty"` // only for changed lines
}

// OutputDiff is the line diff between an expected and an actual output.
type OutputDiff struct {
	HasDiff bool       `json:"hasDiff"`
	Lines   []DiffLine `json:"lines"`
}

// CommandDiff pairs a failed command with its output diff for display.
type CommandDiff struct {
	Command string     `json:"command"`
	Diff    OutputDiff `json:"diff"`
	Unified string     `json:"unified"`
}
