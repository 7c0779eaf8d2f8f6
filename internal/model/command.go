// Package model defines the data structures shared by the reconciliation engine,
// its adapters and the CLI.
package model

// Kind is the step kind assigned by the structured test parser.
type Kind string

const (
	// KindCommand is an input step whose output is compared against the transcript.
	KindCommand Kind = "command"
	// KindBlock is a reusable group of steps, either legacy-flat or nested.
	KindBlock Kind = "block"
	// KindComment is free text that never receives a status from matching.
	KindComment Kind = "comment"
)

// Status is the reconciliation outcome of a single command or block.
type Status string

const (
	// StatusUnset means no status has been assigned yet.
	StatusUnset Status = ""
	// StatusMatched means the actual output was accepted.
	StatusMatched Status = "matched"
	// StatusFailed means the actual output differed or was missing.
	StatusFailed Status = "failed"
	// StatusPending means the outcome could not be decided.
	StatusPending Status = "pending"
)

// IsSet reports whether a status has been assigned.
func (s Status) IsSet() bool {
	return s != StatusUnset
}

// Variant is the closed set of step shapes the engine dispatches on.
type Variant int

const (
	// VariantCommand is a plain command step.
	VariantCommand Variant = iota
	// VariantComment is a comment step.
	VariantComment
	// VariantLegacyBlock is a block grouped with its members by key.
	VariantLegacyBlock
	// VariantNestedBlock is a block carrying its own step tree.
	VariantNestedBlock
)

func (v Variant) String() string {
	switch v {
	case VariantCommand:
		return "command"
	case VariantComment:
		return "comment"
	case VariantLegacyBlock:
		return "legacy-block"
	case VariantNestedBlock:
		return "nested-block"
	}

	return "unknown"
}

// LegacyKeySeparator joins a block text and its source id into a grouping key.
const LegacyKeySeparator = "|"

// Command is one entry of the flattened expected command list.
type Command struct {
	Text           string  `json:"text" yaml:"text"`
	Kind           Kind    `json:"kind" yaml:"kind"`
	ExpectedOutput *string `json:"expectedOutput,omitempty" yaml:"expectedOutput,omitempty"`
	ActualOutput   *string `json:"actualOutput,omitempty" yaml:"actualOutput,omitempty"`
	Duration       *int64  `json:"duration,omitempty" yaml:"duration,omitempty"` // milliseconds
	Status         Status  `json:"status,omitempty" yaml:"status,omitempty"`

	// Legacy flat grouping: members point at their parent block's text.
	IsLegacyBlockMember bool   `json:"isLegacyBlockMember,omitempty" yaml:"isLegacyBlockMember,omitempty"`
	ParentBlockKey      string `json:"parentBlockKey,omitempty" yaml:"parentBlockKey,omitempty"`
	BlockSourceID       string `json:"blockSourceId,omitempty" yaml:"blockSourceId,omitempty"`

	// Nested tree: a nil slice means the block is not a nested-tree block.
	NestedSteps []Command `json:"nestedSteps,omitempty" yaml:"nestedSteps,omitempty"`
}

// Variant classifies the command into one of the closed step shapes.
func (c *Command) Variant() Variant {
	switch c.Kind {
	case KindComment:
		return VariantComment
	case KindBlock:
		if c.NestedSteps != nil {
			return VariantNestedBlock
		}

		return VariantLegacyBlock
	case KindCommand:
		return VariantCommand
	}

	return VariantCommand
}

// BlockKey is the legacy grouping key of a block command.
func (c *Command) BlockKey() string {
	return c.Text + LegacyKeySeparator + c.BlockSourceID
}

// MemberKey is the legacy grouping key a block member belongs to.
func (c *Command) MemberKey() string {
	return c.ParentBlockKey + LegacyKeySeparator + c.BlockSourceID
}

// Clone returns a deep copy of the command, including nested steps.
func (c Command) Clone() Command {
	out := c
	out.ExpectedOutput = clonePtr(c.ExpectedOutput)
	out.ActualOutput = clonePtr(c.ActualOutput)
	out.Duration = clonePtr(c.Duration)

	if c.NestedSteps != nil {
		out.NestedSteps = CloneCommands(c.NestedSteps)
	}

	return out
}

// CloneCommands deep-copies a command list. A nil list stays nil.
func CloneCommands(commands []Command) []Command {
	if commands == nil {
		return nil
	}

	out := make([]Command, len(commands))
	for i := range commands {
		out[i] = commands[i].Clone()
	}

	return out
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
