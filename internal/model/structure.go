package model

// StepType is the type tag of a step in the structured test tree.
type StepType string

const (
	StepInput    StepType = "input"
	StepOutput   StepType = "output"
	StepComment  StepType = "comment"
	StepBlock    StepType = "block"
	StepDuration StepType = "duration"
)

// TestStep is one node of the structured test tree produced by the external
// .rec parser.
type TestStep struct {
	Type    StepType   `json:"type" yaml:"type"`
	Args    []string   `json:"args,omitempty" yaml:"args,omitempty"`
	Content *string    `json:"content,omitempty" yaml:"content,omitempty"`
	Steps   []TestStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// TestStructure is the structured form of a .rec test definition.
type TestStructure struct {
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Steps       []TestStep `json:"steps" yaml:"steps"`
}
