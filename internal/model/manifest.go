package model

// ManifestRun describes one replay to reconcile in a batch.
type ManifestRun struct {
	Name       string `json:"name" yaml:"name"`
	Commands   Path   `json:"commands" yaml:"commands"`
	Transcript Path   `json:"transcript,omitempty" yaml:"transcript,omitempty"`
	Stdout     Path   `json:"stdout,omitempty" yaml:"stdout,omitempty"`
	Stderr     Path   `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	ExitCode   int    `json:"exitCode" yaml:"exitCode"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	Patterns   Path   `json:"patterns,omitempty" yaml:"patterns,omitempty"`
}

// Manifest lists the replays of a batch reconciliation.
type Manifest struct {
	Runs []ManifestRun `json:"runs" yaml:"runs"`
}
