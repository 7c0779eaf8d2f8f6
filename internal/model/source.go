package model

// Path represents a file system path.
type Path string

// TranscriptOrigin identifies where the parsed transcript sections came from.
type TranscriptOrigin string

const (
	// OriginNone means neither source produced a valid section.
	OriginNone TranscriptOrigin = "none"
	// OriginPrimary is the companion result (.rep) file written by the replay.
	OriginPrimary TranscriptOrigin = "primary"
	// OriginSecondary is the captured stdout of the replay process.
	OriginSecondary TranscriptOrigin = "secondary"
)

// Section is one (command, output) pair parsed out of a transcript.
type Section struct {
	Command string `json:"command"`
	Output  string `json:"output"`
	Raw     string `json:"raw"`
}
