package domain

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"recon.dev/pkg/recon/internal/adapter"
	m "recon.dev/pkg/recon/internal/model"
)

const (
	// InputMarker opens a section; the command echo follows it.
	InputMarker = "––– input –––"
	// OutputMarker separates the command echo from its output.
	OutputMarker = "––– output –––"
)

// outputBoundary finds the first statement marker (e.g. a duration line)
// trailing the real command output.
var outputBoundary = regexp.MustCompile(`–––\s.*?\s–––`)

// ParseTranscript splits transcript text into ordered sections. Text before the
// first input marker is discarded, as are segments without an output marker.
func ParseTranscript(text string) []m.Section {
	segments := strings.Split(text, InputMarker)
	sections := make([]m.Section, 0, len(segments)-1)

	for _, segment := range segments[1:] {
		parts := strings.Split(segment, OutputMarker)
		if len(parts) < 2 {
			continue
		}

		sections = append(sections, m.Section{
			Command: strings.TrimSpace(parts[0]),
			Output:  strings.TrimSpace(parts[1]),
			Raw:     segment,
		})
	}

	return sections
}

// actualOutput returns the section output cut at the first trailing marker.
func actualOutput(section m.Section) string {
	output := strings.TrimSpace(section.Output)

	loc := outputBoundary.FindStringIndex(output)
	if loc == nil {
		return output
	}

	return strings.TrimSpace(output[:loc[0]])
}

// LoadSections parses the primary transcript file and falls back to the
// captured stdout when the file is missing, blank or has no valid sections.
func LoadSections(ctx context.Context, fsAdapter adapter.SourceFSAdapter, primary m.Path, stdout string) ([]m.Section, m.TranscriptOrigin) {
	if primary != "" {
		content, err := fsAdapter.ReadFile(ctx, primary)

		switch {
		case err != nil:
			slog.Debug("primary transcript unreadable, using stdout", "path", primary, "error", err)
		case strings.TrimSpace(string(content)) == "":
			slog.Debug("primary transcript empty, using stdout", "path", primary)
		default:
			sections := ParseTranscript(string(content))
			if len(sections) > 0 {
				return sections, m.OriginPrimary
			}

			slog.Debug("primary transcript has no sections, using stdout", "path", primary)
		}
	}

	sections := ParseTranscript(stdout)
	if len(sections) == 0 {
		return sections, m.OriginNone
	}

	return sections, m.OriginSecondary
}
