package domain

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "recon.dev/pkg/recon/internal/model"
)

type stubFS struct {
	files map[m.Path]string
	err   error
}

func (s stubFS) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	content, ok := s.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return []byte(content), nil
}

func (s stubFS) FileInfo(_ context.Context, _ m.Path) (os.FileInfo, error) {
	return nil, os.ErrNotExist
}

func (s stubFS) FindPatternsFile(_ context.Context, _ m.Path) (m.Path, error) {
	return "", nil
}

func (s stubFS) JoinPath(_ context.Context, elem ...string) m.Path {
	if len(elem) == 0 {
		return ""
	}

	return m.Path(elem[len(elem)-1])
}

func section(command, output string) string {
	return InputMarker + "\n" + command + "\n" + OutputMarker + "\n" + output + "\n"
}

func TestParseTranscript(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []m.Section
	}{
		{
			name: "single section",
			text: section("ls", "file.txt"),
			expected: []m.Section{
				{Command: "ls", Output: "file.txt", Raw: "\nls\n" + OutputMarker + "\nfile.txt\n"},
			},
		},
		{
			name: "preamble is discarded",
			text: "banner text\n" + section("pwd", "/root"),
			expected: []m.Section{
				{Command: "pwd", Output: "/root", Raw: "\npwd\n" + OutputMarker + "\n/root\n"},
			},
		},
		{
			name: "segment without output marker is skipped",
			text: InputMarker + "\nbroken\n" + section("echo ok", "ok"),
			expected: []m.Section{
				{Command: "echo ok", Output: "ok", Raw: "\necho ok\n" + OutputMarker + "\nok\n"},
			},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []m.Section{},
		},
		{
			name:     "no delimiters",
			text:     "plain output\nwith lines",
			expected: []m.Section{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTranscript(tt.text))
		})
	}
}

func TestParseTranscript_KeepsOrder(t *testing.T) {
	sections := ParseTranscript(section("first", "1") + section("second", "2") + section("third", "3"))

	require.Len(t, sections, 3)
	assert.Equal(t, "first", sections[0].Command)
	assert.Equal(t, "second", sections[1].Command)
	assert.Equal(t, "third", sections[2].Command)
}

func TestActualOutput_StopsAtTrailingMarker(t *testing.T) {
	text := section("ls", "file.txt\n––– duration: 12.5ms (3.2%) –––")
	sections := ParseTranscript(text)
	require.Len(t, sections, 1)

	assert.Equal(t, "file.txt", actualOutput(sections[0]))
}

func TestActualOutput_NoMarker(t *testing.T) {
	assert.Equal(t, "a\nb", actualOutput(m.Section{Output: "  a\nb \n"}))
}

func TestLoadSections(t *testing.T) {
	const primary = m.Path("test.rep")

	stdout := section("ls", "from stdout")

	tests := []struct {
		name           string
		fs             stubFS
		primary        m.Path
		stdout         string
		expectedOrigin m.TranscriptOrigin
		expectedOutput string
	}{
		{
			name:           "primary file wins",
			fs:             stubFS{files: map[m.Path]string{primary: section("ls", "from file")}},
			primary:        primary,
			stdout:         stdout,
			expectedOrigin: m.OriginPrimary,
			expectedOutput: "from file",
		},
		{
			name:           "missing primary falls back to stdout",
			fs:             stubFS{files: map[m.Path]string{}},
			primary:        primary,
			stdout:         stdout,
			expectedOrigin: m.OriginSecondary,
			expectedOutput: "from stdout",
		},
		{
			name:           "unreadable primary falls back to stdout",
			fs:             stubFS{err: errors.New("permission denied")},
			primary:        primary,
			stdout:         stdout,
			expectedOrigin: m.OriginSecondary,
			expectedOutput: "from stdout",
		},
		{
			name:           "blank primary falls back to stdout",
			fs:             stubFS{files: map[m.Path]string{primary: "  \n\t"}},
			primary:        primary,
			stdout:         stdout,
			expectedOrigin: m.OriginSecondary,
			expectedOutput: "from stdout",
		},
		{
			name:           "malformed primary falls back to stdout",
			fs:             stubFS{files: map[m.Path]string{primary: "no sections here"}},
			primary:        primary,
			stdout:         stdout,
			expectedOrigin: m.OriginSecondary,
			expectedOutput: "from stdout",
		},
		{
			name:           "no primary path uses stdout",
			fs:             stubFS{},
			stdout:         stdout,
			expectedOrigin: m.OriginSecondary,
			expectedOutput: "from stdout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, origin := LoadSections(context.Background(), tt.fs, tt.primary, tt.stdout)

			assert.Equal(t, tt.expectedOrigin, origin)
			require.Len(t, sections, 1)
			assert.Equal(t, tt.expectedOutput, sections[0].Output)
		})
	}
}

func TestLoadSections_FallbackMatchesDirectParse(t *testing.T) {
	stdout := section("ls", "file.txt")

	sections, origin := LoadSections(context.Background(), stubFS{}, "missing.rep", stdout)

	assert.Equal(t, m.OriginSecondary, origin)
	assert.Equal(t, ParseTranscript(stdout), sections)
}

func TestLoadSections_NothingAvailable(t *testing.T) {
	sections, origin := LoadSections(context.Background(), stubFS{}, "missing.rep", "")

	assert.Equal(t, m.OriginNone, origin)
	assert.Empty(t, sections)
}
