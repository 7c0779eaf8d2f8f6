package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "recon.dev/pkg/recon/internal/model"
)

// ErrEmptyCommands is returned when a commands file holds no document.
var ErrEmptyCommands = errors.New("commands file is empty")

// InputAdapter loads the data contracts produced by external collaborators:
// the expected command list, batch manifests and pattern definitions.
type InputAdapter interface {
	// LoadCommands reads either a flattened command list or a structured
	// test tree (JSON or YAML) and returns the flattened command list.
	LoadCommands(ctx context.Context, path m.Path) ([]m.Command, error)

	// LoadManifest reads a YAML batch manifest. Relative paths are resolved
	// against the manifest's directory.
	LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error)

	// LoadPatterns reads a patterns file of "NAME regex" lines.
	LoadPatterns(ctx context.Context, path m.Path) (map[string]string, error)
}

// LocalInputAdapter is the os-backed InputAdapter.
type LocalInputAdapter struct{}

// NewLocalInputAdapter constructs a LocalInputAdapter.
func NewLocalInputAdapter() *LocalInputAdapter {
	return &LocalInputAdapter{}
}

// LoadCommands implements InputAdapter.
func (a *LocalInputAdapter) LoadCommands(ctx context.Context, path m.Path) ([]m.Command, error) {
	data, err := readInput(ctx, path)
	if err != nil {
		slog.Error("Failed to read commands file", "path", path, "error", err)
		return nil, fmt.Errorf("read commands file: %w", err)
	}

	var commands []m.Command

	if strings.EqualFold(filepath.Ext(string(path)), ".json") {
		commands, err = decodeJSONCommands(data)
	} else {
		commands, err = decodeYAMLCommands(data)
	}

	if err != nil {
		slog.Error("Failed to decode commands file", "path", path, "error", err)
		return nil, fmt.Errorf("decode commands file %s: %w", path, err)
	}

	if err := normalizeKinds(commands); err != nil {
		return nil, fmt.Errorf("validate commands file %s: %w", path, err)
	}

	return commands, nil
}

func decodeJSONCommands(data []byte) ([]m.Command, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyCommands
	}

	if trimmed[0] == '[' {
		var commands []m.Command
		if err := json.Unmarshal(trimmed, &commands); err != nil {
			return nil, err
		}

		return commands, nil
	}

	var structure m.TestStructure
	if err := json.Unmarshal(trimmed, &structure); err != nil {
		return nil, err
	}

	return FlattenStructure(structure), nil
}

func decodeYAMLCommands(data []byte) ([]m.Command, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	if len(document.Content) == 0 {
		return nil, ErrEmptyCommands
	}

	root := document.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		var commands []m.Command
		if err := root.Decode(&commands); err != nil {
			return nil, err
		}

		return commands, nil
	case yaml.MappingNode:
		var structure m.TestStructure
		if err := root.Decode(&structure); err != nil {
			return nil, err
		}

		return FlattenStructure(structure), nil
	case yaml.DocumentNode, yaml.ScalarNode, yaml.AliasNode:
	}

	return nil, fmt.Errorf("line %d: expected a command list or a test structure", root.Line)
}

// normalizeKinds defaults an empty kind to command and rejects unknown kinds.
func normalizeKinds(commands []m.Command) error {
	for i := range commands {
		switch commands[i].Kind {
		case "":
			commands[i].Kind = m.KindCommand
		case m.KindCommand, m.KindBlock, m.KindComment:
		default:
			return fmt.Errorf("step %d (%q): unknown kind %q", i, commands[i].Text, commands[i].Kind)
		}

		if err := normalizeKinds(commands[i].NestedSteps); err != nil {
			return err
		}
	}

	return nil
}

// FlattenStructure converts the structured test tree into the command list the
// reconciliation engine consumes. An input step takes the content of the
// output step right after it as its expected output; blocks become nested-tree
// blocks; duration steps and orphan outputs are dropped.
func FlattenStructure(structure m.TestStructure) []m.Command {
	return flattenSteps(structure.Steps)
}

func flattenSteps(steps []m.TestStep) []m.Command {
	commands := make([]m.Command, 0, len(steps))

	for i := 0; i < len(steps); i++ {
		step := steps[i]

		switch step.Type {
		case m.StepInput:
			cmd := m.Command{Text: strings.TrimSpace(stepContent(step)), Kind: m.KindCommand}

			if i+1 < len(steps) && steps[i+1].Type == m.StepOutput {
				cmd.ExpectedOutput = m.Ptr(strings.TrimSpace(stepContent(steps[i+1])))
				i++
			}

			commands = append(commands, cmd)
		case m.StepComment:
			commands = append(commands, m.Command{Text: strings.TrimSpace(stepContent(step)), Kind: m.KindComment})
		case m.StepBlock:
			name := ""
			if len(step.Args) > 0 {
				name = step.Args[0]
			}

			commands = append(commands, m.Command{
				Text:          name,
				Kind:          m.KindBlock,
				BlockSourceID: name,
				NestedSteps:   flattenSteps(step.Steps),
			})
		case m.StepOutput, m.StepDuration:
		}
	}

	return commands
}

func stepContent(step m.TestStep) string {
	if step.Content == nil {
		return ""
	}

	return *step.Content
}

// LoadManifest implements InputAdapter.
func (a *LocalInputAdapter) LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error) {
	data, err := readInput(ctx, path)
	if err != nil {
		slog.Error("Failed to read manifest", "path", path, "error", err)
		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		slog.Error("Failed to decode manifest", "path", path, "error", err)
		return m.Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	base := filepath.Dir(string(path))

	for i := range manifest.Runs {
		run := &manifest.Runs[i]
		if run.Commands == "" {
			return m.Manifest{}, fmt.Errorf("manifest run %d (%q): commands path is required", i, run.Name)
		}

		run.Commands = resolveRelative(base, run.Commands)
		run.Transcript = resolveRelative(base, run.Transcript)
		run.Stdout = resolveRelative(base, run.Stdout)
		run.Stderr = resolveRelative(base, run.Stderr)
		run.Patterns = resolveRelative(base, run.Patterns)
	}

	return manifest, nil
}

func resolveRelative(base string, path m.Path) m.Path {
	if path == "" || filepath.IsAbs(string(path)) {
		return path
	}

	return m.Path(filepath.Join(base, string(path)))
}

// LoadPatterns implements InputAdapter. Lines that do not split into exactly
// a name and an expression are ignored.
func (a *LocalInputAdapter) LoadPatterns(ctx context.Context, path m.Path) (map[string]string, error) {
	data, err := readInput(ctx, path)
	if err != nil {
		slog.Error("Failed to read patterns file", "path", path, "error", err)
		return nil, fmt.Errorf("read patterns file: %w", err)
	}

	patterns := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 {
			patterns[fields[0]] = fields[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns file %s: %w", path, err)
	}

	return patterns, nil
}

func readInput(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - paths come from the operator's own command line
	return os.ReadFile(string(path))
}
