package domain

import (
	"regexp"
	"strings"
)

const (
	patternOpen  = "#!/"
	patternClose = "/!#"
)

var patternVariable = regexp.MustCompile(`%\{[A-Z][A-Z_0-9]*\}`)

// PatternMatcher compares expected and actual output lines where the expected
// line may embed %{NAME} variables or raw #!/regex/!# segments.
type PatternMatcher struct {
	vars map[string]string
}

// NewPatternMatcher builds a matcher from NAME -> regex definitions.
func NewPatternMatcher(patterns map[string]string) *PatternMatcher {
	vars := make(map[string]string, len(patterns))
	for name, expr := range patterns {
		vars[name] = patternOpen + expr + patternClose
	}

	return &PatternMatcher{vars: vars}
}

// HasDiff reports whether actual does not satisfy expected.
func (p *PatternMatcher) HasDiff(expected, actual string) bool {
	expected = p.expandVariables(expected)
	offset := 0

	for _, part := range splitPatternParts(expected) {
		rest := actual[offset:]

		if !part.pattern {
			if !strings.HasPrefix(rest, part.text) {
				return true
			}

			offset += len(part.text)

			continue
		}

		re, err := regexp.Compile(part.text)
		if err != nil {
			return true
		}

		loc := re.FindStringIndex(rest)
		if loc == nil {
			return true
		}

		offset += loc[1]
	}

	return offset != len(actual)
}

// expandVariables replaces known %{NAME} variables; unknown ones stay literal.
func (p *PatternMatcher) expandVariables(line string) string {
	return patternVariable.ReplaceAllStringFunc(line, func(match string) string {
		if expr, ok := p.vars[match[2:len(match)-1]]; ok {
			return expr
		}

		return match
	})
}

type patternPart struct {
	text    string
	pattern bool
}

func splitPatternParts(line string) []patternPart {
	var parts []patternPart

	for _, chunk := range strings.Split(line, patternOpen) {
		pieces := strings.Split(chunk, patternClose)
		if len(pieces) == 1 {
			parts = append(parts, patternPart{text: pieces[0]})
			continue
		}

		for i, piece := range pieces {
			parts = append(parts, patternPart{text: piece, pattern: i%2 == 0})
		}
	}

	return parts
}
