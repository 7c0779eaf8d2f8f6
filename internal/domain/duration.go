package domain

import (
	"math"
	"regexp"
	"strconv"
)

var durationLine = regexp.MustCompile(`(?m)^––– duration: ([0-9\.]+)ms \(([0-9\.]+)%\) –––\r?$`)

// Duration is the timing recorded for a single section of a replay.
type Duration struct {
	Millis     int64
	Percentage float64
}

// ExtractDuration reads the duration line from a section's raw text.
func ExtractDuration(raw string) (Duration, bool) {
	caps := durationLine.FindStringSubmatch(raw)
	if caps == nil {
		return Duration{}, false
	}

	millis, err := strconv.ParseFloat(caps[1], 64)
	if err != nil {
		return Duration{}, false
	}

	percentage, err := strconv.ParseFloat(caps[2], 64)
	if err != nil {
		return Duration{}, false
	}

	return Duration{Millis: int64(math.Round(millis)), Percentage: percentage}, true
}
