package model

import "time"

// Report is the reconciliation report consumed by the UI layer.
type Report struct {
	Commands         []Command `json:"commands"`
	Success          bool      `json:"success"`
	ExitCode         int       `json:"exitCode"`
	ExitCodeSuccess  bool      `json:"exitCodeSuccess"`
	ErrorMessage     *string   `json:"errorMessage,omitempty"`
	Stderr           string    `json:"stderr"`
	Stdout           string    `json:"stdout"`
	Message          string    `json:"message"`
	TestReallyFailed bool      `json:"testReallyFailed"`
}

// StatusCounts tallies the statuses of every non-comment step in a report.
type StatusCounts struct {
	Matched int `json:"matched"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}

// Counts walks the command tree and tallies statuses.
func (r *Report) Counts() StatusCounts {
	var counts StatusCounts

	countStatuses(r.Commands, &counts)

	return counts
}

func countStatuses(commands []Command, counts *StatusCounts) {
	for i := range commands {
		if commands[i].Kind != KindComment {
			switch commands[i].Status {
			case StatusMatched:
				counts.Matched++
			case StatusFailed:
				counts.Failed++
			case StatusPending:
				counts.Pending++
			case StatusUnset:
			}
		}

		countStatuses(commands[i].NestedSteps, counts)
	}
}

// StoredReport is a report persisted by the report store together with its metadata.
type StoredReport struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"createdAt"`
	Origin    TranscriptOrigin `json:"origin"`
	Report    Report           `json:"report"`
}

// ReportSummary is one line of the report store index.
type ReportSummary struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	Success   bool         `json:"success"`
	ExitCode  int          `json:"exitCode"`
	Counts    StatusCounts `json:"counts"`
}

// Summary builds the index entry for a stored report.
func (s *StoredReport) Summary() ReportSummary {
	return ReportSummary{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		Success:   s.Report.Success,
		ExitCode:  s.Report.ExitCode,
		Counts:    s.Report.Counts(),
	}
}
