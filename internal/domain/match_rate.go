package domain

import m "recon.dev/pkg/recon/internal/model"

// matchRate is the share of decided steps that matched across reports.
// Pending steps are left out of the denominator. No decided steps yields 1.
func matchRate(reports []m.StoredReport) float64 {
	matched := 0
	total := 0

	for i := range reports {
		counts := reports[i].Report.Counts()
		matched += counts.Matched
		total += counts.Matched + counts.Failed
	}

	if total == 0 {
		return 1.0
	}

	return float64(matched) / float64(total)
}
