package visibility

import (
	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// Summary holds funnel counts derived from a filtered candidate collection.
type Summary struct {
	Total    int
	ByStatus map[domain.CandidateStatus]int
}

// JobFunnel holds per-job derived metrics.
type JobFunnel struct {
	TotalCandidates int
	ActivePipeline  int
	Hired           int
}

// LeaveTotals holds per-status leave counts.
type LeaveTotals struct {
	Total    int
	ByStatus map[domain.LeaveStatus]int
}

// Aggregate reduces an already-filtered candidate collection to summary
// counts. It carries no visibility logic; callers filter first.
func Aggregate(candidates []domain.Candidate) Summary {
	summary := Summary{ByStatus: map[domain.CandidateStatus]int{}}
	for i := range candidates {
		summary.Total++
		summary.ByStatus[candidates[i].Status]++
	}
	return summary
}

// JobMetrics derives the funnel metrics shown on job cards. ActivePipeline
// counts candidates still progressing; Hired counts selected and joined.
func JobMetrics(candidates []domain.Candidate) JobFunnel {
	var funnel JobFunnel
	for i := range candidates {
		funnel.TotalCandidates++
		switch candidates[i].Status {
		case domain.CandidateStatusNew, domain.CandidateStatusShortlisted, domain.CandidateStatusInterviewed:
			funnel.ActivePipeline++
		case domain.CandidateStatusSelected, domain.CandidateStatusJoined:
			funnel.Hired++
		}
	}
	return funnel
}

// LeaveSummary reduces a filtered leave collection to per-status counts.
func LeaveSummary(leaves []domain.LeaveRequest) LeaveTotals {
	totals := LeaveTotals{ByStatus: map[domain.LeaveStatus]int{}}
	for i := range leaves {
		totals.Total++
		totals.ByStatus[leaves[i].Status]++
	}
	return totals
}

// Ratio returns part/total as a fraction, or 0 when total is 0. Dashboard
// percentage widths derive from this, so the zero guard matters.
func Ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
