package dto

import (
	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// DashboardResponse aggregates the reporting screen numbers.
type DashboardResponse struct {
	TotalCandidates int                            `json:"total_candidates"`
	ByStatus        map[domain.CandidateStatus]int `json:"by_status"`
	Leaves          LeaveTotalsResponse            `json:"leaves"`
	Jobs            []JobReportResponse            `json:"jobs"`
}

// LeaveTotalsResponse carries leave counts.
type LeaveTotalsResponse struct {
	Total    int                        `json:"total"`
	ByStatus map[domain.LeaveStatus]int `json:"by_status"`
}

// JobReportResponse carries per-job funnel metrics.
type JobReportResponse struct {
	JobID           string  `json:"job_id"`
	Title           string  `json:"title"`
	Status          string  `json:"status"`
	TotalCandidates int     `json:"total_candidates"`
	ActivePipeline  int     `json:"active_pipeline"`
	Hired           int     `json:"hired"`
	FillRatio       float64 `json:"fill_ratio"`
}
