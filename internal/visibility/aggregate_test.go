package visibility

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

func TestAggregateEmptyInput(t *testing.T) {
	summary := Aggregate(nil)
	require.Zero(t, summary.Total)
	require.Empty(t, summary.ByStatus)

	funnel := JobMetrics(nil)
	require.Zero(t, funnel.TotalCandidates)
	require.Zero(t, funnel.ActivePipeline)
	require.Zero(t, funnel.Hired)

	require.Zero(t, Ratio(funnel.Hired, funnel.TotalCandidates))
}

func TestAggregateCounts(t *testing.T) {
	cands := []domain.Candidate{
		{Status: domain.CandidateStatusNew},
		{Status: domain.CandidateStatusNew},
		{Status: domain.CandidateStatusInterviewed},
		{Status: domain.CandidateStatusJoined},
		{Status: domain.CandidateStatusRejected},
	}
	summary := Aggregate(cands)
	require.Equal(t, 5, summary.Total)
	require.Equal(t, 2, summary.ByStatus[domain.CandidateStatusNew])
	require.Equal(t, 1, summary.ByStatus[domain.CandidateStatusInterviewed])
	require.Equal(t, 1, summary.ByStatus[domain.CandidateStatusJoined])
	require.Equal(t, 1, summary.ByStatus[domain.CandidateStatusRejected])
}

func TestJobMetricsFunnelBuckets(t *testing.T) {
	cands := []domain.Candidate{
		{Status: domain.CandidateStatusNew},
		{Status: domain.CandidateStatusShortlisted},
		{Status: domain.CandidateStatusInterviewed},
		{Status: domain.CandidateStatusSelected},
		{Status: domain.CandidateStatusJoined},
		{Status: domain.CandidateStatusRejected},
	}
	funnel := JobMetrics(cands)
	require.Equal(t, 6, funnel.TotalCandidates)
	require.Equal(t, 3, funnel.ActivePipeline)
	require.Equal(t, 2, funnel.Hired)
	require.InDelta(t, 1.0/3.0, Ratio(funnel.Hired, funnel.TotalCandidates), 1e-9)
}

func TestLeaveSummary(t *testing.T) {
	leaves := []domain.LeaveRequest{
		{Status: domain.LeaveStatusPending},
		{Status: domain.LeaveStatusApproved},
		{Status: domain.LeaveStatusApproved},
	}
	totals := LeaveSummary(leaves)
	require.Equal(t, 3, totals.Total)
	require.Equal(t, 2, totals.ByStatus[domain.LeaveStatusApproved])
	require.Equal(t, 1, totals.ByStatus[domain.LeaveStatusPending])

	empty := LeaveSummary(nil)
	require.Zero(t, empty.Total)
}
