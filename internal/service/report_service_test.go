package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

func reportFixture(users *fakeUserRepo) *ReportService {
	jobs := newFakeJobRepo(
		domain.Job{ID: "job-1", Title: "Backend Engineer", ClientID: "client-1", CreatedBy: "manager", Status: domain.JobStatusOpen, Openings: 2},
	)
	clients := newFakeClientRepo(domain.Client{ID: "client-1", Name: "Acme", Active: true})
	candidates := newFakeCandidateRepo(
		domain.Candidate{ID: "c-1", JobID: "job-1", CreatedBy: "rec-1", Status: domain.CandidateStatusNew},
		domain.Candidate{ID: "c-2", JobID: "job-1", CreatedBy: "rec-1", Status: domain.CandidateStatusInterviewed},
		domain.Candidate{ID: "c-3", JobID: "job-1", CreatedBy: "rec-1", Status: domain.CandidateStatusJoined},
		domain.Candidate{ID: "c-4", JobID: "job-1", CreatedBy: "rec-1", Status: domain.CandidateStatusRejected},
	)
	leaves := newFakeLeaveRepo(
		domain.LeaveRequest{ID: "l-1", UserID: "rec-1", Status: domain.LeaveStatusPending},
	)
	return NewReportService(candidates, jobs, clients, leaves, testDirectory(users))
}

func TestBuildDashboardAdmin(t *testing.T) {
	users := orgFixture()
	svc := reportFixture(users)

	dash, err := svc.BuildDashboard(context.Background(), viewerFrom(t, users, "admin"))
	require.NoError(t, err)

	require.Equal(t, 4, dash.Candidates.Total)
	require.Equal(t, 1, dash.Candidates.ByStatus[domain.CandidateStatusNew])
	require.Equal(t, 1, dash.Leaves.Total)

	require.Len(t, dash.Jobs, 1)
	funnel := dash.Jobs[0]
	require.Equal(t, 4, funnel.Funnel.TotalCandidates)
	require.Equal(t, 2, funnel.Funnel.ActivePipeline)
	require.Equal(t, 1, funnel.Funnel.Hired)
	require.InDelta(t, 0.5, funnel.FillRatio, 1e-9)
}

func TestBuildDashboardOutOfScopeViewerEmpty(t *testing.T) {
	users := orgFixture()
	svc := reportFixture(users)

	dash, err := svc.BuildDashboard(context.Background(), viewerFrom(t, users, "rec-2"))
	require.NoError(t, err)

	require.Equal(t, 0, dash.Candidates.Total)
	require.Empty(t, dash.Jobs)
}
