package visibility

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

func testIndex() JobIndex {
	lead := "rec-9"
	jobs := []domain.Job{
		{ID: "job-1", Title: "Backend Engineer", ClientID: "client-1", Stages: []string{"Screening", "Tech Round", "HR Round"}},
		{ID: "job-2", Title: "Data Analyst", ClientID: "client-2", Stages: []string{"Screening", "Case Study"}, LeadRecruiterID: &lead},
	}
	clients := []domain.Client{
		{ID: "client-1", Name: "Acme Corp"},
		{ID: "client-2", Name: "Globex"},
	}
	return NewJobIndex(jobs, clients)
}

func testCandidates() []domain.Candidate {
	return []domain.Candidate{
		{ID: "c-1", JobID: "job-1", CreatedBy: "rec-1", Name: "Asha Rao", Email: "asha@example.com", Phone: "9000000001", Skills: []string{"React", "Node"}, Status: domain.CandidateStatusNew, Stage: "Screening"},
		{ID: "c-2", JobID: "job-1", CreatedBy: "rec-2", Name: "Vikram Shah", Email: "vikram@example.com", Phone: "9000000002", Skills: []string{"Go"}, Status: domain.CandidateStatusInterviewed, Stage: "Tech Round"},
		{ID: "c-3", JobID: "job-2", CreatedBy: "rec-2", Name: "Meera Iyer", Email: "meera@example.com", Phone: "9000000003", Skills: []string{"SQL"}, Status: domain.CandidateStatusSelected, Stage: "Case Study"},
	}
}

func TestFilterCandidatesVisibilityOnly(t *testing.T) {
	owners := Scope{"rec-1": {}}
	crit := CandidateCriteria{Status: "all", Client: "all", JobTitle: "all", Stage: "all"}
	out := FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), crit)
	require.Len(t, out, 1)
	require.Equal(t, "c-1", out[0].ID)
}

func TestFilterCandidatesAssignmentGrantsVisibility(t *testing.T) {
	// Viewer owns nothing, but is assigned to job-2: candidate c-3 created
	// by rec-2 must still be visible.
	owners := Scope{"rec-9": {}}
	jobs := JobScope{"job-2": {}}
	out := FilterCandidates(testCandidates(), owners, jobs, testIndex(), CandidateCriteria{})
	require.Len(t, out, 1)
	require.Equal(t, "c-3", out[0].ID)
}

func TestFilterCandidatesMissingReferencesExcluded(t *testing.T) {
	cands := []domain.Candidate{{ID: "orphan", Name: "No Refs"}}
	out := FilterCandidates(cands, Scope{"rec-1": {}}, JobScope{"job-1": {}}, testIndex(), CandidateCriteria{})
	require.Empty(t, out)
}

func TestFilterCandidatesStatusAndClient(t *testing.T) {
	owners := Scope{"rec-1": {}, "rec-2": {}}
	out := FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), CandidateCriteria{Status: "interviewed"})
	require.Len(t, out, 1)
	require.Equal(t, "c-2", out[0].ID)

	out = FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), CandidateCriteria{Client: "Globex"})
	require.Len(t, out, 1)
	require.Equal(t, "c-3", out[0].ID)
}

func TestFilterCandidatesStagePassThroughWithoutJobTitle(t *testing.T) {
	owners := Scope{"rec-1": {}, "rec-2": {}}
	// Stage set but job title "all": stage must not filter anything.
	out := FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), CandidateCriteria{JobTitle: "all", Stage: "Tech Round"})
	require.Len(t, out, 3)

	// With a job title selected the stage filter becomes effective.
	out = FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), CandidateCriteria{JobTitle: "Backend Engineer", Stage: "Tech Round"})
	require.Len(t, out, 1)
	require.Equal(t, "c-2", out[0].ID)
}

func TestFilterCandidatesSearchCaseInsensitiveSubstring(t *testing.T) {
	owners := Scope{"rec-1": {}, "rec-2": {}}
	out := FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), CandidateCriteria{Search: "reac"})
	require.Len(t, out, 1)
	require.Equal(t, "c-1", out[0].ID)

	// Job title is searchable too.
	out = FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), CandidateCriteria{Search: "data analyst"})
	require.Len(t, out, 1)
	require.Equal(t, "c-3", out[0].ID)

	// Empty search matches everything.
	out = FilterCandidates(testCandidates(), owners, JobScope{}, testIndex(), CandidateCriteria{Search: "   "})
	require.Len(t, out, 3)
}

func TestFilterLeavesScopeAndCriteria(t *testing.T) {
	leaves := []domain.LeaveRequest{
		{ID: "l-1", UserID: "rec-1", Status: domain.LeaveStatusPending, Category: "Casual", Reason: "Family function"},
		{ID: "l-2", UserID: "rec-2", Status: domain.LeaveStatusApproved, Category: "Sick", Reason: "Fever"},
		{ID: "l-3", UserID: "rec-1", Status: domain.LeaveStatusApproved, Category: "Sick", Reason: "Dental visit"},
		{ID: "l-4", UserID: "", Status: domain.LeaveStatusPending},
	}
	owners := Scope{"rec-1": {}}

	out := FilterLeaves(leaves, owners, LeaveCriteria{})
	require.Len(t, out, 2)

	out = FilterLeaves(leaves, owners, LeaveCriteria{Status: "approved"})
	require.Len(t, out, 1)
	require.Equal(t, "l-3", out[0].ID)

	out = FilterLeaves(leaves, owners, LeaveCriteria{Search: "DENTAL"})
	require.Len(t, out, 1)
	require.Equal(t, "l-3", out[0].ID)
}

func TestJobIndexStagesForTitle(t *testing.T) {
	idx := testIndex()
	require.Equal(t, []string{"Screening", "Case Study"}, idx.StagesForTitle("Data Analyst"))
	require.Nil(t, idx.StagesForTitle("Unknown Role"))
}
