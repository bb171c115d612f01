package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/visibility"
)

func strptr(s string) *string { return &s }

func orgFixture() *fakeUserRepo {
	return newFakeUserRepo(
		domain.User{ID: "admin", Designation: domain.DesignationAdmin, Active: true},
		domain.User{ID: "manager", Designation: domain.DesignationManager, Active: true},
		domain.User{ID: "mentor", Designation: domain.DesignationMentor, ReporterID: strptr("manager"), Active: true},
		domain.User{ID: "rec-1", Designation: domain.DesignationRecruiter, ReporterID: strptr("mentor"), Active: true},
		domain.User{ID: "rec-2", Designation: domain.DesignationRecruiter, ReporterID: strptr("manager"), Active: true},
		domain.User{ID: "rec-9", Designation: domain.DesignationRecruiter, Active: true},
	)
}

func candidateFixture(users *fakeUserRepo) *CandidateService {
	jobs := newFakeJobRepo(
		domain.Job{ID: "job-1", Title: "Backend Engineer", ClientID: "client-1", CreatedBy: "manager", Status: domain.JobStatusOpen, Stages: []string{"Screening", "Tech"}},
		domain.Job{ID: "job-2", Title: "Data Analyst", ClientID: "client-1", CreatedBy: "manager", Status: domain.JobStatusOpen, Stages: []string{"Screening"}, AssignedRecruiterIDs: []string{"rec-9"}},
	)
	clients := newFakeClientRepo(domain.Client{ID: "client-1", Name: "Acme", Active: true})
	candidates := newFakeCandidateRepo(
		domain.Candidate{ID: "c-1", JobID: "job-1", CreatedBy: "rec-1", Name: "Asha", Status: domain.CandidateStatusNew, Stage: "Screening"},
		domain.Candidate{ID: "c-2", JobID: "job-1", CreatedBy: "rec-2", Name: "Bilal", Status: domain.CandidateStatusNew, Stage: "Screening"},
		domain.Candidate{ID: "c-3", JobID: "job-2", CreatedBy: "rec-2", Name: "Chen", Status: domain.CandidateStatusShortlisted, Stage: "Screening"},
	)
	return NewCandidateService(CandidateDependencies{
		CandidateRepo: candidates,
		JobRepo:       jobs,
		ClientRepo:    clients,
		Directory:     testDirectory(users),
	})
}

func viewerFrom(t *testing.T, users *fakeUserRepo, id string) *domain.User {
	t.Helper()
	user, err := users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return user
}

func TestListCandidatesMentorScope(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	got, err := svc.ListCandidates(context.Background(), viewerFrom(t, users, "mentor"), visibility.CandidateCriteria{})
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, cand := range got {
		ids = append(ids, cand.ID)
	}
	require.ElementsMatch(t, []string{"c-1"}, ids)
}

func TestListCandidatesManagerExcludesDirectRecruiter(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	got, err := svc.ListCandidates(context.Background(), viewerFrom(t, users, "manager"), visibility.CandidateCriteria{})
	require.NoError(t, err)

	for _, cand := range got {
		require.NotEqual(t, "rec-2", cand.CreatedBy, "recruiters reporting straight to a manager stay out of scope")
	}
}

func TestListCandidatesAssignmentGrantsAccess(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	got, err := svc.ListCandidates(context.Background(), viewerFrom(t, users, "rec-9"), visibility.CandidateCriteria{})
	require.NoError(t, err)

	require.Len(t, got, 1)
	require.Equal(t, "c-3", got[0].ID)
	require.Equal(t, "rec-2", got[0].CreatedBy)
}

func TestListCandidatesSearchFilter(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	got, err := svc.ListCandidates(context.Background(), viewerFrom(t, users, "admin"), visibility.CandidateCriteria{Search: "ash"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	require.Equal(t, "c-1", got[0].ID)
}

func TestListCandidatesStatusNarrowsRepositoryFetch(t *testing.T) {
	users := orgFixture()
	candidates := newFakeCandidateRepo(
		domain.Candidate{ID: "c-1", JobID: "job-1", CreatedBy: "rec-1", Name: "Asha", Status: domain.CandidateStatusNew},
		domain.Candidate{ID: "c-2", JobID: "job-1", CreatedBy: "rec-1", Name: "Bilal", Status: domain.CandidateStatusShortlisted},
	)
	svc := NewCandidateService(CandidateDependencies{
		CandidateRepo: candidates,
		JobRepo:       newFakeJobRepo(domain.Job{ID: "job-1", Title: "Backend Engineer", ClientID: "client-1", CreatedBy: "manager", Status: domain.JobStatusOpen}),
		ClientRepo:    newFakeClientRepo(),
		Directory:     testDirectory(users),
	})

	got, err := svc.ListCandidates(context.Background(), viewerFrom(t, users, "admin"), visibility.CandidateCriteria{Status: "shortlisted"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "c-2", got[0].ID)
	require.NotNil(t, candidates.lastFilter.Status)
	require.Equal(t, domain.CandidateStatusShortlisted, *candidates.lastFilter.Status)

	_, err = svc.ListCandidates(context.Background(), viewerFrom(t, users, "admin"), visibility.CandidateCriteria{Status: "all"})
	require.NoError(t, err)
	require.Nil(t, candidates.lastFilter.Status)
}

func TestCreateCandidateRejectsClosedJob(t *testing.T) {
	users := orgFixture()
	jobs := newFakeJobRepo(domain.Job{ID: "job-closed", Title: "Old Role", ClientID: "client-1", CreatedBy: "manager", Status: domain.JobStatusClosed})
	svc := NewCandidateService(CandidateDependencies{
		CandidateRepo: newFakeCandidateRepo(),
		JobRepo:       jobs,
		ClientRepo:    newFakeClientRepo(),
		Directory:     testDirectory(users),
	})

	_, err := svc.CreateCandidate(context.Background(), viewerFrom(t, users, "rec-1"), CandidateCreateInput{
		JobID: "job-closed",
		Name:  "Dana",
	})
	require.Error(t, err)
}

func TestCreateCandidateStartsAtFirstStage(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	cand, err := svc.CreateCandidate(context.Background(), viewerFrom(t, users, "rec-1"), CandidateCreateInput{
		JobID: "job-1",
		Name:  "Dana",
	})
	require.NoError(t, err)
	require.Equal(t, domain.CandidateStatusNew, cand.Status)
	require.Equal(t, "Screening", cand.Stage)
}

func TestUpdateStatusRejectsSkippedFunnelStep(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	_, err := svc.UpdateStatus(context.Background(), viewerFrom(t, users, "rec-1"), "c-1", domain.CandidateStatusSelected, "")
	require.Error(t, err)
}

func TestUpdateStatusOutOfScopeForbidden(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	// rec-1 owns c-1 only; c-2 belongs to rec-2.
	_, err := svc.UpdateStatus(context.Background(), viewerFrom(t, users, "rec-1"), "c-2", domain.CandidateStatusShortlisted, "")
	require.Error(t, err)
}

func TestUpdateStatusAdvancesFunnel(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	cand, err := svc.UpdateStatus(context.Background(), viewerFrom(t, users, "rec-1"), "c-1", domain.CandidateStatusShortlisted, "Tech")
	require.NoError(t, err)
	require.Equal(t, domain.CandidateStatusShortlisted, cand.Status)
	require.Equal(t, "Tech", cand.Stage)
}

func TestStageOptionsPassThroughTitle(t *testing.T) {
	users := orgFixture()
	svc := candidateFixture(users)

	stages, err := svc.StageOptions(context.Background(), "all")
	require.NoError(t, err)
	require.Empty(t, stages)

	stages, err = svc.StageOptions(context.Background(), "Backend Engineer")
	require.NoError(t, err)
	require.Equal(t, []string{"Screening", "Tech"}, stages)
}
