package service

import (
	"context"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/repository"
	"github.com/JTSTBP/ATS-sub003/internal/visibility"
	apperrors "github.com/JTSTBP/ATS-sub003/pkg/errorutil"
)

// ReportService derives dashboard summaries from the viewer's visible
// records. Every report re-runs the full scope/filter pipeline; nothing is
// cached between requests.
type ReportService struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	clients    repository.ClientRepository
	leaves     repository.LeaveRepository
	directory  *DirectoryService
}

// JobReport pairs a job with its funnel metrics.
type JobReport struct {
	Job       domain.Job
	Funnel    visibility.JobFunnel
	FillRatio float64
}

// Dashboard aggregates the numbers shown on the reporting screen.
type Dashboard struct {
	Candidates visibility.Summary
	Leaves     visibility.LeaveTotals
	Jobs       []JobReport
}

// NewReportService constructs the service.
func NewReportService(candidates repository.CandidateRepository, jobs repository.JobRepository, clients repository.ClientRepository, leaves repository.LeaveRepository, directory *DirectoryService) *ReportService {
	return &ReportService{
		candidates: candidates,
		jobs:       jobs,
		clients:    clients,
		leaves:     leaves,
		directory:  directory,
	}
}

// BuildDashboard computes the viewer-scoped dashboard.
func (s *ReportService) BuildDashboard(ctx context.Context, viewer *domain.User) (*Dashboard, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	clients, err := s.clients.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	candidates, err := s.candidates.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	leaves, err := s.leaves.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	ownerScope := visibility.ResolveScope(viewer, users)
	jobScope := visibility.ExpandByAssignment(viewer, jobs)
	idx := visibility.NewJobIndex(jobs, clients)

	visibleCandidates := visibility.FilterCandidates(candidates, ownerScope, jobScope, idx, visibility.CandidateCriteria{})
	visibleLeaves := visibility.FilterLeaves(leaves, ownerScope, visibility.LeaveCriteria{})

	byJob := make(map[string][]domain.Candidate)
	for _, cand := range visibleCandidates {
		byJob[cand.JobID] = append(byJob[cand.JobID], cand)
	}

	jobReports := make([]JobReport, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		if !ownerScope.Contains(job.CreatedBy) && !jobScope.Contains(job.ID) {
			continue
		}
		funnel := visibility.JobMetrics(byJob[job.ID])
		jobReports = append(jobReports, JobReport{
			Job:       job,
			Funnel:    funnel,
			FillRatio: visibility.Ratio(funnel.Hired, job.Openings),
		})
	}

	return &Dashboard{
		Candidates: visibility.Aggregate(visibleCandidates),
		Leaves:     visibility.LeaveSummary(visibleLeaves),
		Jobs:       jobReports,
	}, nil
}
