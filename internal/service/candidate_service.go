package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/events"
	"github.com/JTSTBP/ATS-sub003/internal/repository"
	"github.com/JTSTBP/ATS-sub003/internal/visibility"
	apperrors "github.com/JTSTBP/ATS-sub003/pkg/errorutil"
)

// CandidateService coordinates candidate workflows, including the scoped
// listing pipeline used by the candidate screens.
type CandidateService struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	clients    repository.ClientRepository
	directory  *DirectoryService
	dispatcher events.Dispatcher
}

// CandidateDependencies bundles repositories for the candidate service.
type CandidateDependencies struct {
	CandidateRepo repository.CandidateRepository
	JobRepo       repository.JobRepository
	ClientRepo    repository.ClientRepository
	Directory     *DirectoryService
	Dispatcher    events.Dispatcher
}

// CandidateCreateInput describes candidate intake payload.
type CandidateCreateInput struct {
	JobID  string
	Name   string
	Email  string
	Phone  string
	Skills []string
	Fields map[string]string
}

// NewCandidateService constructs the service.
func NewCandidateService(deps CandidateDependencies) *CandidateService {
	return &CandidateService{
		candidates: deps.CandidateRepo,
		jobs:       deps.JobRepo,
		clients:    deps.ClientRepo,
		directory:  deps.Directory,
		dispatcher: deps.Dispatcher,
	}
}

// CreateCandidate registers a sourced candidate against a job.
func (s *CandidateService) CreateCandidate(ctx context.Context, actor *domain.User, input CandidateCreateInput) (*domain.Candidate, error) {
	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": input.JobID})
		}
		return nil, apperrors.MapError(err)
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperrors.NewConflict("job not open", map[string]any{"job_id": job.ID, "status": job.Status})
	}

	stage := ""
	if len(job.Stages) > 0 {
		stage = job.Stages[0]
	}
	cand := &domain.Candidate{
		JobID:     job.ID,
		CreatedBy: actor.ID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     strings.TrimSpace(input.Phone),
		Skills:    input.Skills,
		Status:    domain.CandidateStatusNew,
		Stage:     stage,
		Fields:    input.Fields,
	}
	if cand.Fields == nil {
		cand.Fields = map[string]string{}
	}
	if err := s.candidates.Create(ctx, cand); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventCandidateCreated,
		ActorID: actor.ID,
		Payload: events.CandidateCreatedPayload{
			CandidateID: cand.ID,
			JobID:       cand.JobID,
			Name:        cand.Name,
		},
	})
	return cand, nil
}

// ListCandidates runs the full visibility pipeline: resolve the viewer's
// owner scope from the org graph, expand by job assignment, then apply the
// user-entered criteria. An active status criterion narrows the fetch at
// the repository; the remaining criteria are applied in memory.
func (s *CandidateService) ListCandidates(ctx context.Context, viewer *domain.User, criteria visibility.CandidateCriteria) ([]domain.Candidate, error) {
	users, jobs, clients, err := s.loadContext(ctx)
	if err != nil {
		return nil, err
	}
	filter := repository.CandidateFilter{}
	if trimmed := strings.TrimSpace(criteria.Status); trimmed != "" && !strings.EqualFold(trimmed, "all") {
		status := domain.CandidateStatus(strings.ToUpper(trimmed))
		filter.Status = &status
	}
	candidates, err := s.candidates.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	ownerScope := visibility.ResolveScope(viewer, users)
	jobScope := visibility.ExpandByAssignment(viewer, jobs)
	idx := visibility.NewJobIndex(jobs, clients)
	return visibility.FilterCandidates(candidates, ownerScope, jobScope, idx, criteria), nil
}

// StageOptions returns the pipeline stages of the job with the given title,
// feeding the dependent stage filter. An empty or "all" title yields no
// options, matching the disabled stage dropdown.
func (s *CandidateService) StageOptions(ctx context.Context, jobTitle string) ([]string, error) {
	if trimmed := strings.TrimSpace(jobTitle); trimmed == "" || strings.EqualFold(trimmed, "all") {
		return nil, nil
	}
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	idx := visibility.NewJobIndex(jobs, nil)
	return idx.StagesForTitle(jobTitle), nil
}

// UpdateStatus moves a candidate through the funnel. Stage is updated
// alongside when provided.
func (s *CandidateService) UpdateStatus(ctx context.Context, actor *domain.User, candidateID string, newStatus domain.CandidateStatus, stage string) (*domain.Candidate, error) {
	cand, err := s.getAccessible(ctx, actor, candidateID)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(cand.Status, newStatus) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": cand.Status,
			"to":   newStatus,
		})
	}
	oldStatus := cand.Status
	cand.Status = newStatus
	if stage != "" {
		cand.Stage = stage
	}
	if err := s.candidates.Update(ctx, cand); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventCandidateStatusChanged,
		ActorID: actor.ID,
		Payload: events.CandidateStatusChangedPayload{
			CandidateID: cand.ID,
			OldStatus:   oldStatus,
			NewStatus:   newStatus,
			Stage:       cand.Stage,
		},
	})
	return cand, nil
}

// GetCandidate fetches a candidate ensuring the viewer may see it.
func (s *CandidateService) GetCandidate(ctx context.Context, viewer *domain.User, candidateID string) (*domain.Candidate, error) {
	return s.getAccessible(ctx, viewer, candidateID)
}

func (s *CandidateService) getAccessible(ctx context.Context, viewer *domain.User, candidateID string) (*domain.Candidate, error) {
	cand, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": candidateID})
		}
		return nil, apperrors.MapError(err)
	}
	users, jobs, clients, err := s.loadContext(ctx)
	if err != nil {
		return nil, err
	}
	ownerScope := visibility.ResolveScope(viewer, users)
	jobScope := visibility.ExpandByAssignment(viewer, jobs)
	idx := visibility.NewJobIndex(jobs, clients)
	visible := visibility.FilterCandidates([]domain.Candidate{*cand}, ownerScope, jobScope, idx, visibility.CandidateCriteria{})
	if len(visible) == 0 {
		return nil, apperrors.NewForbidden("access denied")
	}
	return cand, nil
}

func (s *CandidateService) loadContext(ctx context.Context) ([]domain.User, []domain.Job, []domain.Client, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, nil, nil, apperrors.MapError(err)
	}
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, apperrors.MapError(err)
	}
	clients, err := s.clients.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, apperrors.MapError(err)
	}
	return users, jobs, clients, nil
}

func (s *CandidateService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

var allowedTransitions = map[domain.CandidateStatus][]domain.CandidateStatus{
	domain.CandidateStatusNew:         {domain.CandidateStatusShortlisted, domain.CandidateStatusRejected},
	domain.CandidateStatusShortlisted: {domain.CandidateStatusInterviewed, domain.CandidateStatusRejected},
	domain.CandidateStatusInterviewed: {domain.CandidateStatusSelected, domain.CandidateStatusRejected},
	domain.CandidateStatusSelected:    {domain.CandidateStatusJoined, domain.CandidateStatusRejected},
	domain.CandidateStatusJoined:      {},
	domain.CandidateStatusRejected:    {},
}

func isValidTransition(current, next domain.CandidateStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}
