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

// JobService coordinates job requisition workflows.
type JobService struct {
	jobs       repository.JobRepository
	clients    repository.ClientRepository
	users      repository.UserRepository
	directory  *DirectoryService
	dispatcher events.Dispatcher
}

// JobDependencies bundles repositories for the job service.
type JobDependencies struct {
	JobRepo    repository.JobRepository
	ClientRepo repository.ClientRepository
	UserRepo   repository.UserRepository
	Directory  *DirectoryService
	Dispatcher events.Dispatcher
}

// JobCreateInput describes job creation payload.
type JobCreateInput struct {
	Title    string
	ClientID string
	Stages   []string
	Openings int
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	return &JobService{
		jobs:       deps.JobRepo,
		clients:    deps.ClientRepo,
		users:      deps.UserRepo,
		directory:  deps.Directory,
		dispatcher: deps.Dispatcher,
	}
}

var defaultStages = []string{"Screening", "L1 Interview", "L2 Interview", "HR Round"}

// CreateJob opens a requisition for a client.
func (s *JobService) CreateJob(ctx context.Context, actor *domain.User, input JobCreateInput) (*domain.Job, error) {
	client, err := s.clients.GetByID(ctx, input.ClientID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("client", map[string]any{"client_id": input.ClientID})
		}
		return nil, apperrors.MapError(err)
	}
	if !client.Active {
		return nil, apperrors.NewConflict("client inactive", map[string]any{"client_id": client.ID})
	}

	stages := input.Stages
	if len(stages) == 0 {
		stages = defaultStages
	}
	openings := input.Openings
	if openings <= 0 {
		openings = 1
	}

	job := &domain.Job{
		Title:     strings.TrimSpace(input.Title),
		ClientID:  client.ID,
		CreatedBy: actor.ID,
		Status:    domain.JobStatusOpen,
		Stages:    stages,
		Openings:  openings,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventJobCreated,
		ActorID: actor.ID,
		Payload: events.JobCreatedPayload{
			JobID:    job.ID,
			Title:    job.Title,
			ClientID: job.ClientID,
			Status:   job.Status,
		},
	})
	return job, nil
}

// UpdateStatus moves a job between OPEN, ON_HOLD and CLOSED.
func (s *JobService) UpdateStatus(ctx context.Context, actor *domain.User, jobID string, status domain.JobStatus) (*domain.Job, error) {
	job, err := s.getAccessible(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	switch status {
	case domain.JobStatusOpen, domain.JobStatusOnHold, domain.JobStatusClosed:
	default:
		return nil, apperrors.NewValidationError("unknown job status", map[string]any{"status": status})
	}
	job.Status = status
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.MapError(err)
	}
	return job, nil
}

// Assign sets the lead recruiter and team for a job. Either grant is
// independently sufficient for the assignees to see the job's candidates.
func (s *JobService) Assign(ctx context.Context, actor *domain.User, jobID string, leadID *string, recruiterIDs []string) (*domain.Job, error) {
	job, err := s.getAccessible(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	for _, id := range append(append([]string{}, recruiterIDs...), derefOrNothing(leadID)...) {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewValidationError("recruiter not found", map[string]any{"user_id": id})
			}
			return nil, apperrors.MapError(err)
		}
	}
	job.LeadRecruiterID = leadID
	job.AssignedRecruiterIDs = recruiterIDs
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventJobAssigned,
		ActorID: actor.ID,
		Payload: events.JobAssignedPayload{
			JobID:                job.ID,
			LeadRecruiterID:      job.LeadRecruiterID,
			AssignedRecruiterIDs: job.AssignedRecruiterIDs,
		},
	})
	return job, nil
}

// CreateClient registers a hiring client.
func (s *JobService) CreateClient(ctx context.Context, name, contactEmail string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("client name required", nil)
	}
	client := &domain.Client{
		Name:         name,
		ContactEmail: strings.ToLower(strings.TrimSpace(contactEmail)),
		Active:       true,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, apperrors.MapError(err)
	}
	return client, nil
}

// ListClients returns all hiring clients.
func (s *JobService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return clients, nil
}

// ListJobs returns the jobs visible to the viewer: jobs created by anyone
// in the viewer's owner scope plus jobs the viewer is assigned to. A
// non-empty status value (other than "all") narrows the fetch at the
// repository.
func (s *JobService) ListJobs(ctx context.Context, viewer *domain.User, status string) ([]domain.Job, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	filter := repository.JobFilter{}
	if trimmed := strings.TrimSpace(status); trimmed != "" && !strings.EqualFold(trimmed, "all") {
		jobStatus := domain.JobStatus(strings.ToUpper(trimmed))
		switch jobStatus {
		case domain.JobStatusOpen, domain.JobStatusOnHold, domain.JobStatusClosed:
		default:
			return nil, apperrors.NewValidationError("unknown job status", map[string]any{"status": status})
		}
		filter.Status = &jobStatus
	}
	jobs, err := s.jobs.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	ownerScope := visibility.ResolveScope(viewer, users)
	jobScope := visibility.ExpandByAssignment(viewer, jobs)

	result := make([]domain.Job, 0, len(jobs))
	for i := range jobs {
		if ownerScope.Contains(jobs[i].CreatedBy) || jobScope.Contains(jobs[i].ID) {
			result = append(result, jobs[i])
		}
	}
	return result, nil
}

// GetJob fetches a job ensuring the viewer can see it.
func (s *JobService) GetJob(ctx context.Context, viewer *domain.User, jobID string) (*domain.Job, error) {
	return s.getAccessible(ctx, viewer, jobID)
}

func (s *JobService) getAccessible(ctx context.Context, viewer *domain.User, jobID string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, apperrors.MapError(err)
	}
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ownerScope := visibility.ResolveScope(viewer, users)
	jobScope := visibility.ExpandByAssignment(viewer, []domain.Job{*job})
	if !ownerScope.Contains(job.CreatedBy) && !jobScope.Contains(job.ID) {
		return nil, apperrors.NewForbidden("access denied")
	}
	return job, nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
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

func derefOrNothing(id *string) []string {
	if id == nil || *id == "" {
		return nil
	}
	return []string{*id}
}
