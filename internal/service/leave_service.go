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

// LeaveService coordinates leave request workflows. Listing and approval
// use the same canonical scope resolver as the candidate screens.
type LeaveService struct {
	leaves     repository.LeaveRepository
	directory  *DirectoryService
	dispatcher events.Dispatcher
}

// LeaveCreateInput describes a leave application payload.
type LeaveCreateInput struct {
	FromDate time.Time
	ToDate   time.Time
	Category string
	Reason   string
}

// NewLeaveService constructs the service.
func NewLeaveService(leaves repository.LeaveRepository, directory *DirectoryService, dispatcher events.Dispatcher) *LeaveService {
	return &LeaveService{leaves: leaves, directory: directory, dispatcher: dispatcher}
}

// RequestLeave files a leave application for the actor.
func (s *LeaveService) RequestLeave(ctx context.Context, actor *domain.User, input LeaveCreateInput) (*domain.LeaveRequest, error) {
	if input.ToDate.Before(input.FromDate) {
		return nil, apperrors.NewValidationError("to_date before from_date", nil)
	}
	leave := &domain.LeaveRequest{
		UserID:   actor.ID,
		Status:   domain.LeaveStatusPending,
		FromDate: input.FromDate,
		ToDate:   input.ToDate,
		Category: strings.TrimSpace(input.Category),
		Reason:   strings.TrimSpace(input.Reason),
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventLeaveRequested,
		ActorID: actor.ID,
		Payload: events.LeaveRequestedPayload{
			LeaveID:  leave.ID,
			UserID:   leave.UserID,
			Category: leave.Category,
		},
	})
	return leave, nil
}

// ListLeaves returns leave requests visible to the viewer after applying
// the owner scope and criteria. A recruiter's scope is always self-only,
// so their fetch narrows to their own rows at the repository.
func (s *LeaveService) ListLeaves(ctx context.Context, viewer *domain.User, criteria visibility.LeaveCriteria) ([]domain.LeaveRequest, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	var leaves []domain.LeaveRequest
	if viewer != nil && isRecruiter(viewer) {
		leaves, err = s.leaves.ListByUser(ctx, viewer.ID)
	} else {
		leaves, err = s.leaves.ListAll(ctx)
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	scope := visibility.ResolveScope(viewer, users)
	return visibility.FilterLeaves(leaves, scope, criteria), nil
}

func isRecruiter(user *domain.User) bool {
	designation, ok := domain.ParseDesignation(string(user.Designation))
	return ok && designation == domain.DesignationRecruiter
}

// Decide approves or rejects a pending leave request. The decider must
// have the request's owner in scope; own requests cannot be self-approved.
func (s *LeaveService) Decide(ctx context.Context, actor *domain.User, leaveID string, approve bool) (*domain.LeaveRequest, error) {
	leave, err := s.leaves.GetByID(ctx, leaveID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("leave request", map[string]any{"leave_id": leaveID})
		}
		return nil, apperrors.MapError(err)
	}
	if leave.Status != domain.LeaveStatusPending {
		return nil, apperrors.NewConflict("leave request already decided", map[string]any{"status": leave.Status})
	}
	if actor != nil && leave.UserID == actor.ID {
		return nil, apperrors.NewForbidden("cannot decide own leave request")
	}

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	scope := visibility.ResolveScope(actor, users)
	if !scope.Contains(leave.UserID) {
		return nil, apperrors.NewForbidden("access denied")
	}

	if approve {
		leave.Status = domain.LeaveStatusApproved
	} else {
		leave.Status = domain.LeaveStatusRejected
	}
	deciderID := actor.ID
	leave.DecidedBy = &deciderID
	if err := s.leaves.Update(ctx, leave); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventLeaveDecided,
		ActorID: actor.ID,
		Payload: events.LeaveDecidedPayload{
			LeaveID:   leave.ID,
			UserID:    leave.UserID,
			NewStatus: leave.Status,
			DecidedBy: deciderID,
		},
	})
	return leave, nil
}

func (s *LeaveService) publish(ctx context.Context, event events.Event) {
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
