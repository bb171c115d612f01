package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/repository"
	apperrors "github.com/JTSTBP/ATS-sub003/pkg/errorutil"
)

// UserService manages portal accounts and the reporting graph.
type UserService struct {
	users      repository.UserRepository
	directory  *DirectoryService
	bcryptCost int
}

// UserCreateInput describes account creation payload.
type UserCreateInput struct {
	Name        string
	Email       string
	Password    string
	Designation string
	ReporterID  *string
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, directory *DirectoryService, bcryptCost int) *UserService {
	return &UserService{users: users, directory: directory, bcryptCost: bcryptCost}
}

// CreateUser registers a new portal account with a designation and an
// optional reporter link.
func (s *UserService) CreateUser(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	designation, ok := domain.ParseDesignation(input.Designation)
	if !ok {
		return nil, apperrors.NewValidationError("unknown designation", map[string]any{"designation": input.Designation})
	}
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": input.Email})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}
	if input.ReporterID != nil {
		if _, err := s.users.GetByID(ctx, *input.ReporterID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewValidationError("reporter not found", map[string]any{"reporter_id": *input.ReporterID})
			}
			return nil, apperrors.MapError(err)
		}
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Designation:  designation,
		ReporterID:   input.ReporterID,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.directory.Invalidate(ctx)
	return user, nil
}

// UpdateReporter moves a user under a new reporter.
func (s *UserService) UpdateReporter(ctx context.Context, userID string, reporterID *string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, apperrors.MapError(err)
	}
	if reporterID != nil {
		if *reporterID == userID {
			return nil, apperrors.NewValidationError("user cannot report to themselves", nil)
		}
		if _, err := s.users.GetByID(ctx, *reporterID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewValidationError("reporter not found", map[string]any{"reporter_id": *reporterID})
			}
			return nil, apperrors.MapError(err)
		}
	}
	user.ReporterID = reporterID
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.directory.Invalidate(ctx)
	return user, nil
}

// Deactivate disables an account without deleting its records.
func (s *UserService) Deactivate(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, apperrors.MapError(err)
	}
	user.Active = false
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.directory.Invalidate(ctx)
	return user, nil
}

// ListUsers returns the directory.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.directory.ListUsers(ctx)
}
