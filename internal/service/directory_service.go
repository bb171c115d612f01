package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/JTSTBP/ATS-sub003/internal/config"
	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/persistence"
	"github.com/JTSTBP/ATS-sub003/internal/repository"
)

const directoryCacheKey = "directory:users"

// DirectoryService serves the full user directory with reporter links. The
// raw listing is cached in Redis with a short TTL; visibility scopes derived
// from it are always computed fresh per request.
type DirectoryService struct {
	users  repository.UserRepository
	cache  *persistence.Redis
	logger *zap.Logger
}

// NewDirectoryService constructs the service.
func NewDirectoryService(users repository.UserRepository, cache *persistence.Redis, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{users: users, cache: cache, logger: logger}
}

// ListUsers returns every portal user. Cache failures fall back to the
// database silently; the directory must stay available without Redis.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if cached, err := s.cache.GetString(ctx, directoryCacheKey); err == nil && cached != "" {
		var users []domain.User
		if err := json.Unmarshal([]byte(cached), &users); err == nil {
			return users, nil
		}
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(users); err == nil {
		if err := s.cache.SetString(ctx, directoryCacheKey, string(payload), config.DirectoryCacheTTL); err != nil {
			s.logger.Warn("directory cache write failed", zap.Error(err))
		}
	}
	return users, nil
}

// Invalidate drops the cached directory after a user write.
func (s *DirectoryService) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, directoryCacheKey); err != nil {
		s.logger.Warn("directory cache invalidate failed", zap.Error(err))
	}
}
