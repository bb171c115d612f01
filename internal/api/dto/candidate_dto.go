package dto

import (
	"time"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// CreateCandidateRequest payload.
type CreateCandidateRequest struct {
	JobID  string            `json:"job_id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Phone  string            `json:"phone"`
	Skills []string          `json:"skills"`
	Fields map[string]string `json:"fields"`
}

// UpdateCandidateStatusRequest payload.
type UpdateCandidateStatusRequest struct {
	Status domain.CandidateStatus `json:"status"`
	Stage  string                 `json:"stage"`
}

// CandidateResponse payload.
type CandidateResponse struct {
	ID        string                 `json:"id"`
	JobID     string                 `json:"job_id"`
	CreatedBy string                 `json:"created_by"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Skills    []string               `json:"skills"`
	Status    domain.CandidateStatus `json:"status"`
	Stage     string                 `json:"stage"`
	Fields    map[string]string      `json:"fields,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
