package dto

import (
	"time"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	Title    string   `json:"title"`
	ClientID string   `json:"client_id"`
	Stages   []string `json:"stages"`
	Openings int      `json:"openings"`
}

// UpdateJobStatusRequest payload.
type UpdateJobStatusRequest struct {
	Status domain.JobStatus `json:"status"`
}

// AssignJobRequest payload.
type AssignJobRequest struct {
	LeadRecruiterID      *string  `json:"lead_recruiter_id"`
	AssignedRecruiterIDs []string `json:"assigned_recruiter_ids"`
}

// JobResponse payload.
type JobResponse struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title"`
	ClientID             string           `json:"client_id"`
	CreatedBy            string           `json:"created_by"`
	LeadRecruiterID      *string          `json:"lead_recruiter_id,omitempty"`
	AssignedRecruiterIDs []string         `json:"assigned_recruiter_ids"`
	Status               domain.JobStatus `json:"status"`
	Stages               []string         `json:"stages"`
	Openings             int              `json:"openings"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// CreateClientRequest payload.
type CreateClientRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// ClientResponse payload.
type ClientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
