package events

import (
	"time"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobCreated             EventType = "job_created"
	EventJobAssigned            EventType = "job_assigned"
	EventCandidateCreated       EventType = "candidate_created"
	EventCandidateStatusChanged EventType = "candidate_status_changed"
	EventLeaveRequested         EventType = "leave_requested"
	EventLeaveDecided           EventType = "leave_decided"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// JobCreatedPayload payload.
type JobCreatedPayload struct {
	JobID    string           `json:"job_id"`
	Title    string           `json:"title"`
	ClientID string           `json:"client_id"`
	Status   domain.JobStatus `json:"status"`
}

// JobAssignedPayload payload.
type JobAssignedPayload struct {
	JobID                string   `json:"job_id"`
	LeadRecruiterID      *string  `json:"lead_recruiter_id,omitempty"`
	AssignedRecruiterIDs []string `json:"assigned_recruiter_ids,omitempty"`
}

// CandidateCreatedPayload payload.
type CandidateCreatedPayload struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	Name        string `json:"name"`
}

// CandidateStatusChangedPayload payload.
type CandidateStatusChangedPayload struct {
	CandidateID string                 `json:"candidate_id"`
	OldStatus   domain.CandidateStatus `json:"old_status"`
	NewStatus   domain.CandidateStatus `json:"new_status"`
	Stage       string                 `json:"stage,omitempty"`
}

// LeaveRequestedPayload payload.
type LeaveRequestedPayload struct {
	LeaveID  string `json:"leave_id"`
	UserID   string `json:"user_id"`
	Category string `json:"category"`
}

// LeaveDecidedPayload payload.
type LeaveDecidedPayload struct {
	LeaveID   string             `json:"leave_id"`
	UserID    string             `json:"user_id"`
	NewStatus domain.LeaveStatus `json:"new_status"`
	DecidedBy string             `json:"decided_by"`
}
