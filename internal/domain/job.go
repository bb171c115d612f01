package domain

import "time"

// JobStatus enumerates lifecycle states for job requisitions.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusOnHold JobStatus = "ON_HOLD"
	JobStatusClosed JobStatus = "CLOSED"
)

// Job is a requisition opened for a client. LeadRecruiterID and
// AssignedRecruiterIDs each grant visibility of the job's candidates
// independently of the org hierarchy.
type Job struct {
	ID                   string
	Title                string
	ClientID             string
	CreatedBy            string
	LeadRecruiterID      *string
	AssignedRecruiterIDs []string
	Status               JobStatus
	Stages               []string
	Openings             int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
