package domain

import "time"

// CandidateStatus enumerates funnel states. Candidates progress
// NEW -> SHORTLISTED -> INTERVIEWED -> SELECTED -> JOINED, with REJECTED
// as a terminal side branch.
type CandidateStatus string

const (
	CandidateStatusNew         CandidateStatus = "NEW"
	CandidateStatusShortlisted CandidateStatus = "SHORTLISTED"
	CandidateStatusInterviewed CandidateStatus = "INTERVIEWED"
	CandidateStatusSelected    CandidateStatus = "SELECTED"
	CandidateStatusJoined      CandidateStatus = "JOINED"
	CandidateStatusRejected    CandidateStatus = "REJECTED"
)

// Candidate is a sourced applicant tied to a job. CreatedBy is the owning
// recruiter for visibility purposes. Fields holds free-form values captured
// by dynamic intake forms.
type Candidate struct {
	ID        string
	JobID     string
	CreatedBy string
	Name      string
	Email     string
	Phone     string
	Skills    []string
	Status    CandidateStatus
	Stage     string
	Fields    map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}
