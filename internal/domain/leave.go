package domain

import "time"

// LeaveStatus enumerates decision states for leave requests.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// LeaveRequest is a time-off application owned by a single user.
type LeaveRequest struct {
	ID        string
	UserID    string
	Status    LeaveStatus
	FromDate  time.Time
	ToDate    time.Time
	Category  string
	Reason    string
	DecidedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
