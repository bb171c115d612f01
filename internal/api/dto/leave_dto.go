package dto

import (
	"time"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// CreateLeaveRequest payload.
type CreateLeaveRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// DecideLeaveRequest payload.
type DecideLeaveRequest struct {
	Approve bool `json:"approve"`
}

// LeaveResponse payload.
type LeaveResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Status    domain.LeaveStatus `json:"status"`
	FromDate  time.Time          `json:"from_date"`
	ToDate    time.Time          `json:"to_date"`
	Category  string             `json:"category"`
	Reason    string             `json:"reason"`
	DecidedBy *string            `json:"decided_by,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
