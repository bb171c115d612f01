package domain

import (
	"strings"
	"time"
)

// Designation classifies a portal user within the recruitment hierarchy.
type Designation string

const (
	DesignationAdmin     Designation = "ADMIN"
	DesignationManager   Designation = "MANAGER"
	DesignationMentor    Designation = "MENTOR"
	DesignationRecruiter Designation = "RECRUITER"
)

// ParseDesignation normalizes a raw designation value. The boolean reports
// whether the value maps to a known designation; callers treat unknown
// values as the most restrictive role.
func ParseDesignation(raw string) (Designation, bool) {
	switch Designation(strings.ToUpper(strings.TrimSpace(raw))) {
	case DesignationAdmin:
		return DesignationAdmin, true
	case DesignationManager:
		return DesignationManager, true
	case DesignationMentor:
		return DesignationMentor, true
	case DesignationRecruiter:
		return DesignationRecruiter, true
	default:
		return "", false
	}
}

// User models a portal account. ReporterID links to the user this account
// reports to; top-level users carry nil. The reporter relation is owned by
// the directory and is expected to form a forest.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Designation  Designation
	ReporterID   *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
