package domain

import "time"

// Client represents a hiring company the agency recruits for.
type Client struct {
	ID           string
	Name         string
	ContactEmail string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
