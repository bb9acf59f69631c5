package domain

import "time"

// ConcernStatus tracks the resolution lifecycle of a concern.
type ConcernStatus string

const (
	ConcernStatusPending  ConcernStatus = "pending"
	ConcernStatusResolved ConcernStatus = "resolved"
)

// Concern is a citizen-submitted service request.
type Concern struct {
	ID                string
	UserID            string
	Name              string
	HouseNumber       string
	Locality          string
	MobileNum         string
	IssueType         string
	AdditionalDetails string
	Status            ConcernStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
