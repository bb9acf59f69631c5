package domain

import "time"

// GarbageReport is a citizen report of uncollected public garbage,
// accompanied by an uploaded photo.
type GarbageReport struct {
	ID                string
	UserID            string
	Location          string
	Locality          string
	MobileNum         string
	AdditionalDetails string
	ImagePath         string
	CreatedAt         time.Time
}
