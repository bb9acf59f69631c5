package domain

import "time"

// Schedule is a garbage-collection schedule entry maintained by municipal staff.
type Schedule struct {
	ID           string
	EmployeeName string
	Area         string
	Day          string
	Date         string
	Time         string
	CreatedAt    time.Time
}
