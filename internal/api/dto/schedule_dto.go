package dto

import (
	"time"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

// UpdateScheduleRequest payload for the update-schedule form. Field names
// match the frontend form keys.
type UpdateScheduleRequest struct {
	EmployeeName string `json:"employeeName"`
	Area         string `json:"area"`
	ScheduleDay  string `json:"scheduleDay"`
	ScheduleDate string `json:"scheduleDate"`
	ScheduleTime string `json:"scheduleTime"`
}

// ScheduleResponse represents a schedule entry in API responses.
type ScheduleResponse struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employeeName"`
	Area         string    `json:"area"`
	Day          string    `json:"day"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewScheduleResponse maps a domain schedule.
func NewScheduleResponse(s domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:           s.ID,
		EmployeeName: s.EmployeeName,
		Area:         s.Area,
		Day:          s.Day,
		Date:         s.Date,
		Time:         s.Time,
		CreatedAt:    s.CreatedAt,
	}
}
