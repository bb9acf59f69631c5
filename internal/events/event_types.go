package events

import (
	"time"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventConcernRaised   EventType = "concern_raised"
	EventConcernResolved EventType = "concern_resolved"
	EventScheduleUpdated EventType = "schedule_updated"
	EventGarbageReported EventType = "garbage_reported"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	ActorRole domain.Role `json:"actor_role"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ConcernRaisedPayload payload.
type ConcernRaisedPayload struct {
	ConcernID string `json:"concern_id"`
	Locality  string `json:"locality"`
	IssueType string `json:"issue_type"`
}

// ConcernResolvedPayload payload.
type ConcernResolvedPayload struct {
	ConcernID string `json:"concern_id"`
}

// ScheduleUpdatedPayload payload.
type ScheduleUpdatedPayload struct {
	ScheduleID string `json:"schedule_id"`
	Area       string `json:"area"`
	Day        string `json:"day"`
}

// GarbageReportedPayload payload.
type GarbageReportedPayload struct {
	ReportID string `json:"report_id"`
	Locality string `json:"locality"`
	ImageURL string `json:"image_url"`
}
