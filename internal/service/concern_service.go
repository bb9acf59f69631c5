package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	"github.com/Nishukr/Urban-waste-control/internal/events"
	"github.com/Nishukr/Urban-waste-control/internal/repository"
)

// ConcernCreateInput carries fields from the raise-concern form.
type ConcernCreateInput struct {
	Name              string
	HouseNumber       string
	Locality          string
	MobileNum         string
	IssueType         string
	AdditionalDetails string
}

// ConcernService coordinates the concern lifecycle.
type ConcernService struct {
	concerns   repository.ConcernRepository
	dispatcher events.Dispatcher
}

// NewConcernService builds the service.
func NewConcernService(concerns repository.ConcernRepository, dispatcher events.Dispatcher) *ConcernService {
	return &ConcernService{concerns: concerns, dispatcher: dispatcher}
}

// Raise records a new concern for the calling citizen.
func (s *ConcernService) Raise(ctx context.Context, userID string, input ConcernCreateInput) (*domain.Concern, error) {
	concern := &domain.Concern{
		UserID:            userID,
		Name:              input.Name,
		HouseNumber:       input.HouseNumber,
		Locality:          input.Locality,
		MobileNum:         input.MobileNum,
		IssueType:         input.IssueType,
		AdditionalDetails: input.AdditionalDetails,
		Status:            domain.ConcernStatusPending,
	}
	if err := s.concerns.Create(ctx, concern); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventConcernRaised, userID, domain.RolePublic, events.ConcernRaisedPayload{
		ConcernID: concern.ID,
		Locality:  concern.Locality,
		IssueType: concern.IssueType,
	})
	return concern, nil
}

// List returns all concerns for municipal review.
func (s *ConcernService) List(ctx context.Context) ([]domain.Concern, error) {
	return s.concerns.List(ctx)
}

// MarkSolved transitions a concern to resolved.
func (s *ConcernService) MarkSolved(ctx context.Context, staffID, concernID string) error {
	if err := s.concerns.MarkResolved(ctx, concernID); err != nil {
		return err
	}
	s.publish(ctx, events.EventConcernResolved, staffID, domain.RoleMunicipal, events.ConcernResolvedPayload{
		ConcernID: concernID,
	})
	return nil
}

// Delete removes a concern.
func (s *ConcernService) Delete(ctx context.Context, concernID string) error {
	return s.concerns.Delete(ctx, concernID)
}

func (s *ConcernService) publish(ctx context.Context, eventType events.EventType, actorID string, role domain.Role, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		ActorRole: role,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
