package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	"github.com/Nishukr/Urban-waste-control/internal/events"
	"github.com/Nishukr/Urban-waste-control/internal/repository"
)

// ScheduleCreateInput carries fields from the update-schedule form.
type ScheduleCreateInput struct {
	EmployeeName string
	Area         string
	Day          string
	Date         string
	Time         string
}

// ScheduleService coordinates collection-schedule management.
type ScheduleService struct {
	schedules  repository.ScheduleRepository
	cache      repository.ScheduleCache
	dispatcher events.Dispatcher
}

// NewScheduleService builds the service. Cache may be nil.
func NewScheduleService(schedules repository.ScheduleRepository, cache repository.ScheduleCache, dispatcher events.Dispatcher) *ScheduleService {
	return &ScheduleService{schedules: schedules, cache: cache, dispatcher: dispatcher}
}

// Update records a new schedule entry and invalidates cached listings.
func (s *ScheduleService) Update(ctx context.Context, staffID string, input ScheduleCreateInput) (*domain.Schedule, error) {
	schedule := &domain.Schedule{
		EmployeeName: input.EmployeeName,
		Area:         input.Area,
		Day:          input.Day,
		Date:         input.Date,
		Time:         input.Time,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventScheduleUpdated,
			ActorID:   staffID,
			ActorRole: domain.RoleMunicipal,
			Timestamp: time.Now(),
			Payload: events.ScheduleUpdatedPayload{
				ScheduleID: schedule.ID,
				Area:       schedule.Area,
				Day:        schedule.Day,
			},
		})
	}
	return schedule, nil
}

// View returns schedules, optionally filtered by area, served from cache
// when a fresh listing is available.
func (s *ScheduleService) View(ctx context.Context, area string) ([]domain.Schedule, error) {
	if s.cache != nil {
		if schedules, ok := s.cache.Get(ctx, area); ok {
			return schedules, nil
		}
	}

	schedules, err := s.schedules.List(ctx, area)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, area, schedules)
	}
	return schedules, nil
}
