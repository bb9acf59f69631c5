package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	ctx := context.Background()

	var raised, resolved int
	d.Subscribe(EventConcernRaised, func(context.Context, Event) error {
		raised++
		return nil
	})
	d.Subscribe(EventConcernResolved, func(context.Context, Event) error {
		resolved++
		return nil
	})

	if err := d.Publish(ctx, Event{Type: EventConcernRaised}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if raised != 1 {
		t.Errorf("raised handler calls = %d, want 1", raised)
	}
	if resolved != 0 {
		t.Errorf("resolved handler calls = %d, want 0", resolved)
	}
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventScheduleUpdated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventScheduleUpdated, func(context.Context, Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventScheduleUpdated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !second {
		t.Error("second handler not invoked after first errored")
	}
}
