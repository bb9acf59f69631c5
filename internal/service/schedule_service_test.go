package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

type mockScheduleRepository struct {
	mu        sync.Mutex
	schedules []domain.Schedule
	listCalls int
}

func (m *mockScheduleRepository) Create(_ context.Context, schedule *domain.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	schedule.ID = fmt.Sprintf("schedule-%d", len(m.schedules)+1)
	m.schedules = append(m.schedules, *schedule)
	return nil
}

func (m *mockScheduleRepository) List(_ context.Context, area string) ([]domain.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	out := make([]domain.Schedule, 0, len(m.schedules))
	for _, s := range m.schedules {
		if area == "" || strings.Contains(strings.ToLower(s.Area), strings.ToLower(area)) {
			out = append(out, s)
		}
	}
	return out, nil
}

// mapScheduleCache is an in-memory stand-in for the Redis cache.
type mapScheduleCache struct {
	mu      sync.Mutex
	entries map[string][]domain.Schedule
}

func newMapScheduleCache() *mapScheduleCache {
	return &mapScheduleCache{entries: make(map[string][]domain.Schedule)}
}

func (c *mapScheduleCache) Get(_ context.Context, area string) ([]domain.Schedule, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	schedules, ok := c.entries[area]
	return schedules, ok
}

func (c *mapScheduleCache) Set(_ context.Context, area string, schedules []domain.Schedule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[area] = schedules
}

func (c *mapScheduleCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]domain.Schedule)
}

func TestScheduleService_ViewFiltersByArea(t *testing.T) {
	repo := &mockScheduleRepository{}
	svc := NewScheduleService(repo, nil, nil)
	ctx := context.Background()

	for _, area := range []string{"North Market", "South Hills", "north gate"} {
		if _, err := svc.Update(ctx, "staff-1", ScheduleCreateInput{EmployeeName: "Ravi", Area: area, Day: "Monday"}); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	schedules, err := svc.View(ctx, "north")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("got %d schedules for area north, want 2", len(schedules))
	}
	for _, s := range schedules {
		if !strings.Contains(strings.ToLower(s.Area), "north") {
			t.Errorf("unexpected area %q", s.Area)
		}
	}
}

func TestScheduleService_ViewUsesCache(t *testing.T) {
	repo := &mockScheduleRepository{}
	cache := newMapScheduleCache()
	svc := NewScheduleService(repo, cache, nil)
	ctx := context.Background()

	if _, err := svc.Update(ctx, "staff-1", ScheduleCreateInput{EmployeeName: "Ravi", Area: "North Market"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := svc.View(ctx, ""); err != nil {
		t.Fatalf("first View: %v", err)
	}
	if _, err := svc.View(ctx, ""); err != nil {
		t.Fatalf("second View: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("repo.List called %d times, want 1 (second view cached)", repo.listCalls)
	}

	// A write invalidates cached listings.
	if _, err := svc.Update(ctx, "staff-1", ScheduleCreateInput{EmployeeName: "Ravi", Area: "South Hills"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	schedules, err := svc.View(ctx, "")
	if err != nil {
		t.Fatalf("View after update: %v", err)
	}
	if len(schedules) != 2 {
		t.Errorf("got %d schedules after invalidation, want 2", len(schedules))
	}
	if repo.listCalls != 2 {
		t.Errorf("repo.List called %d times, want 2", repo.listCalls)
	}
}
