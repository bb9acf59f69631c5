package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	"github.com/Nishukr/Urban-waste-control/internal/events"
	"github.com/Nishukr/Urban-waste-control/internal/repository"
	"github.com/Nishukr/Urban-waste-control/internal/upload"
)

// ReportCreateInput carries fields from the report-public-garbage form.
type ReportCreateInput struct {
	Location          string
	Locality          string
	MobileNum         string
	AdditionalDetails string
	Image             *multipart.FileHeader
}

// ReportService coordinates public garbage reports and their photo uploads.
type ReportService struct {
	reports    repository.GarbageReportRepository
	store      *upload.Store
	dispatcher events.Dispatcher
}

// NewReportService builds the service.
func NewReportService(reports repository.GarbageReportRepository, store *upload.Store, dispatcher events.Dispatcher) *ReportService {
	return &ReportService{reports: reports, store: store, dispatcher: dispatcher}
}

// Report stores the uploaded photo, persists the report, and returns the
// record along with the photo's public URL.
func (s *ReportService) Report(ctx context.Context, userID string, input ReportCreateInput) (*domain.GarbageReport, string, error) {
	storedPath, imageURL, err := s.store.SaveImage(input.Image)
	if err != nil {
		return nil, "", err
	}

	report := &domain.GarbageReport{
		UserID:            userID,
		Location:          input.Location,
		Locality:          input.Locality,
		MobileNum:         input.MobileNum,
		AdditionalDetails: input.AdditionalDetails,
		ImagePath:         storedPath,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, "", err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventGarbageReported,
			ActorID:   userID,
			ActorRole: domain.RolePublic,
			Timestamp: time.Now(),
			Payload: events.GarbageReportedPayload{
				ReportID: report.ID,
				Locality: report.Locality,
				ImageURL: imageURL,
			},
		})
	}
	return report, imageURL, nil
}

// ListByUser returns the calling citizen's own reports.
func (s *ReportService) ListByUser(ctx context.Context, userID string) ([]domain.GarbageReport, error) {
	return s.reports.ListByUser(ctx, userID)
}

// ImageURL resolves a stored image path to its public URL.
func (s *ReportService) ImageURL(report domain.GarbageReport) string {
	return s.store.PublicURL(report.ImagePath)
}
