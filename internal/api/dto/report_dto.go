package dto

import (
	"time"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

// ReportGarbageResponse is returned after a successful garbage report.
type ReportGarbageResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// GarbageReportResponse represents a stored report in API responses.
type GarbageReportResponse struct {
	ID                string    `json:"id"`
	Location          string    `json:"location"`
	Locality          string    `json:"locality"`
	MobileNum         string    `json:"mobileNum"`
	AdditionalDetails string    `json:"additionalDetails"`
	ImageURL          string    `json:"imageUrl"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewGarbageReportResponse maps a domain report.
func NewGarbageReportResponse(r domain.GarbageReport, imageURL string) GarbageReportResponse {
	return GarbageReportResponse{
		ID:                r.ID,
		Location:          r.Location,
		Locality:          r.Locality,
		MobileNum:         r.MobileNum,
		AdditionalDetails: r.AdditionalDetails,
		ImageURL:          imageURL,
		CreatedAt:         r.CreatedAt,
	}
}
