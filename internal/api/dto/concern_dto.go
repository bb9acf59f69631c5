package dto

import (
	"time"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

// RaiseConcernRequest payload for the raise-concern form.
type RaiseConcernRequest struct {
	Name              string `json:"name"`
	HouseNumber       string `json:"houseNumber"`
	Locality          string `json:"locality"`
	MobileNum         string `json:"mobileNum"`
	IssueType         string `json:"issueType"`
	AdditionalDetails string `json:"additionalDetails"`
}

// ConcernResponse represents a concern in API responses.
type ConcernResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Name              string    `json:"name"`
	HouseNumber       string    `json:"houseNumber"`
	Locality          string    `json:"locality"`
	MobileNum         string    `json:"mobileNum"`
	IssueType         string    `json:"issueType"`
	AdditionalDetails string    `json:"additionalDetails"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewConcernResponse maps a domain concern.
func NewConcernResponse(c domain.Concern) ConcernResponse {
	return ConcernResponse{
		ID:                c.ID,
		UserID:            c.UserID,
		Name:              c.Name,
		HouseNumber:       c.HouseNumber,
		Locality:          c.Locality,
		MobileNum:         c.MobileNum,
		IssueType:         c.IssueType,
		AdditionalDetails: c.AdditionalDetails,
		Status:            string(c.Status),
		CreatedAt:         c.CreatedAt,
	}
}
