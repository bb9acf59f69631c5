package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nishukr/Urban-waste-control/internal/api/dto"
	"github.com/Nishukr/Urban-waste-control/internal/auth"
	"github.com/Nishukr/Urban-waste-control/internal/service"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// ReportsHandler manages public garbage report endpoints.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Report handles POST /report-public-garbage (multipart form with an image).
func (h *ReportsHandler) Report(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	image, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("image file required", nil)
	}

	_, imageURL, err := h.service.Report(c.Context(), principal.UserID, service.ReportCreateInput{
		Location:          c.FormValue("location"),
		Locality:          c.FormValue("locality"),
		MobileNum:         c.FormValue("mobileNum"),
		AdditionalDetails: c.FormValue("additionalDetails"),
		Image:             image,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.ReportGarbageResponse{
		Success:  true,
		Message:  "Public garbage reported successfully",
		ImageURL: imageURL,
	})
}

// List handles GET /my-reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	reports, err := h.service.ListByUser(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	out := make([]dto.GarbageReportResponse, 0, len(reports))
	for _, report := range reports {
		out = append(out, dto.NewGarbageReportResponse(report, h.service.ImageURL(report)))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"reports": out,
	})
}
