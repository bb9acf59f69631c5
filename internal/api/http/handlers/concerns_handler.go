package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Nishukr/Urban-waste-control/internal/api/dto"
	"github.com/Nishukr/Urban-waste-control/internal/auth"
	"github.com/Nishukr/Urban-waste-control/internal/service"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// ConcernsHandler manages citizen concern endpoints.
type ConcernsHandler struct {
	service *service.ConcernService
}

// NewConcernsHandler constructs handler.
func NewConcernsHandler(concernService *service.ConcernService) *ConcernsHandler {
	return &ConcernsHandler{service: concernService}
}

// Raise handles POST /raise-concern.
func (h *ConcernsHandler) Raise(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	var req dto.RaiseConcernRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Locality == "" || req.IssueType == "" {
		return apperrors.NewValidationError("name, locality, issueType required", nil)
	}

	_, err := h.service.Raise(c.Context(), principal.UserID, service.ConcernCreateInput{
		Name:              req.Name,
		HouseNumber:       req.HouseNumber,
		Locality:          req.Locality,
		MobileNum:         req.MobileNum,
		IssueType:         req.IssueType,
		AdditionalDetails: req.AdditionalDetails,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Concern raised successfully",
	})
}

// List handles GET /view-concerns.
func (h *ConcernsHandler) List(c *fiber.Ctx) error {
	concerns, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.ConcernResponse, 0, len(concerns))
	for _, concern := range concerns {
		out = append(out, dto.NewConcernResponse(concern))
	}
	return c.JSON(fiber.Map{"concerns": out})
}

// MarkSolved handles PATCH /mark-solved/:id.
func (h *ConcernsHandler) MarkSolved(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	if err := h.service.MarkSolved(c.Context(), principal.UserID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Concern marked as solved",
	})
}

// Delete handles DELETE /delete-concern/:id.
func (h *ConcernsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Concern deleted successfully",
	})
}
