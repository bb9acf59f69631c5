package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Nishukr/Urban-waste-control/internal/api/dto"
	"github.com/Nishukr/Urban-waste-control/internal/auth"
	"github.com/Nishukr/Urban-waste-control/internal/service"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// SchedulesHandler manages collection-schedule endpoints.
type SchedulesHandler struct {
	service *service.ScheduleService
}

// NewSchedulesHandler constructs handler.
func NewSchedulesHandler(scheduleService *service.ScheduleService) *SchedulesHandler {
	return &SchedulesHandler{service: scheduleService}
}

// Update handles POST /update-schedule.
func (h *SchedulesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeName == "" || req.Area == "" {
		return apperrors.NewValidationError("employeeName and area required", nil)
	}

	_, err := h.service.Update(c.Context(), principal.UserID, service.ScheduleCreateInput{
		EmployeeName: req.EmployeeName,
		Area:         req.Area,
		Day:          req.ScheduleDay,
		Date:         req.ScheduleDate,
		Time:         req.ScheduleTime,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Schedule updated successfully",
	})
}

// View handles GET /view-schedule with optional ?area= filtering.
func (h *SchedulesHandler) View(c *fiber.Ctx) error {
	schedules, err := h.service.View(c.Context(), c.Query("area"))
	if err != nil {
		return err
	}

	out := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		out = append(out, dto.NewScheduleResponse(schedule))
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"schedules": out,
	})
}
