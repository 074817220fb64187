package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/middleware"
	"github.com/streamline-live/streamline-backend/internal/services"
)

// ScheduleHandler serves the host-facing schedule routes. Identity comes
// from the verified token claims.
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// List handles GET /api/schedules - upcoming schedules for the caller.
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	hostID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token not found. Please log in first."))
	}

	schedules, err := h.scheduleService.ListMySchedules(hostID)
	if err != nil {
		slog.Error("list schedules failed", "error", err, "host_id", hostID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(schedules))
}

// Detail handles GET /api/schedules/:id - the full briefing.
func (h *ScheduleHandler) Detail(c *fiber.Ctx) error {
	hostID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token not found. Please log in first."))
	}

	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
	}

	briefing, err := h.scheduleService.GetScheduleDetail(hostID, scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrScheduleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
		case errors.Is(err, services.ErrNotScheduleOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("You do not have access to this schedule"))
		}
		slog.Error("schedule detail failed", "error", err, "schedule_id", scheduleID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(briefing))
}

// Acknowledge handles POST /api/schedules/:id/acknowledge.
func (h *ScheduleHandler) Acknowledge(c *fiber.Ctx) error {
	hostID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token not found. Please log in first."))
	}

	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
	}

	acknowledgedAt, err := h.scheduleService.Acknowledge(hostID, scheduleID)
	if err != nil {
		var already *services.AlreadyAcknowledgedError
		switch {
		case errors.Is(err, services.ErrScheduleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
		case errors.Is(err, services.ErrNotScheduleOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("You do not have access to this schedule"))
		case errors.As(err, &already):
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailData(
				"Schedule has already been acknowledged",
				fiber.Map{"acknowledgedAt": already.AcknowledgedAt},
			))
		}
		slog.Error("acknowledge failed", "error", err, "schedule_id", scheduleID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OKMessage("Schedule acknowledged", dto.AcknowledgeResponse{
		ID:             scheduleID,
		AcknowledgedAt: acknowledgedAt,
	}))
}
