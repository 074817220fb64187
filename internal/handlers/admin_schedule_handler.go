package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/services"
)

// AdminScheduleHandler serves the admin CRUD routes. Unknown failures are
// logged and masked; raw persistence errors never reach the client.
type AdminScheduleHandler struct {
	adminService *services.AdminScheduleService
}

func NewAdminScheduleHandler(adminService *services.AdminScheduleService) *AdminScheduleHandler {
	return &AdminScheduleHandler{adminService: adminService}
}

// List handles GET /api/admin/schedules?date&hostId&platform.
func (h *AdminScheduleHandler) List(c *fiber.Ctx) error {
	filters := services.ScheduleFilters{
		Date:     c.Query("date"),
		HostID:   c.Query("hostId"),
		Platform: c.Query("platform"),
	}

	schedules, err := h.adminService.ListAll(filters)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("admin list schedules failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(schedules))
}

// Get handles GET /api/admin/schedules/:id.
func (h *AdminScheduleHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
	}

	schedule, err := h.adminService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
		}
		slog.Error("admin get schedule failed", "error", err, "schedule_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(schedule))
}

// Create handles POST /api/admin/schedules.
func (h *AdminScheduleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	schedule, err := h.adminService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Incomplete schedule data"))
		}
		slog.Error("admin create schedule failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Schedule created", schedule))
}

// Update handles PUT /api/admin/schedules/:id.
func (h *AdminScheduleHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	schedule, err := h.adminService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrScheduleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid schedule data"))
		}
		slog.Error("admin update schedule failed", "error", err, "schedule_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OKMessage("Schedule updated", schedule))
}

// Delete handles DELETE /api/admin/schedules/:id.
func (h *AdminScheduleHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
	}

	if err := h.adminService.Delete(id); err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Schedule not found"))
		}
		slog.Error("admin delete schedule failed", "error", err, "schedule_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OKMessage("Schedule deleted", nil))
}
