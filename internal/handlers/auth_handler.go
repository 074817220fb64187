package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/middleware"
	"github.com/streamline-live/streamline-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Username and password are required"))
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid username or password"))
		}
		slog.Error("login failed", "error", err, "username", req.Username)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OKMessage("Login successful", resp))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token not found. Please log in first."))
	}

	user, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(user))
}
