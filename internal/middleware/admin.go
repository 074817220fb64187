package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired runs after JWTProtected and authorizes against the user's
// CURRENT role: it re-fetches the row by the token's userId so a demotion
// takes effect before the token expires. A deleted user gets 401, a
// non-admin role gets 403.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token not found. Please log in first."))
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not found"))
			}
			slog.Error("admin middleware user lookup failed", "error", err, "user_id", userID)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
		}

		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Access denied. Admin role required."))
		}

		c.Locals("currentUser", &user)
		return c.Next()
	}
}
