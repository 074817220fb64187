package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/config"
	"github.com/streamline-live/streamline-backend/internal/dto"
)

// JWTProtected verifies the Bearer token and attaches the parsed token at
// c.Locals("user"). Host routes trust the signed claims as-is; no database
// round trip happens here.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Invalid token. Please log in again."
			switch {
			case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
				message = "Token not found. Please log in first."
			case errors.Is(err, jwt.ErrTokenExpired):
				message = "Token has expired. Please log in again."
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(message))
		},
	})
}

// UserID extracts the authenticated user's id from the verified JWT claims.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := Claims(c)
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := claims["userId"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing userId claim")
	}
	return uuid.Parse(sub)
}

// Role returns the role claim carried by the token. Note this is the role
// at token-issue time; admin routes re-check the database instead.
func Role(c *fiber.Ctx) string {
	claims, err := Claims(c)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

func Claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
