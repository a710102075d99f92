package middleware

import (
	"errors"
	"strings"

	"talent-service/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// Engineer permissions
	ReadEngineerPermission  = "read:engineer"
	WriteEngineerPermission = "write:engineer"
	AdminEngineerPermission = "admin:engineer"

	// Trend permissions
	ReadTrendPermission       = "read:trend"
	WriteTrendFocusPermission = "write:trend-focus"
	ReadTrendDashboard        = "read:trend:dashboard"

	// Admin permissions (for backward compatibility)
	AdminPermission   = "admin"
	ManagerPermission = "manager"
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token when a JWT secret is configured.
// With no secret set, auth is delegated to the gateway and requests pass
// through; a user id forwarded in X-User-ID is still propagated to handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		if cfg.Server.JWTSecret == "" {
			if userID := c.Get("X-User-ID"); userID != "" {
				c.Locals("user_id", userID)
			}
			return c.Next()
		}

		tokenString := c.Get("Authorization")
		if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
			tokenString = tokenString[7:]
		}

		claims, err := validateToken(tokenString, cfg.Server.JWTSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing token",
			})
		}

		c.Locals("user_id", cleanObjectIDString(claims.UserID))
		return c.Next()
	}
}

func validateToken(tokenString, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// cleanObjectIDString unwraps ids forwarded as ObjectID("...") by older services
func cleanObjectIDString(userID string) string {
	if strings.HasPrefix(userID, "ObjectID(\"") && strings.HasSuffix(userID, "\")") {
		return userID[10 : len(userID)-2]
	}
	return userID
}
