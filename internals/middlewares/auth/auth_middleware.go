package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	userModel "schoolku_backend/internals/features/users/auth/model"
)

// AuthMiddleware verifies the bearer token, rejects blacklisted tokens and
// stores user_id / userRole in Locals for downstream handlers.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// blacklist check, once per request
		if c.Locals("token_checked") == nil {
			var existing userModel.TokenBlacklist
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())
		c.Locals("raw_token", tokenString)

		if role, ok := claims["role"].(string); ok {
			c.Locals("userRole", role)
		}
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	auth := c.Get("Authorization")
	const p = "Bearer "
	if !strings.HasPrefix(auth, p) || len(auth) <= len(p) {
		return "", fmt.Errorf("missing or malformed Authorization header")
	}
	return strings.TrimSpace(auth[len(p):]), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("exp claim malformed")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return fmt.Errorf("token expired at %s", exp)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fmt.Errorf("user_id claim missing")
	}
	return uuid.Parse(raw)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var isActive bool
	err := db.Model(&userModel.UserModel{}).
		Select("user_is_active").
		Where("user_id = ?", userID).
		Take(&isActive).Error
	if err != nil {
		return err
	}
	if !isActive {
		return fmt.Errorf("user deactivated")
	}
	return nil
}
