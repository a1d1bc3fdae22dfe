package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserIDFromToken reads the user_id placed in Locals by the auth
// middleware. 401 when absent, 400 when malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

// GetRoleFromToken reads the role stored in Locals by the auth middleware.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return v
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetRoleFromToken(c) == constants.RoleAdmin
}

func IsTeacher(c *fiber.Ctx) bool {
	return GetRoleFromToken(c) == constants.RoleTeacher
}

// IsStaff reports whether the caller holds any staff-level role.
func IsStaff(c *fiber.Ctx) bool {
	role := GetRoleFromToken(c)
	for _, r := range constants.StaffAndAbove {
		if role == r {
			return true
		}
	}
	return false
}
