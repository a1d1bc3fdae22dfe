package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam parses a :name path parameter as a UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// ParseUUIDQuery parses an optional ?name= query parameter as a UUID.
// Returns nil when the parameter is absent.
func ParseUUIDQuery(c *fiber.Ctx, names ...string) (*uuid.UUID, error) {
	for _, name := range names {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s is not a valid UUID", name)
		}
		return &id, nil
	}
	return nil, nil
}

// ParseClockTime parses "HH:MM" (or "HH:MM:SS") into a time.Time carrying
// only the time-of-day, matching the Postgres time column.
func ParseClockTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("15:04:05", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, want HH:MM", raw)
	}
	return t, nil
}

// FormatClockTime renders a time-of-day value as "HH:MM".
func FormatClockTime(t time.Time) string {
	return t.Format("15:04")
}

// ParseDateQuery parses a required YYYY-MM-DD value.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return t, nil
}
