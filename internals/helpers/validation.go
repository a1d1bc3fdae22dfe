package helper

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationErrorsToMap flattens validator.v10 errors into field→messages.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}

/* ===============================
   PG error mapping
=================================*/

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23P01 = exclusion_violation
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Conflicting row: overlapping range."
		case "23503":
			return http.StatusBadRequest, "Referenced row not found (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate row (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// JsonPGError maps Postgres SQLSTATE failures onto HTTP statuses.
func JsonPGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return JsonError(c, code, msg)
}
