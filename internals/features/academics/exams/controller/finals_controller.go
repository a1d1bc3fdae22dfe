package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/academics/exams/dto"
	"schoolku_backend/internals/features/academics/exams/service"
	helper "schoolku_backend/internals/helpers"
)

type FinalsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFinalsController(db *gorm.DB, v *validator.Validate) *FinalsController {
	if v == nil {
		v = validator.New()
	}
	return &FinalsController{DB: db, Validate: v}
}

// FinalizePublish aggregates weighted component exams into a final
// result for one class/section and publishes it unless publish=false.
func (ctl *FinalsController) FinalizePublish(c *fiber.Ctx) error {
	var req d.FinalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	result, err := service.FinalizeAndPublish(c.Context(), ctl.DB, req.ToService())
	if err != nil {
		var pre *service.PreconditionError
		if errors.As(err, &pre) {
			return helper.JsonError(c, http.StatusBadRequest, pre.Message)
		}
		return helper.JsonPGError(c, err)
	}
	return helper.JsonOK(c, "Final results computed", result)
}
