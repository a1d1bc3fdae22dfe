package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/academics/timetable/dto"
	m "schoolku_backend/internals/features/academics/timetable/model"
	helper "schoolku_backend/internals/helpers"
)

type PeriodController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPeriodController(db *gorm.DB, v *validator.Validate) *PeriodController {
	if v == nil {
		v = validator.New()
	}
	return &PeriodController{DB: db, Validate: v}
}

func (ctl *PeriodController) List(c *fiber.Ctx) error {
	var periods []m.PeriodModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("period_order ASC").
		Find(&periods).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, d.FromPeriodModel(p))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	var req d.PeriodCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	period, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if !period.PeriodStartTime.Before(period.PeriodEndTime) {
		return helper.JsonError(c, http.StatusBadRequest, "Period start time must be before end time")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&period).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromPeriodModel(period))
}

func (ctl *PeriodController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid period id")
	}

	var req d.PeriodUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var period m.PeriodModel
	if err := ctl.DB.WithContext(c.Context()).First(&period, "period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Period not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyUpdates(&period); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if !period.PeriodStartTime.Before(period.PeriodEndTime) {
		return helper.JsonError(c, http.StatusBadRequest, "Period start time must be before end time")
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&period).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromPeriodModel(period))
}

func (ctl *PeriodController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid period id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.PeriodModel{}, "period_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Period not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"period_id": id})
}
