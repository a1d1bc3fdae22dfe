package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/people/dto"
	m "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

type StaffController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStaffController(db *gorm.DB, v *validator.Validate) *StaffController {
	if v == nil {
		v = validator.New()
	}
	return &StaffController{DB: db, Validate: v}
}

func (ctl *StaffController) List(c *fiber.Ctx) error {
	var members []m.StaffModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("staff_full_name ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.StaffResponse, 0, len(members))
	for _, s := range members {
		out = append(out, d.FromStaffModel(s))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *StaffController) Create(c *fiber.Ctx) error {
	var req d.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	member := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&member).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromStaffModel(member))
}

func (ctl *StaffController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid staff id")
	}

	var req d.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var member m.StaffModel
	if err := ctl.DB.WithContext(c.Context()).First(&member, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Staff member not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&member)
	if err := ctl.DB.WithContext(c.Context()).Save(&member).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromStaffModel(member))
}

func (ctl *StaffController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid staff id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.StaffModel{}, "staff_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Staff member not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"staff_id": id})
}
