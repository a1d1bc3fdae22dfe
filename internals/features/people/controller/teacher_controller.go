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

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = validator.New()
	}
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var teachers []m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("teacher_full_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, d.FromTeacherModel(t))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher id")
	}
	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromTeacherModel(teacher))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.TeacherCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	teacher := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&teacher).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromTeacherModel(teacher))
}

func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher id")
	}

	var req d.TeacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&teacher)
	if err := ctl.DB.WithContext(c.Context()).Save(&teacher).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromTeacherModel(teacher))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Teacher not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"teacher_id": id})
}
