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

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB, v *validator.Validate) *ClassroomController {
	if v == nil {
		v = validator.New()
	}
	return &ClassroomController{DB: db, Validate: v}
}

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	var rooms []m.ClassroomModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("classroom_name ASC").
		Find(&rooms).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.ClassroomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, d.FromClassroomModel(room))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req d.ClassroomCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	room := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&room).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromClassroomModel(room))
}

func (ctl *ClassroomController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid classroom id")
	}

	var req d.ClassroomUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var room m.ClassroomModel
	if err := ctl.DB.WithContext(c.Context()).First(&room, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Classroom not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&room)
	if err := ctl.DB.WithContext(c.Context()).Save(&room).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromClassroomModel(room))
}

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid classroom id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.ClassroomModel{}, "classroom_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Classroom not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"classroom_id": id})
}
