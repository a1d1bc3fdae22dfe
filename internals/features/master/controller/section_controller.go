package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/master/dto"
	m "schoolku_backend/internals/features/master/model"
	helper "schoolku_backend/internals/helpers"
)

type SectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSectionController(db *gorm.DB, v *validator.Validate) *SectionController {
	if v == nil {
		v = validator.New()
	}
	return &SectionController{DB: db, Validate: v}
}

func (ctl *SectionController) List(c *fiber.Ctx) error {
	var sections []m.SectionModel
	if err := ctl.DB.WithContext(c.Context()).Order("section_name ASC").Find(&sections).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.SectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, d.FromSectionModel(s))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *SectionController) Create(c *fiber.Ctx) error {
	var req d.SectionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	section := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&section).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromSectionModel(section))
}

func (ctl *SectionController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid section id")
	}

	var req d.SectionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var section m.SectionModel
	if err := ctl.DB.WithContext(c.Context()).First(&section, "section_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Section not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if req.Name != nil {
		section.SectionName = *req.Name
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&section).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromSectionModel(section))
}

func (ctl *SectionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid section id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.SectionModel{}, "section_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Section not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"section_id": id})
}
