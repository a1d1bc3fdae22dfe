package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/master/dto"
	m "schoolku_backend/internals/features/master/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	if v == nil {
		v = validator.New()
	}
	return &ClassController{DB: db, Validate: v}
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	var classes []m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Sections").
		Order("class_name ASC").
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.ClassResponse, 0, len(classes))
	for _, cls := range classes {
		out = append(out, d.FromClassModel(cls))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class id")
	}
	var cls m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Sections").
		First(&cls, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromClassModel(cls))
}

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req d.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	cls := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cls).Error; err != nil {
			return err
		}
		return replaceClassSections(tx, cls.ClassID, req.SectionIDs)
	}); err != nil {
		return helper.JsonPGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Preload("Sections").First(&cls, "class_id = ?", cls.ClassID).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "", d.FromClassModel(cls))
}

func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class id")
	}

	var req d.ClassUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var cls m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).First(&cls, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if req.Name != nil {
			cls.ClassName = *req.Name
			if err := tx.Save(&cls).Error; err != nil {
				return err
			}
		}
		if req.SectionIDs != nil {
			if err := tx.Delete(&m.ClassSectionModel{}, "class_id = ?", cls.ClassID).Error; err != nil {
				return err
			}
			return replaceClassSections(tx, cls.ClassID, *req.SectionIDs)
		}
		return nil
	}); err != nil {
		return helper.JsonPGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Preload("Sections").First(&cls, "class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "", d.FromClassModel(cls))
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"class_id": id})
}

func replaceClassSections(tx *gorm.DB, classID uuid.UUID, sectionIDs []uuid.UUID) error {
	if len(sectionIDs) == 0 {
		return nil
	}
	rows := make([]m.ClassSectionModel, 0, len(sectionIDs))
	for _, sid := range sectionIDs {
		rows = append(rows, m.ClassSectionModel{ClassID: classID, SectionID: sid})
	}
	return tx.Create(&rows).Error
}
