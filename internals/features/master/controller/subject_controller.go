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

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	if v == nil {
		v = validator.New()
	}
	return &SubjectController{DB: db, Validate: v}
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.SubjectModel{})
	if classID, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
	} else if classID != nil {
		q = q.Where("subject_class_id = ?", *classID)
	}

	var subjects []m.SubjectModel
	if err := q.Order("subject_name ASC").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, d.FromSubjectModel(s))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req d.SubjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var clsCount int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.ClassModel{}).
		Where("class_id = ?", req.ClassID).Count(&clsCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if clsCount == 0 {
		return helper.JsonError(c, http.StatusBadRequest, "Class not found")
	}

	subject := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromSubjectModel(subject))
}

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid subject id")
	}

	var req d.SubjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var subject m.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	req.ApplyUpdates(&subject)
	if err := ctl.DB.WithContext(c.Context()).Save(&subject).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromSubjectModel(subject))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid subject id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"subject_id": id})
}
