package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/academics/exams/dto"
	m "schoolku_backend/internals/features/academics/exams/model"
	"schoolku_backend/internals/features/academics/exams/service"
	helper "schoolku_backend/internals/helpers"
)

type GradeScaleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradeScaleController(db *gorm.DB, v *validator.Validate) *GradeScaleController {
	if v == nil {
		v = validator.New()
	}
	return &GradeScaleController{DB: db, Validate: v}
}

func (ctl *GradeScaleController) List(c *fiber.Ctx) error {
	var scales []m.GradeScaleModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Bands", func(db *gorm.DB) *gorm.DB {
			return db.Order("grade_band_min_score DESC")
		}).
		Order("grade_scale_name ASC").
		Find(&scales).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.GradeScaleResponse, 0, len(scales))
	for _, s := range scales {
		out = append(out, d.FromGradeScaleModel(s))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *GradeScaleController) Create(c *fiber.Ctx) error {
	var req d.GradeScaleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if err := service.ValidateBands(req.ServiceBands()); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	scale := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&scale).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromGradeScaleModel(scale))
}

// Activate flips the single-active flag: every other scale is
// deactivated and the chosen one activated in the same transaction.
func (ctl *GradeScaleController) Activate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid grade scale id")
	}

	var scale m.GradeScaleModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&scale, "grade_scale_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&m.GradeScaleModel{}).
			Where("grade_scale_is_active = ? AND grade_scale_id <> ?", true, id).
			Update("grade_scale_is_active", false).Error; err != nil {
			return err
		}
		scale.GradeScaleIsActive = true
		return tx.Save(&scale).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Grade scale not found")
		}
		return helper.JsonPGError(c, err)
	}

	return helper.JsonUpdated(c, "Grade scale activated", d.FromGradeScaleModel(scale))
}

func (ctl *GradeScaleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid grade scale id")
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&m.GradeScaleModel{}, "grade_scale_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&m.GradeBandModel{}, "grade_band_scale_id = ?", id).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Grade scale not found")
		}
		return helper.JsonPGError(c, err)
	}
	return helper.JsonDeleted(c, "", fiber.Map{"grade_scale_id": id})
}
