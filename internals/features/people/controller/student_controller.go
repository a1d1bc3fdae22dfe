package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	masterModel "schoolku_backend/internals/features/master/model"
	d "schoolku_backend/internals/features/people/dto"
	m "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

var studentSortColumns = map[string]string{
	"created_at": "student_created_at",
	"full_name":  "student_full_name",
	"roll_no":    "student_roll_no",
}

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	if v == nil {
		v = validator.New()
	}
	return &StudentController{DB: db, Validate: v}
}

// sectionBelongsToClass checks the class_sections join so a student can
// only sit in a section that its class actually offers.
func sectionBelongsToClass(db *gorm.DB, classID, sectionID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&masterModel.ClassSectionModel{}).
		Where("class_id = ? AND section_id = ?", classID, sectionID).
		Count(&count).Error
	return count > 0, err
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "roll_no", "asc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(studentSortColumns, "roll_no")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.Context()).Model(&m.StudentModel{})
	if classID, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
	} else if classID != nil {
		q = q.Where("student_class_id = ?", *classID)
	}
	if sectionID, err := helper.ParseUUIDQuery(c, "section_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid section_id")
	} else if sectionID != nil {
		q = q.Where("student_section_id = ?", *sectionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var students []m.StudentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&students).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, d.FromStudentModel(s))
	}
	return helper.JsonList(c, "", out, helper.BuildMeta(total, p))
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	var student m.StudentModel
	if err := ctl.DB.WithContext(c.Context()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromStudentModel(student))
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	ok, err := sectionBelongsToClass(ctl.DB.WithContext(c.Context()), req.ClassID, req.SectionID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "Selected section does not belong to the selected class")
	}

	student, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromStudentModel(student))
}

func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}

	var req d.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var student m.StudentModel
	if err := ctl.DB.WithContext(c.Context()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyUpdates(&student); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if req.ClassID != nil || req.SectionID != nil {
		ok, err := sectionBelongsToClass(ctl.DB.WithContext(c.Context()), student.StudentClassID, student.StudentSectionID)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if !ok {
			return helper.JsonError(c, http.StatusBadRequest, "Selected section does not belong to the selected class")
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&student).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromStudentModel(student))
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Student not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"student_id": id})
}
