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
	masterModel "schoolku_backend/internals/features/master/model"
	peopleModel "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB, v *validator.Validate) *ExamController {
	if v == nil {
		v = validator.New()
	}
	return &ExamController{DB: db, Validate: v}
}

func (ctl *ExamController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.ExamModel{})

	if classID, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
	} else if classID != nil {
		q = q.Where("exam_class_id = ?", *classID)
	}
	if sectionID, err := helper.ParseUUIDQuery(c, "section_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid section_id")
	} else if sectionID != nil {
		q = q.Where("exam_section_id = ?", *sectionID)
	}
	if published := c.Query("published"); published != "" {
		q = q.Where("exam_is_published = ?", published == "true")
	}

	var exams []m.ExamModel
	if err := q.Order("exam_created_at DESC").Find(&exams).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.ExamResponse, 0, len(exams))
	for _, e := range exams {
		out = append(out, d.FromExamModel(e))
	}
	return helper.JsonList(c, "", out, nil)
}

func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid exam id")
	}
	var exam m.ExamModel
	if err := ctl.DB.WithContext(c.Context()).First(&exam, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromExamModel(exam))
}

func (ctl *ExamController) Create(c *fiber.Ctx) error {
	var req d.ExamCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	exam := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&exam).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromExamModel(exam))
}

func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid exam id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.ExamModel{}, "exam_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Exam not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"exam_id": id})
}

// ListMarks returns every mark of one exam.
func (ctl *ExamController) ListMarks(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid exam id")
	}

	var marks []m.ExamMarkModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("exam_mark_exam_id = ?", examID).
		Order("exam_mark_student_id ASC, exam_mark_subject_id ASC").
		Find(&marks).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.ExamMarkResponse, 0, len(marks))
	for _, mark := range marks {
		out = append(out, d.FromExamMarkModel(mark))
	}
	return helper.JsonList(c, "", out, nil)
}

// UpsertMark records or replaces one raw mark, stamping letter/gpa from
// the active scale.
func (ctl *ExamController) UpsertMark(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid exam id")
	}

	var req d.ExamMarkUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if req.Score.IsNegative() {
		return helper.JsonError(c, http.StatusBadRequest, "score must not be negative")
	}

	db := ctl.DB.WithContext(c.Context())

	var exam m.ExamModel
	if err := db.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var subject masterModel.SubjectModel
	if err := db.First(&subject, "subject_id = ?", req.SubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusBadRequest, "Subject not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if subject.SubjectClassID != exam.ExamClassID {
		return helper.JsonError(c, http.StatusBadRequest, "Subject does not belong to the exam's class")
	}

	var student peopleModel.StudentModel
	if err := db.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusBadRequest, "Student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if student.StudentClassID != exam.ExamClassID || student.StudentSectionID != exam.ExamSectionID {
		return helper.JsonError(c, http.StatusBadRequest, "Student is not in the class/section for this exam")
	}

	var mark m.ExamMarkModel
	created := false
	err = db.Where(
		"exam_mark_exam_id = ? AND exam_mark_student_id = ? AND exam_mark_subject_id = ?",
		examID, req.StudentID, req.SubjectID,
	).First(&mark).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		mark = m.ExamMarkModel{
			ExamMarkExamID:    examID,
			ExamMarkStudentID: req.StudentID,
			ExamMarkSubjectID: req.SubjectID,
		}
		created = true
	case err != nil:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	mark.ExamMarkScore = req.Score
	if err := service.ApplyGrade(db, &mark); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if created {
		err = db.Create(&mark).Error
	} else {
		err = db.Save(&mark).Error
	}
	if err != nil {
		return helper.JsonPGError(c, err)
	}

	if created {
		return helper.JsonCreated(c, "", d.FromExamMarkModel(mark))
	}
	return helper.JsonUpdated(c, "", d.FromExamMarkModel(mark))
}
