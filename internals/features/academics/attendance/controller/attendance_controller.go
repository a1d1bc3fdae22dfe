package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/academics/attendance/dto"
	m "schoolku_backend/internals/features/academics/attendance/model"
	ttModel "schoolku_backend/internals/features/academics/timetable/model"
	masterModel "schoolku_backend/internals/features/master/model"
	peopleModel "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{DB: db, Validate: v}
}

func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.AttendanceRecordModel{})

	if raw := c.Query("date"); raw != "" {
		date, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
		q = q.Where("attendance_date = ?", date)
	}
	if timetableID, err := helper.ParseUUIDQuery(c, "timetable_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid timetable_id")
	} else if timetableID != nil {
		q = q.Where("attendance_timetable_id = ?", *timetableID)
	}
	if studentID, err := helper.ParseUUIDQuery(c, "student_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
	} else if studentID != nil {
		q = q.Where("attendance_student_id = ?", *studentID)
	}
	if classID, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
	} else if classID != nil {
		q = q.Where("attendance_timetable_id IN (?)",
			ctl.DB.Model(&ttModel.TimetableEntryModel{}).
				Select("timetable_id").
				Where("timetable_class_id = ?", *classID))
	}

	var records []m.AttendanceRecordModel
	if err := q.Order("attendance_date DESC, attendance_student_id ASC").Find(&records).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.AttendanceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, d.FromAttendanceRecordModel(r))
	}
	return helper.JsonList(c, "", out, nil)
}

// Roster returns a class sheet for one slot and date: every enrolled
// student with their recorded status, defaulting to PRESENT when the
// sheet has not been marked yet.
func (ctl *AttendanceController) Roster(c *fiber.Ctx) error {
	timetableID, err := helper.ParseUUIDQuery(c, "timetable_id")
	if err != nil || timetableID == nil {
		return helper.JsonError(c, http.StatusBadRequest, "timetable_id is required")
	}
	date, err := helper.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
	}

	db := ctl.DB.WithContext(c.Context())

	var entry ttModel.TimetableEntryModel
	if err := db.First(&entry, "timetable_id = ?", *timetableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Timetable entry not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var students []peopleModel.StudentModel
	if err := db.
		Where("student_class_id = ? AND student_section_id = ?", entry.TimetableClassID, entry.TimetableSectionID).
		Order("student_roll_no ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var existing []m.AttendanceRecordModel
	if err := db.
		Where("attendance_timetable_id = ? AND attendance_date = ?", *timetableID, date).
		Find(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	recorded := make(map[string]m.AttendanceRecordModel, len(existing))
	for _, r := range existing {
		recorded[r.AttendanceStudentID.String()] = r
	}

	rows := make([]d.RosterRow, 0, len(students))
	for _, s := range students {
		row := d.RosterRow{
			StudentID:   s.StudentID,
			StudentName: s.StudentFullName,
			RollNo:      s.StudentRollNo,
			Status:      m.StatusPresent,
		}
		if rec, ok := recorded[s.StudentID.String()]; ok {
			row.Status = rec.AttendanceStatus
			row.Remarks = rec.AttendanceRemarks
			id := rec.AttendanceID
			row.AttendanceID = &id
		}
		rows = append(rows, row)
	}

	className, sectionName, subjectName, err := ctl.slotLabels(db, entry)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", d.RosterResponse{
		TimetableID: entry.TimetableID,
		Date:        date.Format("2006-01-02"),
		Class:       className,
		Section:     sectionName,
		Subject:     subjectName,
		Rows:        rows,
	})
}

// SubmitRoster bulk-upserts one sheet. Each (timetable, date, student)
// row is created or overwritten; the response reports both counts.
func (ctl *AttendanceController) SubmitRoster(c *fiber.Ctx) error {
	var req d.RosterSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.Context())

	var entry ttModel.TimetableEntryModel
	if err := db.First(&entry, "timetable_id = ?", req.TimetableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Timetable entry not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	created, updated := 0, 0
	if err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range req.Rows {
			status := row.Status
			if !m.ValidStatus(status) {
				status = m.StatusPresent
			}

			var rec m.AttendanceRecordModel
			err := tx.Where(
				"attendance_timetable_id = ? AND attendance_date = ? AND attendance_student_id = ?",
				req.TimetableID, date, row.StudentID,
			).First(&rec).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				rec = m.AttendanceRecordModel{
					AttendanceTimetableID: req.TimetableID,
					AttendanceDate:        date,
					AttendanceStudentID:   row.StudentID,
					AttendanceStatus:      status,
					AttendanceRemarks:     row.Remarks,
					AttendanceMarkedBy:    markedBy,
				}
				if err := tx.Create(&rec).Error; err != nil {
					return err
				}
				created++
			case err != nil:
				return err
			default:
				rec.AttendanceStatus = status
				rec.AttendanceRemarks = row.Remarks
				rec.AttendanceMarkedBy = markedBy
				if err := tx.Save(&rec).Error; err != nil {
					return err
				}
				updated++
			}
		}
		return nil
	}); err != nil {
		return helper.JsonPGError(c, err)
	}

	return helper.JsonOK(c, "Attendance recorded", d.RosterSubmitResponse{
		Created: created,
		Updated: updated,
	})
}

func (ctl *AttendanceController) slotLabels(db *gorm.DB, entry ttModel.TimetableEntryModel) (string, string, string, error) {
	var cls masterModel.ClassModel
	if err := db.First(&cls, "class_id = ?", entry.TimetableClassID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", "", err
	}
	var sec masterModel.SectionModel
	if err := db.First(&sec, "section_id = ?", entry.TimetableSectionID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", "", err
	}
	var sub masterModel.SubjectModel
	if err := db.First(&sub, "subject_id = ?", entry.TimetableSubjectID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", "", err
	}
	return cls.ClassName, sec.SectionName, sub.SubjectName, nil
}
