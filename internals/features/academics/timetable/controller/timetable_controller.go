package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/academics/timetable/dto"
	m "schoolku_backend/internals/features/academics/timetable/model"
	"schoolku_backend/internals/features/academics/timetable/service"
	masterModel "schoolku_backend/internals/features/master/model"
	peopleModel "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	if v == nil {
		v = validator.New()
	}
	return &TimetableController{DB: db, Validate: v}
}

// jsonConflict keeps the standard error envelope but adds the offending
// field and the conflicting row so the caller can resolve the clash.
func jsonConflict(c *fiber.Ctx, ce *service.ConflictError) error {
	return c.Status(http.StatusConflict).JSON(fiber.Map{
		"success":        false,
		"message":        ce.Message,
		"error_code":     "CONFLICT",
		"field":          ce.Field,
		"conflicting_id": ce.ConflictingID,
	})
}

func (ctl *TimetableController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.TimetableEntryModel{})

	if classID, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid class_id")
	} else if classID != nil {
		q = q.Where("timetable_class_id = ?", *classID)
	}
	if sectionID, err := helper.ParseUUIDQuery(c, "section_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid section_id")
	} else if sectionID != nil {
		q = q.Where("timetable_section_id = ?", *sectionID)
	}
	if teacherID, err := helper.ParseUUIDQuery(c, "teacher_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher_id")
	} else if teacherID != nil {
		q = q.Where("timetable_teacher_id = ?", *teacherID)
	}
	if day := c.Query("day"); day != "" {
		q = q.Where("timetable_day = ?", day)
	}

	var entries []m.TimetableEntryModel
	if err := q.Order("timetable_day ASC, timetable_start_time ASC").Find(&entries).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	out := make([]d.TimetableEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, d.FromTimetableEntryModel(e))
	}
	return helper.JsonList(c, "", out, nil)
}

// Week groups a class/section's entries Mon..Sun, each day sorted by
// start time.
func (ctl *TimetableController) Week(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil || classID == nil {
		return helper.JsonError(c, http.StatusBadRequest, "class_id is required")
	}
	sectionID, err := helper.ParseUUIDQuery(c, "section_id")
	if err != nil || sectionID == nil {
		return helper.JsonError(c, http.StatusBadRequest, "section_id is required")
	}

	var entries []m.TimetableEntryModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("timetable_class_id = ? AND timetable_section_id = ?", *classID, *sectionID).
		Order("timetable_start_time ASC, timetable_period ASC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	week := make(map[string][]d.TimetableEntryResponse, len(m.DayCodes))
	for _, day := range m.DayCodes {
		week[day] = []d.TimetableEntryResponse{}
	}
	for _, e := range entries {
		week[e.TimetableDay] = append(week[e.TimetableDay], d.FromTimetableEntryModel(e))
	}
	return helper.JsonOK(c, "", week)
}

func (ctl *TimetableController) Create(c *fiber.Ctx) error {
	var req d.TimetableEntryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	entry, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if fail := ctl.validateEntry(c, &entry); fail != nil {
		return fail
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromTimetableEntryModel(entry))
}

func (ctl *TimetableController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid timetable id")
	}

	var req d.TimetableEntryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var entry m.TimetableEntryModel
	if err := ctl.DB.WithContext(c.Context()).First(&entry, "timetable_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Timetable entry not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyUpdates(&entry); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if fail := ctl.validateEntry(c, &entry); fail != nil {
		return fail
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&entry).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromTimetableEntryModel(entry))
}

func (ctl *TimetableController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid timetable id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.TimetableEntryModel{}, "timetable_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Timetable entry not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"timetable_id": id})
}

// validateEntry runs the referential checks and the scheduling
// validator against the current persisted set. Returns a response
// already written on failure, nil when the entry may be saved.
func (ctl *TimetableController) validateEntry(c *fiber.Ctx, entry *m.TimetableEntryModel) error {
	db := ctl.DB.WithContext(c.Context())

	// A malformed time range is reported before anything else, so the
	// caller never sees a referential error on a slot that could not be
	// valid at any reference.
	if !entry.TimetableStartTime.Before(entry.TimetableEndTime) {
		return jsonConflict(c, &service.ConflictError{
			Field:   "time",
			Message: "Start time must be before end time.",
		})
	}

	// Subject must belong to the entry's class.
	var subject masterModel.SubjectModel
	if err := db.First(&subject, "subject_id = ?", entry.TimetableSubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusBadRequest, "Subject not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if subject.SubjectClassID != entry.TimetableClassID {
		return helper.JsonError(c, http.StatusBadRequest, "Selected subject does not belong to the selected class")
	}

	// Same-day rows the candidate could clash with, own row excluded.
	var others []m.TimetableEntryModel
	if err := db.
		Where("timetable_day = ?", entry.TimetableDay).
		Where("timetable_id <> ?", entry.TimetableID).
		Find(&others).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	classNames, sectionNames, err := ctl.lookupLabels(db, others)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	existing := make([]service.Slot, 0, len(others))
	for _, o := range others {
		room := ""
		if o.TimetableRoom != nil {
			room = *o.TimetableRoom
		}
		existing = append(existing, service.Slot{
			ID:           o.TimetableID,
			ClassID:      o.TimetableClassID,
			SectionID:    o.TimetableSectionID,
			TeacherID:    o.TimetableTeacherID,
			ClassroomID:  o.TimetableClassroomID,
			Room:         room,
			StartTime:    o.TimetableStartTime,
			EndTime:      o.TimetableEndTime,
			ClassLabel:   classNames[o.TimetableClassID],
			SectionLabel: sectionNames[o.TimetableSectionID],
		})
	}

	candidate := service.Slot{
		ID:          entry.TimetableID,
		ClassID:     entry.TimetableClassID,
		SectionID:   entry.TimetableSectionID,
		TeacherID:   entry.TimetableTeacherID,
		ClassroomID: entry.TimetableClassroomID,
		StartTime:   entry.TimetableStartTime,
		EndTime:     entry.TimetableEndTime,
	}
	if entry.TimetableRoom != nil {
		candidate.Room = *entry.TimetableRoom
		candidate.RoomLabel = *entry.TimetableRoom
	}

	var capacity *int
	enrolled := 0
	if entry.TimetableClassroomID != nil {
		var room m.ClassroomModel
		if err := db.First(&room, "classroom_id = ?", *entry.TimetableClassroomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusBadRequest, "Classroom not found")
			}
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		capacity = room.ClassroomCapacity
		candidate.RoomLabel = room.ClassroomName

		var count int64
		if err := db.Model(&peopleModel.StudentModel{}).
			Where("student_class_id = ? AND student_section_id = ?", entry.TimetableClassID, entry.TimetableSectionID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		enrolled = int(count)
	}

	if ce := service.ValidateSlot(candidate, existing, enrolled, capacity); ce != nil {
		return jsonConflict(c, ce)
	}
	return nil
}

// lookupLabels resolves class and section names in two bulk queries so
// conflict messages can name the other slot.
func (ctl *TimetableController) lookupLabels(db *gorm.DB, entries []m.TimetableEntryModel) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	classNames := map[uuid.UUID]string{}
	sectionNames := map[uuid.UUID]string{}
	if len(entries) == 0 {
		return classNames, sectionNames, nil
	}

	classIDs := make([]uuid.UUID, 0, len(entries))
	sectionIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		classIDs = append(classIDs, e.TimetableClassID)
		sectionIDs = append(sectionIDs, e.TimetableSectionID)
	}

	var classes []masterModel.ClassModel
	if err := db.Where("class_id IN ?", classIDs).Find(&classes).Error; err != nil {
		return nil, nil, err
	}
	for _, cls := range classes {
		classNames[cls.ClassID] = cls.ClassName
	}

	var sections []masterModel.SectionModel
	if err := db.Where("section_id IN ?", sectionIDs).Find(&sections).Error; err != nil {
		return nil, nil, err
	}
	for _, s := range sections {
		sectionNames[s.SectionID] = s.SectionName
	}
	return classNames, sectionNames, nil
}
