package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "schoolku_backend/internals/features/academics/timetable/model"
	masterModel "schoolku_backend/internals/features/master/model"
)

var timetableTestSchema = []string{
	`CREATE TABLE classes (
		class_id TEXT PRIMARY KEY,
		class_name TEXT NOT NULL,
		class_created_at DATETIME,
		class_updated_at DATETIME,
		class_deleted_at DATETIME
	)`,
	`CREATE TABLE sections (
		section_id TEXT PRIMARY KEY,
		section_name TEXT NOT NULL,
		section_created_at DATETIME,
		section_updated_at DATETIME,
		section_deleted_at DATETIME
	)`,
	`CREATE TABLE subjects (
		subject_id TEXT PRIMARY KEY,
		subject_class_id TEXT NOT NULL,
		subject_name TEXT NOT NULL,
		subject_is_theory INTEGER NOT NULL,
		subject_is_practical INTEGER NOT NULL,
		subject_created_at DATETIME,
		subject_updated_at DATETIME,
		subject_deleted_at DATETIME
	)`,
	`CREATE TABLE timetable_entries (
		timetable_id TEXT PRIMARY KEY,
		timetable_class_id TEXT NOT NULL,
		timetable_section_id TEXT NOT NULL,
		timetable_subject_id TEXT NOT NULL,
		timetable_teacher_id TEXT,
		timetable_classroom_id TEXT,
		timetable_day TEXT NOT NULL,
		timetable_period TEXT,
		timetable_start_time DATETIME NOT NULL,
		timetable_end_time DATETIME NOT NULL,
		timetable_room TEXT,
		timetable_created_at DATETIME,
		timetable_updated_at DATETIME,
		timetable_deleted_at DATETIME
	)`,
}

func openTimetableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range timetableTestSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func postTimetable(t *testing.T, app *fiber.App, body map[string]any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/timetable", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestTimetableCreate_TimeSanityReportedBeforeSubjectCheck(t *testing.T) {
	db := openTimetableDB(t)

	classA := uuid.New()
	classB := uuid.New()
	sectionID := uuid.New()
	mathA := uuid.New()
	mathB := uuid.New()

	require.NoError(t, db.Create(&masterModel.ClassModel{ClassID: classA, ClassName: "Class 5"}).Error)
	require.NoError(t, db.Create(&masterModel.ClassModel{ClassID: classB, ClassName: "Class 6"}).Error)
	require.NoError(t, db.Create(&masterModel.SectionModel{SectionID: sectionID, SectionName: "A"}).Error)
	require.NoError(t, db.Create(&masterModel.SubjectModel{
		SubjectID: mathA, SubjectClassID: classA, SubjectName: "Mathematics", SubjectIsTheory: true,
	}).Error)
	require.NoError(t, db.Create(&masterModel.SubjectModel{
		SubjectID: mathB, SubjectClassID: classB, SubjectName: "Mathematics", SubjectIsTheory: true,
	}).Error)

	app := fiber.New()
	ctl := NewTimetableController(db, nil)
	app.Post("/timetable", ctl.Create)

	entry := func(subjectID uuid.UUID, start, end string) map[string]any {
		return map[string]any{
			"class_id":   classA.String(),
			"section_id": sectionID.String(),
			"subject_id": subjectID.String(),
			"day":        "Mon",
			"period":     "1",
			"start_time": start,
			"end_time":   end,
		}
	}

	// Inverted range plus a foreign-class subject: the time complaint
	// wins, the subject is never mentioned.
	status, body := postTimetable(t, app, entry(mathB, "10:00", "09:00"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "time", body["field"])
	msg, _ := body["message"].(string)
	assert.Contains(t, msg, "Start time must be before end time")
	assert.NotContains(t, msg, "subject")

	// With a sane range the subject check takes over.
	status, body = postTimetable(t, app, entry(mathB, "09:00", "10:00"))
	assert.Equal(t, http.StatusBadRequest, status)
	msg, _ = body["message"].(string)
	assert.Contains(t, msg, "does not belong to the selected class")

	// Nothing was persisted by either rejection.
	var n int64
	require.NoError(t, db.Model(&m.TimetableEntryModel{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)

	// A valid slot still goes through.
	status, _ = postTimetable(t, app, entry(mathA, "09:00", "10:00"))
	require.Equal(t, http.StatusCreated, status)
	require.NoError(t, db.Model(&m.TimetableEntryModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
