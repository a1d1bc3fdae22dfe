package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "schoolku_backend/internals/features/academics/exams/model"
	masterModel "schoolku_backend/internals/features/master/model"
	peopleModel "schoolku_backend/internals/features/people/model"
)

// The production schema is created by SQL migrations with postgres
// defaults, so the test schema is written out by hand for sqlite.
var finalizeTestSchema = []string{
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
	`CREATE TABLE students (
		student_id TEXT PRIMARY KEY,
		student_user_id TEXT,
		student_full_name TEXT NOT NULL,
		student_gender TEXT,
		student_date_of_birth DATETIME,
		student_class_id TEXT NOT NULL,
		student_section_id TEXT NOT NULL,
		student_roll_no INTEGER NOT NULL,
		student_admission_no TEXT,
		student_guardian_name TEXT,
		student_guardian_phone TEXT,
		student_contact_email TEXT,
		student_contact_phone TEXT,
		student_address TEXT,
		student_photo_url TEXT,
		student_created_at DATETIME,
		student_updated_at DATETIME,
		student_deleted_at DATETIME
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
	`CREATE TABLE exams (
		exam_id TEXT PRIMARY KEY,
		exam_class_id TEXT NOT NULL,
		exam_section_id TEXT NOT NULL,
		exam_name TEXT NOT NULL,
		exam_is_published INTEGER NOT NULL DEFAULT 0,
		exam_components TEXT,
		exam_created_at DATETIME,
		exam_updated_at DATETIME,
		exam_deleted_at DATETIME,
		UNIQUE (exam_class_id, exam_section_id, exam_name)
	)`,
	`CREATE TABLE exam_marks (
		exam_mark_id TEXT PRIMARY KEY,
		exam_mark_exam_id TEXT NOT NULL,
		exam_mark_student_id TEXT NOT NULL,
		exam_mark_subject_id TEXT NOT NULL,
		exam_mark_score NUMERIC NOT NULL,
		exam_mark_letter TEXT,
		exam_mark_gpa NUMERIC,
		exam_mark_created_at DATETIME,
		exam_mark_updated_at DATETIME,
		UNIQUE (exam_mark_exam_id, exam_mark_student_id, exam_mark_subject_id)
	)`,
	`CREATE TABLE grade_scales (
		grade_scale_id TEXT PRIMARY KEY,
		grade_scale_name TEXT NOT NULL,
		grade_scale_is_active INTEGER NOT NULL,
		grade_scale_created_at DATETIME,
		grade_scale_updated_at DATETIME,
		grade_scale_deleted_at DATETIME
	)`,
	`CREATE TABLE grade_bands (
		grade_band_id TEXT PRIMARY KEY,
		grade_band_scale_id TEXT NOT NULL,
		grade_band_min_score INTEGER NOT NULL,
		grade_band_max_score INTEGER NOT NULL,
		grade_band_letter TEXT NOT NULL,
		grade_band_gpa NUMERIC NOT NULL,
		grade_band_created_at DATETIME,
		grade_band_updated_at DATETIME
	)`,
}

func openFinalizeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection would get its own empty in-memory
	// database, so the pool is pinned to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range finalizeTestSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

// finalizeFixture is one class/section with two students, two subjects,
// two component exams and an active grade scale.
//
// Component marks (midterm weight 40, year final weight 60):
//
//	Anwar  math  80 / 70  -> 74    A  4.00
//	Anwar  eng   60 / 90  -> 78    A  4.00
//	Bithi  math  50 / 40  -> 44    F  0.00
//	Bithi  eng   -- / --  ->  0    F  0.00
type finalizeFixture struct {
	classID   uuid.UUID
	sectionID uuid.UUID
	midterm   uuid.UUID
	yearFinal uuid.UUID
	anwar     uuid.UUID
	bithi     uuid.UUID
	math      uuid.UUID
	eng       uuid.UUID
}

func (fx finalizeFixture) parts() []Component {
	return []Component{
		{ExamID: fx.midterm, Weight: 40},
		{ExamID: fx.yearFinal, Weight: 60},
	}
}

func seedFinalizeFixture(t *testing.T, db *gorm.DB) finalizeFixture {
	t.Helper()
	fx := finalizeFixture{
		classID:   uuid.New(),
		sectionID: uuid.New(),
		midterm:   uuid.New(),
		yearFinal: uuid.New(),
		anwar:     uuid.New(),
		bithi:     uuid.New(),
		math:      uuid.New(),
		eng:       uuid.New(),
	}

	require.NoError(t, db.Create(&masterModel.ClassModel{
		ClassID: fx.classID, ClassName: "Class 5",
	}).Error)
	require.NoError(t, db.Create(&masterModel.SectionModel{
		SectionID: fx.sectionID, SectionName: "A",
	}).Error)

	students := []peopleModel.StudentModel{
		{StudentID: fx.anwar, StudentFullName: "Anwar Hossain",
			StudentClassID: fx.classID, StudentSectionID: fx.sectionID, StudentRollNo: 1},
		{StudentID: fx.bithi, StudentFullName: "Bithi Akter",
			StudentClassID: fx.classID, StudentSectionID: fx.sectionID, StudentRollNo: 2},
	}
	require.NoError(t, db.Create(&students).Error)

	subjects := []masterModel.SubjectModel{
		{SubjectID: fx.math, SubjectClassID: fx.classID, SubjectName: "Mathematics", SubjectIsTheory: true},
		{SubjectID: fx.eng, SubjectClassID: fx.classID, SubjectName: "English", SubjectIsTheory: true},
	}
	require.NoError(t, db.Create(&subjects).Error)

	exams := []m.ExamModel{
		{ExamID: fx.midterm, ExamClassID: fx.classID, ExamSectionID: fx.sectionID, ExamName: "Midterm"},
		{ExamID: fx.yearFinal, ExamClassID: fx.classID, ExamSectionID: fx.sectionID, ExamName: "Year Final"},
	}
	require.NoError(t, db.Create(&exams).Error)

	scale := m.GradeScaleModel{
		GradeScaleID:       uuid.New(),
		GradeScaleName:     "Standard",
		GradeScaleIsActive: true,
		Bands: []m.GradeBandModel{
			{GradeBandID: uuid.New(), GradeBandMinScore: 80, GradeBandMaxScore: 100, GradeBandLetter: "A+", GradeBandGPA: dec(t, "5.00")},
			{GradeBandID: uuid.New(), GradeBandMinScore: 70, GradeBandMaxScore: 79, GradeBandLetter: "A", GradeBandGPA: dec(t, "4.00")},
			{GradeBandID: uuid.New(), GradeBandMinScore: 60, GradeBandMaxScore: 69, GradeBandLetter: "B", GradeBandGPA: dec(t, "3.50")},
			{GradeBandID: uuid.New(), GradeBandMinScore: 50, GradeBandMaxScore: 59, GradeBandLetter: "C", GradeBandGPA: dec(t, "3.00")},
			{GradeBandID: uuid.New(), GradeBandMinScore: 0, GradeBandMaxScore: 49, GradeBandLetter: "F", GradeBandGPA: dec(t, "0.00")},
		},
	}
	require.NoError(t, db.Create(&scale).Error)

	marks := []m.ExamMarkModel{
		{ExamMarkID: uuid.New(), ExamMarkExamID: fx.midterm, ExamMarkStudentID: fx.anwar, ExamMarkSubjectID: fx.math, ExamMarkScore: dec(t, "80")},
		{ExamMarkID: uuid.New(), ExamMarkExamID: fx.midterm, ExamMarkStudentID: fx.anwar, ExamMarkSubjectID: fx.eng, ExamMarkScore: dec(t, "60")},
		{ExamMarkID: uuid.New(), ExamMarkExamID: fx.midterm, ExamMarkStudentID: fx.bithi, ExamMarkSubjectID: fx.math, ExamMarkScore: dec(t, "50")},
		{ExamMarkID: uuid.New(), ExamMarkExamID: fx.yearFinal, ExamMarkStudentID: fx.anwar, ExamMarkSubjectID: fx.math, ExamMarkScore: dec(t, "70")},
		{ExamMarkID: uuid.New(), ExamMarkExamID: fx.yearFinal, ExamMarkStudentID: fx.anwar, ExamMarkSubjectID: fx.eng, ExamMarkScore: dec(t, "90")},
		{ExamMarkID: uuid.New(), ExamMarkExamID: fx.yearFinal, ExamMarkStudentID: fx.bithi, ExamMarkSubjectID: fx.math, ExamMarkScore: dec(t, "40")},
	}
	require.NoError(t, db.Create(&marks).Error)

	return fx
}

func loadFinalMark(t *testing.T, db *gorm.DB, examID, studentID, subjectID uuid.UUID) m.ExamMarkModel {
	t.Helper()
	var mark m.ExamMarkModel
	require.NoError(t, db.Where(
		"exam_mark_exam_id = ? AND exam_mark_student_id = ? AND exam_mark_subject_id = ?",
		examID, studentID, subjectID,
	).First(&mark).Error)
	return mark
}

func countFinalMarks(t *testing.T, db *gorm.DB, examID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&m.ExamMarkModel{}).
		Where("exam_mark_exam_id = ?", examID).Count(&n).Error)
	return n
}

func TestFinalizeAndPublish_ComputesGradesAndPublishes(t *testing.T) {
	db := openFinalizeDB(t)
	fx := seedFinalizeFixture(t, db)

	res, err := FinalizeAndPublish(context.Background(), db, FinalizeRequest{
		ClassID:   fx.classID,
		SectionID: fx.sectionID,
		Year:      2026,
		Parts:     fx.parts(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Final Result 2026", res.FinalExamName)
	assert.True(t, res.Published)
	assert.Equal(t, 4, res.Upserts)
	assert.NotEqual(t, uuid.Nil, res.FinalExamID)

	var finalExam m.ExamModel
	require.NoError(t, db.First(&finalExam, "exam_id = ?", res.FinalExamID).Error)
	assert.True(t, finalExam.ExamIsPublished)
	assert.NotEmpty(t, finalExam.ExamComponents)

	// 80*.4 + 70*.6 = 74 -> A 4.00
	mark := loadFinalMark(t, db, res.FinalExamID, fx.anwar, fx.math)
	assert.True(t, mark.ExamMarkScore.Equal(dec(t, "74")), "got %s", mark.ExamMarkScore)
	assert.Equal(t, "A", mark.ExamMarkLetter)
	require.NotNil(t, mark.ExamMarkGPA)
	assert.True(t, mark.ExamMarkGPA.Equal(dec(t, "4")), "got %s", mark.ExamMarkGPA)

	// Bithi never sat English; both components count as zero.
	missing := loadFinalMark(t, db, res.FinalExamID, fx.bithi, fx.eng)
	assert.True(t, missing.ExamMarkScore.IsZero(), "got %s", missing.ExamMarkScore)
	assert.Equal(t, "F", missing.ExamMarkLetter)

	assert.EqualValues(t, 4, countFinalMarks(t, db, res.FinalExamID))
}

func TestFinalizeAndPublish_SecondRunReusesExamAndOverwrites(t *testing.T) {
	db := openFinalizeDB(t)
	fx := seedFinalizeFixture(t, db)
	req := FinalizeRequest{
		ClassID:   fx.classID,
		SectionID: fx.sectionID,
		Year:      2026,
		Parts:     fx.parts(),
	}

	first, err := FinalizeAndPublish(context.Background(), db, req)
	require.NoError(t, err)

	// A corrected component mark must flow into the re-run.
	// 80*.4 + 100*.6 = 92 -> A+ 5.00
	require.NoError(t, db.Model(&m.ExamMarkModel{}).
		Where("exam_mark_exam_id = ? AND exam_mark_student_id = ? AND exam_mark_subject_id = ?",
			fx.yearFinal, fx.anwar, fx.math).
		Update("exam_mark_score", dec(t, "100")).Error)

	second, err := FinalizeAndPublish(context.Background(), db, req)
	require.NoError(t, err)

	assert.Equal(t, first.FinalExamID, second.FinalExamID)
	assert.Equal(t, first.FinalExamName, second.FinalExamName)
	assert.Equal(t, 4, second.Upserts)

	// Overwrite, not duplicate: still one row per (student, subject).
	assert.EqualValues(t, 4, countFinalMarks(t, db, second.FinalExamID))
	var totalMarks int64
	require.NoError(t, db.Model(&m.ExamMarkModel{}).Count(&totalMarks).Error)
	assert.EqualValues(t, 10, totalMarks, "6 seeded component marks + 4 final marks")

	mark := loadFinalMark(t, db, second.FinalExamID, fx.anwar, fx.math)
	assert.True(t, mark.ExamMarkScore.Equal(dec(t, "92")), "got %s", mark.ExamMarkScore)
	assert.Equal(t, "A+", mark.ExamMarkLetter)
	require.NotNil(t, mark.ExamMarkGPA)
	assert.True(t, mark.ExamMarkGPA.Equal(dec(t, "5")), "got %s", mark.ExamMarkGPA)

	// Only one final exam row exists.
	var examCount int64
	require.NoError(t, db.Model(&m.ExamModel{}).
		Where("exam_name = ?", "Final Result 2026").Count(&examCount).Error)
	assert.EqualValues(t, 1, examCount)
}

func TestFinalizeAndPublish_Preconditions(t *testing.T) {
	db := openFinalizeDB(t)
	fx := seedFinalizeFixture(t, db)

	tests := []struct {
		name    string
		req     FinalizeRequest
		wantErr string
	}{
		{
			name: "unknown class",
			req: FinalizeRequest{
				ClassID: uuid.New(), SectionID: fx.sectionID, Year: 2026, Parts: fx.parts(),
			},
			wantErr: "Invalid class_id",
		},
		{
			name: "unknown section",
			req: FinalizeRequest{
				ClassID: fx.classID, SectionID: uuid.New(), Year: 2026, Parts: fx.parts(),
			},
			wantErr: "Invalid section_id",
		},
		{
			name: "unknown exam id",
			req: FinalizeRequest{
				ClassID: fx.classID, SectionID: fx.sectionID, Year: 2026,
				Parts: []Component{
					{ExamID: fx.midterm, Weight: 40},
					{ExamID: uuid.New(), Weight: 60},
				},
			},
			wantErr: "One or more exam_id not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FinalizeAndPublish(context.Background(), db, tt.req)
			assert.Nil(t, res)
			require.Error(t, err)
			var pre *PreconditionError
			require.ErrorAs(t, err, &pre)
			assert.Contains(t, pre.Message, tt.wantErr)
		})
	}

	// Empty cohort: a real class with no students behind it.
	empty := uuid.New()
	require.NoError(t, db.Create(&masterModel.ClassModel{
		ClassID: empty, ClassName: "Class 10",
	}).Error)
	_, err := FinalizeAndPublish(context.Background(), db, FinalizeRequest{
		ClassID: empty, SectionID: fx.sectionID, Year: 2026, Parts: fx.parts(),
	})
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Contains(t, pre.Message, "No students or subjects found")

	// Failed runs never leave a final exam behind.
	var n int64
	require.NoError(t, db.Model(&m.ExamModel{}).
		Where("exam_name = ?", "Final Result 2026").Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestFinalizeAndPublish_PublishFlagAndCustomName(t *testing.T) {
	db := openFinalizeDB(t)
	fx := seedFinalizeFixture(t, db)

	name := "Annual Result 2026"
	noPublish := false
	req := FinalizeRequest{
		ClassID:   fx.classID,
		SectionID: fx.sectionID,
		Year:      2026,
		Parts:     fx.parts(),
		Name:      &name,
		Publish:   &noPublish,
	}

	first, err := FinalizeAndPublish(context.Background(), db, req)
	require.NoError(t, err)
	assert.Equal(t, name, first.FinalExamName)
	assert.False(t, first.Published)

	var finalExam m.ExamModel
	require.NoError(t, db.First(&finalExam, "exam_id = ?", first.FinalExamID).Error)
	assert.False(t, finalExam.ExamIsPublished)

	// Publish defaults to true when the flag is omitted; re-running
	// flips the same exam to published.
	req.Publish = nil
	second, err := FinalizeAndPublish(context.Background(), db, req)
	require.NoError(t, err)
	assert.Equal(t, first.FinalExamID, second.FinalExamID)
	assert.True(t, second.Published)
}
