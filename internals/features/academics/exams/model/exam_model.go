package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamModel struct {
	ExamID uuid.UUID `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`

	ExamClassID   uuid.UUID `gorm:"column:exam_class_id;type:uuid;not null;uniqueIndex:uniq_exam_class_section_name" json:"exam_class_id"`
	ExamSectionID uuid.UUID `gorm:"column:exam_section_id;type:uuid;not null;uniqueIndex:uniq_exam_class_section_name" json:"exam_section_id"`

	ExamName        string `gorm:"column:exam_name;type:varchar(200);not null;uniqueIndex:uniq_exam_class_section_name" json:"exam_name"`
	ExamIsPublished bool   `gorm:"column:exam_is_published;not null;default:false" json:"exam_is_published"`

	// For a finalized exam this records the component exams and their
	// weights as submitted, so a published result is auditable.
	ExamComponents datatypes.JSON `gorm:"column:exam_components;type:jsonb" json:"exam_components,omitempty"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"-"`
}

func (ExamModel) TableName() string {
	return "exams"
}

func (e *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if e.ExamID == uuid.Nil {
		e.ExamID = uuid.New()
	}
	return nil
}

type ExamMarkModel struct {
	ExamMarkID uuid.UUID `gorm:"column:exam_mark_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_mark_id"`

	ExamMarkExamID    uuid.UUID `gorm:"column:exam_mark_exam_id;type:uuid;not null;uniqueIndex:uniq_exam_student_subject;index" json:"exam_mark_exam_id"`
	ExamMarkStudentID uuid.UUID `gorm:"column:exam_mark_student_id;type:uuid;not null;uniqueIndex:uniq_exam_student_subject" json:"exam_mark_student_id"`
	ExamMarkSubjectID uuid.UUID `gorm:"column:exam_mark_subject_id;type:uuid;not null;uniqueIndex:uniq_exam_student_subject" json:"exam_mark_subject_id"`

	ExamMarkScore  decimal.Decimal  `gorm:"column:exam_mark_score;type:numeric(5,2);not null" json:"exam_mark_score"`
	ExamMarkLetter string           `gorm:"column:exam_mark_letter;type:varchar(5)" json:"exam_mark_letter"`
	ExamMarkGPA    *decimal.Decimal `gorm:"column:exam_mark_gpa;type:numeric(3,2)" json:"exam_mark_gpa,omitempty"`

	ExamMarkCreatedAt time.Time `gorm:"column:exam_mark_created_at;autoCreateTime" json:"exam_mark_created_at"`
	ExamMarkUpdatedAt time.Time `gorm:"column:exam_mark_updated_at;autoUpdateTime" json:"exam_mark_updated_at"`
}

func (ExamMarkModel) TableName() string {
	return "exam_marks"
}

func (m *ExamMarkModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamMarkID == uuid.Nil {
		m.ExamMarkID = uuid.New()
	}
	return nil
}
