package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel: a subject taught in one class. One "Biology" per class,
// enforced by the unique (class, name) index.
type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	SubjectClassID uuid.UUID `gorm:"column:subject_class_id;type:uuid;not null;uniqueIndex:uniq_subject_class_name" json:"subject_class_id"`
	SubjectName    string    `gorm:"column:subject_name;size:255;not null;uniqueIndex:uniq_subject_class_name" json:"subject_name"`

	SubjectIsTheory    bool `gorm:"column:subject_is_theory;not null;default:true" json:"subject_is_theory"`
	SubjectIsPractical bool `gorm:"column:subject_is_practical;not null;default:false" json:"subject_is_practical"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;type:timestamptz;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
