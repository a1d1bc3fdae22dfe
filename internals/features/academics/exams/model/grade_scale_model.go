package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GradeScaleModel is a named set of grade bands. At most one scale is
// active at a time; activation flips the flag inside one transaction.
type GradeScaleModel struct {
	GradeScaleID uuid.UUID `gorm:"column:grade_scale_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_scale_id"`

	GradeScaleName     string `gorm:"column:grade_scale_name;type:varchar(100);not null;uniqueIndex" json:"grade_scale_name"`
	GradeScaleIsActive bool   `gorm:"column:grade_scale_is_active;not null;default:false;index" json:"grade_scale_is_active"`

	Bands []GradeBandModel `gorm:"foreignKey:GradeBandScaleID;references:GradeScaleID" json:"bands,omitempty"`

	GradeScaleCreatedAt time.Time      `gorm:"column:grade_scale_created_at;autoCreateTime" json:"grade_scale_created_at"`
	GradeScaleUpdatedAt time.Time      `gorm:"column:grade_scale_updated_at;autoUpdateTime" json:"grade_scale_updated_at"`
	GradeScaleDeletedAt gorm.DeletedAt `gorm:"column:grade_scale_deleted_at;index" json:"-"`
}

func (GradeScaleModel) TableName() string {
	return "grade_scales"
}

// GradeBandModel is one inclusive [min,max] range within a scale, with
// the letter and GPA it maps to. Ranges within a scale never overlap.
type GradeBandModel struct {
	GradeBandID uuid.UUID `gorm:"column:grade_band_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_band_id"`

	GradeBandScaleID uuid.UUID `gorm:"column:grade_band_scale_id;type:uuid;not null;index;uniqueIndex:uniq_scale_letter;uniqueIndex:uniq_scale_range" json:"grade_band_scale_id"`

	GradeBandMinScore int             `gorm:"column:grade_band_min_score;not null;uniqueIndex:uniq_scale_range" json:"grade_band_min_score"`
	GradeBandMaxScore int             `gorm:"column:grade_band_max_score;not null;uniqueIndex:uniq_scale_range" json:"grade_band_max_score"`
	GradeBandLetter   string          `gorm:"column:grade_band_letter;type:varchar(5);not null;uniqueIndex:uniq_scale_letter" json:"grade_band_letter"`
	GradeBandGPA      decimal.Decimal `gorm:"column:grade_band_gpa;type:numeric(3,2);not null" json:"grade_band_gpa"`

	GradeBandCreatedAt time.Time `gorm:"column:grade_band_created_at;autoCreateTime" json:"grade_band_created_at"`
	GradeBandUpdatedAt time.Time `gorm:"column:grade_band_updated_at;autoUpdateTime" json:"grade_band_updated_at"`
}

func (GradeBandModel) TableName() string {
	return "grade_bands"
}
