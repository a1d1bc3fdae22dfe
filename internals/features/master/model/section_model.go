package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionModel: a named section (A, B, C...) shared across classes through
// the class_sections join table.
type SectionModel struct {
	SectionID uuid.UUID `gorm:"column:section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"section_id"`

	SectionName string `gorm:"column:section_name;size:255;uniqueIndex;not null" json:"section_name"`

	SectionCreatedAt time.Time      `gorm:"column:section_created_at;type:timestamptz;not null;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt time.Time      `gorm:"column:section_updated_at;type:timestamptz;not null;autoUpdateTime" json:"section_updated_at"`
	SectionDeletedAt gorm.DeletedAt `gorm:"column:section_deleted_at;index" json:"section_deleted_at,omitempty"`
}

func (SectionModel) TableName() string { return "sections" }
