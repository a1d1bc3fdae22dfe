package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel: a class/grade level ("Class 7"). Sections are attached via
// the class_sections join table.
type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName string `gorm:"column:class_name;size:255;uniqueIndex;not null" json:"class_name"`

	Sections []SectionModel `gorm:"many2many:class_sections;foreignKey:ClassID;joinForeignKey:ClassID;References:SectionID;joinReferences:SectionID" json:"sections,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassSectionModel is the explicit join row for class ↔ section.
type ClassSectionModel struct {
	ClassID   uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey" json:"class_id"`
	SectionID uuid.UUID `gorm:"column:section_id;type:uuid;primaryKey" json:"section_id"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
