package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID uuid.UUID `gorm:"column:classroom_id;type:uuid;default:gen_random_uuid();primaryKey" json:"classroom_id"`

	ClassroomName string `gorm:"column:classroom_name;type:varchar(50);not null;uniqueIndex" json:"classroom_name"`

	// Nil means capacity is unknown and never enforced.
	ClassroomCapacity *int `gorm:"column:classroom_capacity" json:"classroom_capacity,omitempty"`

	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;autoUpdateTime" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"-"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
