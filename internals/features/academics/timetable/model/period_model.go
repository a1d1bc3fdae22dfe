package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodModel is a school-wide time block ("1st" 09:00-09:45).
type PeriodModel struct {
	PeriodID uuid.UUID `gorm:"column:period_id;type:uuid;default:gen_random_uuid();primaryKey" json:"period_id"`

	PeriodName  string `gorm:"column:period_name;type:varchar(50);not null" json:"period_name"`
	PeriodOrder int    `gorm:"column:period_order;not null;uniqueIndex" json:"period_order"`

	PeriodStartTime time.Time `gorm:"column:period_start_time;type:time;not null" json:"period_start_time"`
	PeriodEndTime   time.Time `gorm:"column:period_end_time;type:time;not null" json:"period_end_time"`

	PeriodCreatedAt time.Time      `gorm:"column:period_created_at;autoCreateTime" json:"period_created_at"`
	PeriodUpdatedAt time.Time      `gorm:"column:period_updated_at;autoUpdateTime" json:"period_updated_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"-"`
}

func (PeriodModel) TableName() string {
	return "periods"
}
