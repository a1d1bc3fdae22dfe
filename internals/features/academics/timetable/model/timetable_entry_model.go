package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Day codes stored on timetable_day, Mon through Sun.
var DayCodes = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type TimetableEntryModel struct {
	TimetableID uuid.UUID `gorm:"column:timetable_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_id"`

	TimetableClassID   uuid.UUID `gorm:"column:timetable_class_id;type:uuid;not null;uniqueIndex:uniq_timetable_slot" json:"timetable_class_id"`
	TimetableSectionID uuid.UUID `gorm:"column:timetable_section_id;type:uuid;not null;uniqueIndex:uniq_timetable_slot" json:"timetable_section_id"`
	TimetableSubjectID uuid.UUID `gorm:"column:timetable_subject_id;type:uuid;not null" json:"timetable_subject_id"`

	TimetableTeacherID   *uuid.UUID `gorm:"column:timetable_teacher_id;type:uuid;index" json:"timetable_teacher_id,omitempty"`
	TimetableClassroomID *uuid.UUID `gorm:"column:timetable_classroom_id;type:uuid;index" json:"timetable_classroom_id,omitempty"`

	TimetableDay    string `gorm:"column:timetable_day;type:varchar(3);not null;uniqueIndex:uniq_timetable_slot;index" json:"timetable_day"`
	TimetablePeriod string `gorm:"column:timetable_period;type:varchar(50);uniqueIndex:uniq_timetable_slot" json:"timetable_period"`

	TimetableStartTime time.Time `gorm:"column:timetable_start_time;type:time;not null;uniqueIndex:uniq_timetable_slot" json:"timetable_start_time"`
	TimetableEndTime   time.Time `gorm:"column:timetable_end_time;type:time;not null;uniqueIndex:uniq_timetable_slot" json:"timetable_end_time"`

	// Free-text room kept as a fallback when no classroom row exists.
	TimetableRoom *string `gorm:"column:timetable_room;type:varchar(50)" json:"timetable_room,omitempty"`

	TimetableCreatedAt time.Time      `gorm:"column:timetable_created_at;autoCreateTime" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time      `gorm:"column:timetable_updated_at;autoUpdateTime" json:"timetable_updated_at"`
	TimetableDeletedAt gorm.DeletedAt `gorm:"column:timetable_deleted_at;index" json:"-"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}

func (t *TimetableEntryModel) BeforeCreate(tx *gorm.DB) error {
	if t.TimetableID == uuid.Nil {
		t.TimetableID = uuid.New()
	}
	return nil
}
