package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance status values.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
	StatusExcused = "EXCUSED"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

type AttendanceRecordModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceTimetableID uuid.UUID `gorm:"column:attendance_timetable_id;type:uuid;not null;uniqueIndex:uniq_attendance_row;index" json:"attendance_timetable_id"`
	AttendanceDate        time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uniq_attendance_row;index" json:"attendance_date"`
	AttendanceStudentID   uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uniq_attendance_row" json:"attendance_student_id"`

	AttendanceStatus  string `gorm:"column:attendance_status;type:varchar(10);not null;default:'PRESENT'" json:"attendance_status"`
	AttendanceRemarks string `gorm:"column:attendance_remarks;type:varchar(255)" json:"attendance_remarks"`

	AttendanceMarkedBy uuid.UUID `gorm:"column:attendance_marked_by;type:uuid;not null" json:"attendance_marked_by"`
	AttendanceMarkedAt time.Time `gorm:"column:attendance_marked_at;autoCreateTime" json:"attendance_marked_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
