package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/attendance/model"
)

type RosterRow struct {
	StudentID    uuid.UUID  `json:"student_id"`
	StudentName  string     `json:"student_name"`
	RollNo       int        `json:"roll_no"`
	Status       string     `json:"status"`
	Remarks      string     `json:"remarks"`
	AttendanceID *uuid.UUID `json:"attendance_id,omitempty"`
}

type RosterResponse struct {
	TimetableID uuid.UUID   `json:"timetable_id"`
	Date        string      `json:"date"`
	Class       string      `json:"class"`
	Section     string      `json:"section"`
	Subject     string      `json:"subject"`
	Rows        []RosterRow `json:"rows"`
}

type RosterSubmitRow struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"omitempty,oneof=PRESENT ABSENT LATE EXCUSED"`
	Remarks   string    `json:"remarks" validate:"omitempty,max=255"`
}

type RosterSubmitRequest struct {
	TimetableID uuid.UUID         `json:"timetable_id" validate:"required"`
	Date        string            `json:"date" validate:"required"`
	Rows        []RosterSubmitRow `json:"rows" validate:"required,min=1,dive"`
}

type RosterSubmitResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type AttendanceRecordResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	TimetableID  uuid.UUID `json:"timetable_id"`
	Date         string    `json:"date"`
	StudentID    uuid.UUID `json:"student_id"`
	Status       string    `json:"status"`
	Remarks      string    `json:"remarks"`
	MarkedBy     uuid.UUID `json:"marked_by"`
	MarkedAt     time.Time `json:"marked_at"`
}

func FromAttendanceRecordModel(r model.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceID: r.AttendanceID,
		TimetableID:  r.AttendanceTimetableID,
		Date:         r.AttendanceDate.Format("2006-01-02"),
		StudentID:    r.AttendanceStudentID,
		Status:       r.AttendanceStatus,
		Remarks:      r.AttendanceRemarks,
		MarkedBy:     r.AttendanceMarkedBy,
		MarkedAt:     r.AttendanceMarkedAt,
	}
}

type ReportCounts struct {
	Present int `json:"P"`
	Absent  int `json:"A"`
	Late    int `json:"L"`
	Excused int `json:"E"`
	Blank   int `json:"blank"`
}

type ReportPercent struct {
	Present float64 `json:"P"`
	Absent  float64 `json:"A"`
	Late    float64 `json:"L"`
	Excused float64 `json:"E"`
	Blank   float64 `json:"blank"`
}

type ReportStudent struct {
	StudentID uuid.UUID     `json:"student_id"`
	Name      string        `json:"name"`
	RollNo    int           `json:"roll_no"`
	Counts    ReportCounts  `json:"counts"`
	Percent   ReportPercent `json:"percent"`
	Days      []string      `json:"days"`
}

type ReportMeta struct {
	Class      string   `json:"class"`
	Section    string   `json:"section"`
	Subject    string   `json:"subject"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Days       int      `json:"days"`
	DayHeaders []string `json:"day_headers"`
	Month      int      `json:"month"`
	Year       int      `json:"year"`
}

type ReportResponse struct {
	Meta     ReportMeta      `json:"meta"`
	Students []ReportStudent `json:"students"`
}
