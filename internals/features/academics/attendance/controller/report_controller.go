package controller

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "schoolku_backend/internals/features/academics/attendance/dto"
	m "schoolku_backend/internals/features/academics/attendance/model"
	ttModel "schoolku_backend/internals/features/academics/timetable/model"
	masterModel "schoolku_backend/internals/features/master/model"
	peopleModel "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

var statusCode = map[string]string{
	m.StatusPresent: "P",
	m.StatusAbsent:  "A",
	m.StatusLate:    "L",
	m.StatusExcused: "E",
}

// Report builds a per-student day grid for one class/section over a
// date range (start & end, or a whole month via month & year), with
// P/A/L/E counts and percentages.
func (ctl *AttendanceController) Report(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDQuery(c, "class_id")
	if err != nil || classID == nil {
		return helper.JsonError(c, http.StatusBadRequest, "class_id is required")
	}
	sectionID, err := helper.ParseUUIDQuery(c, "section_id")
	if err != nil || sectionID == nil {
		return helper.JsonError(c, http.StatusBadRequest, "section_id is required")
	}
	subjectID, err := helper.ParseUUIDQuery(c, "subject_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid subject_id")
	}

	start, end, err := reportRange(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context())

	var students []peopleModel.StudentModel
	if err := db.
		Where("student_class_id = ? AND student_section_id = ?", *classID, *sectionID).
		Order("student_roll_no ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.StudentID)
	}

	var records []m.AttendanceRecordModel
	if len(studentIDs) > 0 {
		q := db.
			Where("attendance_date BETWEEN ? AND ?", start, end).
			Where("attendance_student_id IN ?", studentIDs)
		if subjectID != nil {
			q = q.Where("attendance_timetable_id IN (?)",
				ctl.DB.Model(&ttModel.TimetableEntryModel{}).
					Select("timetable_id").
					Where("timetable_subject_id = ?", *subjectID))
		}
		if err := q.Find(&records).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}

	// student -> date -> status
	recMap := make(map[uuid.UUID]map[string]string)
	for _, r := range records {
		key := r.AttendanceDate.Format("2006-01-02")
		if recMap[r.AttendanceStudentID] == nil {
			recMap[r.AttendanceStudentID] = map[string]string{}
		}
		recMap[r.AttendanceStudentID][key] = r.AttendanceStatus
	}

	days := int(end.Sub(start).Hours()/24) + 1
	headers := make([]string, 0, days)
	for i := 0; i < days; i++ {
		headers = append(headers, start.AddDate(0, 0, i).Format("02 Mon"))
	}

	out := make([]d.ReportStudent, 0, len(students))
	for _, s := range students {
		marks := make([]string, 0, days)
		var counts d.ReportCounts
		for i := 0; i < days; i++ {
			key := start.AddDate(0, 0, i).Format("2006-01-02")
			code := statusCode[recMap[s.StudentID][key]]
			marks = append(marks, code)
			switch code {
			case "P":
				counts.Present++
			case "A":
				counts.Absent++
			case "L":
				counts.Late++
			case "E":
				counts.Excused++
			default:
				counts.Blank++
			}
		}
		out = append(out, d.ReportStudent{
			StudentID: s.StudentID,
			Name:      s.StudentFullName,
			RollNo:    s.StudentRollNo,
			Counts:    counts,
			Percent: d.ReportPercent{
				Present: pct(counts.Present, days),
				Absent:  pct(counts.Absent, days),
				Late:    pct(counts.Late, days),
				Excused: pct(counts.Excused, days),
				Blank:   pct(counts.Blank, days),
			},
			Days: marks,
		})
	}

	meta := d.ReportMeta{
		Start:      start.Format("2006-01-02"),
		End:        end.Format("2006-01-02"),
		Days:       days,
		DayHeaders: headers,
		Month:      int(start.Month()),
		Year:       start.Year(),
	}
	var cls masterModel.ClassModel
	if err := db.First(&cls, "class_id = ?", *classID).Error; err == nil {
		meta.Class = cls.ClassName
	}
	var sec masterModel.SectionModel
	if err := db.First(&sec, "section_id = ?", *sectionID).Error; err == nil {
		meta.Section = sec.SectionName
	}
	if subjectID != nil {
		var sub masterModel.SubjectModel
		if err := db.First(&sub, "subject_id = ?", *subjectID).Error; err == nil {
			meta.Subject = sub.SubjectName
		}
	}

	return helper.JsonOK(c, "", d.ReportResponse{Meta: meta, Students: out})
}

// reportRange accepts ?start=&end= or ?month=&year= (whole month).
func reportRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	if c.Query("start") != "" && c.Query("end") != "" {
		start, err := helper.ParseDate(c.Query("start"))
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := helper.ParseDate(c.Query("end"))
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fiber.NewError(http.StatusBadRequest, "end must not be before start")
		}
		return start, end, nil
	}

	month, errM := strconv.Atoi(c.Query("month"))
	year, errY := strconv.Atoi(c.Query("year"))
	if errM != nil || errY != nil || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fiber.NewError(http.StatusBadRequest, "Provide start & end, or month & year")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

func pct(count, days int) float64 {
	if days == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(days)*1000) / 10
}
