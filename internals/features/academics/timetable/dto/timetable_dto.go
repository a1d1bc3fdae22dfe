package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/timetable/model"
	helper "schoolku_backend/internals/helpers"
)

/* =======================
   Period
======================= */

type PeriodCreateRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	Order     int    `json:"order" validate:"required,min=1"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type PeriodUpdateRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Order     *int    `json:"order,omitempty" validate:"omitempty,min=1"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

type PeriodResponse struct {
	PeriodID  uuid.UUID `json:"period_id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

func (r *PeriodCreateRequest) ToModel() (model.PeriodModel, error) {
	start, err := helper.ParseClockTime(r.StartTime)
	if err != nil {
		return model.PeriodModel{}, err
	}
	end, err := helper.ParseClockTime(r.EndTime)
	if err != nil {
		return model.PeriodModel{}, err
	}
	return model.PeriodModel{
		PeriodName:      strings.TrimSpace(r.Name),
		PeriodOrder:     r.Order,
		PeriodStartTime: start,
		PeriodEndTime:   end,
	}, nil
}

func (r *PeriodUpdateRequest) ApplyUpdates(p *model.PeriodModel) error {
	if r.Name != nil {
		p.PeriodName = strings.TrimSpace(*r.Name)
	}
	if r.Order != nil {
		p.PeriodOrder = *r.Order
	}
	if r.StartTime != nil {
		start, err := helper.ParseClockTime(*r.StartTime)
		if err != nil {
			return err
		}
		p.PeriodStartTime = start
	}
	if r.EndTime != nil {
		end, err := helper.ParseClockTime(*r.EndTime)
		if err != nil {
			return err
		}
		p.PeriodEndTime = end
	}
	return nil
}

func FromPeriodModel(p model.PeriodModel) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Name:      p.PeriodName,
		Order:     p.PeriodOrder,
		StartTime: helper.FormatClockTime(p.PeriodStartTime),
		EndTime:   helper.FormatClockTime(p.PeriodEndTime),
	}
}

/* =======================
   Classroom
======================= */

type ClassroomCreateRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Capacity *int   `json:"capacity,omitempty" validate:"omitempty,min=0"`
}

type ClassroomUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=0"`
}

type ClassroomResponse struct {
	ClassroomID uuid.UUID `json:"classroom_id"`
	Name        string    `json:"name"`
	Capacity    *int      `json:"capacity,omitempty"`
}

func (r *ClassroomCreateRequest) ToModel() model.ClassroomModel {
	return model.ClassroomModel{
		ClassroomName:     strings.TrimSpace(r.Name),
		ClassroomCapacity: r.Capacity,
	}
}

func (r *ClassroomUpdateRequest) ApplyUpdates(cr *model.ClassroomModel) {
	if r.Name != nil {
		cr.ClassroomName = strings.TrimSpace(*r.Name)
	}
	if r.Capacity != nil {
		cr.ClassroomCapacity = r.Capacity
	}
}

func FromClassroomModel(cr model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID: cr.ClassroomID,
		Name:        cr.ClassroomName,
		Capacity:    cr.ClassroomCapacity,
	}
}

/* =======================
   Timetable entry
======================= */

type TimetableEntryCreateRequest struct {
	ClassID     uuid.UUID  `json:"class_id" validate:"required"`
	SectionID   uuid.UUID  `json:"section_id" validate:"required"`
	SubjectID   uuid.UUID  `json:"subject_id" validate:"required"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	ClassroomID *uuid.UUID `json:"classroom_id,omitempty"`
	Day         string     `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Period      string     `json:"period" validate:"omitempty,max=50"`
	StartTime   string     `json:"start_time" validate:"required"`
	EndTime     string     `json:"end_time" validate:"required"`
	Room        *string    `json:"room,omitempty" validate:"omitempty,max=50"`
}

type TimetableEntryUpdateRequest struct {
	ClassID     *uuid.UUID `json:"class_id,omitempty"`
	SectionID   *uuid.UUID `json:"section_id,omitempty"`
	SubjectID   *uuid.UUID `json:"subject_id,omitempty"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	ClassroomID *uuid.UUID `json:"classroom_id,omitempty"`
	Day         *string    `json:"day,omitempty" validate:"omitempty,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Period      *string    `json:"period,omitempty" validate:"omitempty,max=50"`
	StartTime   *string    `json:"start_time,omitempty"`
	EndTime     *string    `json:"end_time,omitempty"`
	Room        *string    `json:"room,omitempty" validate:"omitempty,max=50"`
}

type TimetableEntryResponse struct {
	TimetableID uuid.UUID  `json:"timetable_id"`
	ClassID     uuid.UUID  `json:"class_id"`
	SectionID   uuid.UUID  `json:"section_id"`
	SubjectID   uuid.UUID  `json:"subject_id"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	ClassroomID *uuid.UUID `json:"classroom_id,omitempty"`
	Day         string     `json:"day"`
	Period      string     `json:"period"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Room        *string    `json:"room,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r *TimetableEntryCreateRequest) ToModel() (model.TimetableEntryModel, error) {
	start, err := helper.ParseClockTime(r.StartTime)
	if err != nil {
		return model.TimetableEntryModel{}, err
	}
	end, err := helper.ParseClockTime(r.EndTime)
	if err != nil {
		return model.TimetableEntryModel{}, err
	}
	return model.TimetableEntryModel{
		TimetableClassID:     r.ClassID,
		TimetableSectionID:   r.SectionID,
		TimetableSubjectID:   r.SubjectID,
		TimetableTeacherID:   r.TeacherID,
		TimetableClassroomID: r.ClassroomID,
		TimetableDay:         r.Day,
		TimetablePeriod:      strings.TrimSpace(r.Period),
		TimetableStartTime:   start,
		TimetableEndTime:     end,
		TimetableRoom:        r.Room,
	}, nil
}

func (r *TimetableEntryUpdateRequest) ApplyUpdates(e *model.TimetableEntryModel) error {
	if r.ClassID != nil {
		e.TimetableClassID = *r.ClassID
	}
	if r.SectionID != nil {
		e.TimetableSectionID = *r.SectionID
	}
	if r.SubjectID != nil {
		e.TimetableSubjectID = *r.SubjectID
	}
	if r.TeacherID != nil {
		e.TimetableTeacherID = r.TeacherID
	}
	if r.ClassroomID != nil {
		e.TimetableClassroomID = r.ClassroomID
	}
	if r.Day != nil {
		e.TimetableDay = *r.Day
	}
	if r.Period != nil {
		e.TimetablePeriod = strings.TrimSpace(*r.Period)
	}
	if r.StartTime != nil {
		start, err := helper.ParseClockTime(*r.StartTime)
		if err != nil {
			return err
		}
		e.TimetableStartTime = start
	}
	if r.EndTime != nil {
		end, err := helper.ParseClockTime(*r.EndTime)
		if err != nil {
			return err
		}
		e.TimetableEndTime = end
	}
	if r.Room != nil {
		e.TimetableRoom = r.Room
	}
	return nil
}

func FromTimetableEntryModel(e model.TimetableEntryModel) TimetableEntryResponse {
	return TimetableEntryResponse{
		TimetableID: e.TimetableID,
		ClassID:     e.TimetableClassID,
		SectionID:   e.TimetableSectionID,
		SubjectID:   e.TimetableSubjectID,
		TeacherID:   e.TimetableTeacherID,
		ClassroomID: e.TimetableClassroomID,
		Day:         e.TimetableDay,
		Period:      e.TimetablePeriod,
		StartTime:   helper.FormatClockTime(e.TimetableStartTime),
		EndTime:     helper.FormatClockTime(e.TimetableEndTime),
		Room:        e.TimetableRoom,
		CreatedAt:   e.TimetableCreatedAt,
	}
}
