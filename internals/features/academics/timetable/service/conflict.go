package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	helper "schoolku_backend/internals/helpers"
)

// Slot is the in-memory view of one timetable row that the validator
// compares against. Labels are only used to build error messages.
type Slot struct {
	ID          uuid.UUID
	ClassID     uuid.UUID
	SectionID   uuid.UUID
	TeacherID   *uuid.UUID
	ClassroomID *uuid.UUID
	Room        string

	StartTime time.Time
	EndTime   time.Time

	ClassLabel   string
	SectionLabel string
	RoomLabel    string
}

// ConflictError reports the first scheduling rule the candidate breaks.
type ConflictError struct {
	Field         string     `json:"field"`
	Message       string     `json:"message"`
	ConflictingID *uuid.UUID `json:"conflicting_id,omitempty"`
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Overlaps reports whether two half-open ranges [a.Start, a.End) and
// [b.Start, b.End) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ValidateSlot runs the scheduling checks for a candidate slot against
// the other slots on the same day. The checks run in a fixed order and
// stop at the first violation. Callers pass existing rows for the same
// day only; on update the candidate's own row must not be in existing
// (rows sharing the candidate's ID are skipped as a second guard).
// enrolled and capacity feed the room-capacity check; a nil capacity
// means the room never fills up.
func ValidateSlot(candidate Slot, existing []Slot, enrolled int, capacity *int) *ConflictError {
	if !candidate.StartTime.Before(candidate.EndTime) {
		return &ConflictError{
			Field:   "time",
			Message: "Start time must be before end time.",
		}
	}

	overlapping := make([]Slot, 0, len(existing))
	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate.StartTime, candidate.EndTime, other.StartTime, other.EndTime) {
			overlapping = append(overlapping, other)
		}
	}

	if candidate.TeacherID != nil {
		for _, other := range overlapping {
			if other.TeacherID != nil && *other.TeacherID == *candidate.TeacherID {
				id := other.ID
				return &ConflictError{
					Field: "teacher",
					Message: fmt.Sprintf(
						"Teacher is already scheduled at %s-%s for %s %s.",
						helper.FormatClockTime(other.StartTime),
						helper.FormatClockTime(other.EndTime),
						other.ClassLabel, other.SectionLabel,
					),
					ConflictingID: &id,
				}
			}
		}
	}

	if candidate.ClassroomID != nil {
		for _, other := range overlapping {
			if other.ClassroomID != nil && *other.ClassroomID == *candidate.ClassroomID {
				id := other.ID
				return &ConflictError{
					Field: "classroom",
					Message: fmt.Sprintf(
						"Classroom '%s' is already occupied at %s-%s.",
						candidate.RoomLabel,
						helper.FormatClockTime(other.StartTime),
						helper.FormatClockTime(other.EndTime),
					),
					ConflictingID: &id,
				}
			}
		}
	} else if room := strings.TrimSpace(candidate.Room); room != "" {
		for _, other := range overlapping {
			if strings.EqualFold(strings.TrimSpace(other.Room), room) {
				id := other.ID
				return &ConflictError{
					Field: "room",
					Message: fmt.Sprintf(
						"Room '%s' is already occupied at %s-%s.",
						room,
						helper.FormatClockTime(other.StartTime),
						helper.FormatClockTime(other.EndTime),
					),
					ConflictingID: &id,
				}
			}
		}
	}

	for _, other := range overlapping {
		if other.ClassID == candidate.ClassID &&
			other.SectionID == candidate.SectionID &&
			!sameTeacher(candidate.TeacherID, other.TeacherID) {
			id := other.ID
			return &ConflictError{
				Field:         "class_section",
				Message:       "This class/section is already assigned to another teacher in the same time range.",
				ConflictingID: &id,
			}
		}
	}

	if candidate.ClassroomID != nil && capacity != nil && *capacity > 0 && enrolled > *capacity {
		return &ConflictError{
			Field: "classroom",
			Message: fmt.Sprintf(
				"Room capacity (%d) is less than class size (%d). Select a larger room or split the section.",
				*capacity, enrolled,
			),
		}
	}

	return nil
}

func sameTeacher(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
