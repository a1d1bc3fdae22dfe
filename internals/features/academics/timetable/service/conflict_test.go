package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	return parsed
}

func ptr[T any](v T) *T { return &v }

func TestOverlaps(t *testing.T) {
	at := func(hhmm string) time.Time { return clock(t, hhmm) }

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical ranges", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap at the end", "09:00", "10:00", "09:30", "10:30", true},
		{"partial overlap at the start", "09:30", "10:30", "09:00", "10:00", true},
		{"one contains the other", "09:00", "12:00", "10:00", "11:00", true},
		{"touching boundaries do not overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"touching boundaries reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "13:00", "14:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSlot_TimeSanity(t *testing.T) {
	candidate := Slot{
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		StartTime: clock(t, "10:00"),
		EndTime:   clock(t, "09:00"),
	}
	err := ValidateSlot(candidate, nil, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "time", err.Field)

	candidate.EndTime = candidate.StartTime
	err = ValidateSlot(candidate, nil, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "time", err.Field)
}

func TestValidateSlot_TeacherDoubleBooked(t *testing.T) {
	teacherID := uuid.New()
	otherID := uuid.New()

	existing := []Slot{{
		ID:           otherID,
		ClassID:      uuid.New(),
		SectionID:    uuid.New(),
		TeacherID:    &teacherID,
		StartTime:    clock(t, "09:00"),
		EndTime:      clock(t, "10:00"),
		ClassLabel:   "Class 5",
		SectionLabel: "A",
	}}

	candidate := Slot{
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		TeacherID: &teacherID,
		StartTime: clock(t, "09:30"),
		EndTime:   clock(t, "10:30"),
	}

	err := ValidateSlot(candidate, existing, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "teacher", err.Field)
	assert.Contains(t, err.Message, "09:00-10:00")
	assert.Contains(t, err.Message, "Class 5 A")
	require.NotNil(t, err.ConflictingID)
	assert.Equal(t, otherID, *err.ConflictingID)

	// Back-to-back slots never conflict.
	candidate.StartTime = clock(t, "10:00")
	candidate.EndTime = clock(t, "11:00")
	assert.Nil(t, ValidateSlot(candidate, existing, 0, nil))

	// A different teacher in the same range is fine.
	other := uuid.New()
	candidate.StartTime = clock(t, "09:30")
	candidate.EndTime = clock(t, "10:30")
	candidate.TeacherID = &other
	assert.Nil(t, ValidateSlot(candidate, existing, 0, nil))
}

func TestValidateSlot_ClassroomOccupied(t *testing.T) {
	classroomID := uuid.New()
	otherID := uuid.New()

	existing := []Slot{{
		ID:          otherID,
		ClassID:     uuid.New(),
		SectionID:   uuid.New(),
		ClassroomID: &classroomID,
		StartTime:   clock(t, "09:00"),
		EndTime:     clock(t, "10:00"),
	}}

	candidate := Slot{
		ClassID:     uuid.New(),
		SectionID:   uuid.New(),
		ClassroomID: &classroomID,
		RoomLabel:   "Lab-A",
		StartTime:   clock(t, "09:45"),
		EndTime:     clock(t, "10:30"),
	}

	err := ValidateSlot(candidate, existing, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "classroom", err.Field)
	assert.Contains(t, err.Message, "Lab-A")
	require.NotNil(t, err.ConflictingID)
	assert.Equal(t, otherID, *err.ConflictingID)
}

func TestValidateSlot_FreeTextRoomFallback(t *testing.T) {
	existing := []Slot{{
		ID:        uuid.New(),
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		Room:      "Room 101",
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
	}}

	candidate := Slot{
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		Room:      " room 101 ",
		StartTime: clock(t, "09:30"),
		EndTime:   clock(t, "10:30"),
	}

	err := ValidateSlot(candidate, existing, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "room", err.Field)

	// A structured classroom reference wins over the text fallback.
	classroomID := uuid.New()
	candidate.ClassroomID = &classroomID
	assert.Nil(t, ValidateSlot(candidate, existing, 0, nil))
}

func TestValidateSlot_ClassSectionDifferentTeacher(t *testing.T) {
	classID := uuid.New()
	sectionID := uuid.New()
	teacherA := uuid.New()
	teacherB := uuid.New()

	existing := []Slot{{
		ID:        uuid.New(),
		ClassID:   classID,
		SectionID: sectionID,
		TeacherID: &teacherA,
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
	}}

	candidate := Slot{
		ClassID:   classID,
		SectionID: sectionID,
		TeacherID: &teacherB,
		StartTime: clock(t, "09:30"),
		EndTime:   clock(t, "10:30"),
	}

	err := ValidateSlot(candidate, existing, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "class_section", err.Field)

	// Candidate with no teacher still collides with a taught slot.
	candidate.TeacherID = nil
	err = ValidateSlot(candidate, existing, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "class_section", err.Field)
}

func TestValidateSlot_RoomCapacity(t *testing.T) {
	classroomID := uuid.New()

	candidate := Slot{
		ClassID:     uuid.New(),
		SectionID:   uuid.New(),
		ClassroomID: &classroomID,
		StartTime:   clock(t, "09:00"),
		EndTime:     clock(t, "10:00"),
	}

	err := ValidateSlot(candidate, nil, 32, ptr(30))
	require.NotNil(t, err)
	assert.Equal(t, "classroom", err.Field)
	assert.Contains(t, err.Message, "(30)")
	assert.Contains(t, err.Message, "(32)")

	// Exactly full is allowed.
	assert.Nil(t, ValidateSlot(candidate, nil, 30, ptr(30)))

	// Unknown or zero capacity is never enforced.
	assert.Nil(t, ValidateSlot(candidate, nil, 100, nil))
	assert.Nil(t, ValidateSlot(candidate, nil, 100, ptr(0)))

	// Capacity only applies when a classroom reference is set.
	candidate.ClassroomID = nil
	assert.Nil(t, ValidateSlot(candidate, nil, 100, ptr(30)))
}

func TestValidateSlot_SelfExclusionOnUpdate(t *testing.T) {
	teacherID := uuid.New()
	slotID := uuid.New()

	existing := []Slot{{
		ID:        slotID,
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		TeacherID: &teacherID,
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
	}}

	// Updating the same row must not conflict with itself.
	candidate := existing[0]
	candidate.StartTime = clock(t, "09:15")
	candidate.EndTime = clock(t, "10:15")
	assert.Nil(t, ValidateSlot(candidate, existing, 0, nil))
}

func TestValidateSlot_NoTeacherNoRoom(t *testing.T) {
	existing := []Slot{{
		ID:        uuid.New(),
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		TeacherID: ptr(uuid.New()),
		Room:      "Lab-A",
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
	}}

	candidate := Slot{
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		StartTime: clock(t, "09:00"),
		EndTime:   clock(t, "10:00"),
	}

	assert.Nil(t, ValidateSlot(candidate, existing, 0, nil))
}

func TestValidateSlot_FirstViolationWins(t *testing.T) {
	teacherID := uuid.New()
	classroomID := uuid.New()

	// The same existing slot trips both the teacher and the classroom
	// checks; the teacher check runs first.
	existing := []Slot{{
		ID:          uuid.New(),
		ClassID:     uuid.New(),
		SectionID:   uuid.New(),
		TeacherID:   &teacherID,
		ClassroomID: &classroomID,
		StartTime:   clock(t, "09:00"),
		EndTime:     clock(t, "10:00"),
	}}

	candidate := Slot{
		ClassID:     uuid.New(),
		SectionID:   uuid.New(),
		TeacherID:   &teacherID,
		ClassroomID: &classroomID,
		StartTime:   clock(t, "09:30"),
		EndTime:     clock(t, "10:30"),
	}

	err := ValidateSlot(candidate, existing, 0, nil)
	require.NotNil(t, err)
	assert.Equal(t, "teacher", err.Field)
}
