package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

/* =======================
   Student
======================= */

type StudentCreateRequest struct {
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	FullName      string     `json:"full_name" validate:"required,max=120"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=M F O"`
	DateOfBirth   *string    `json:"date_of_birth,omitempty"`
	ClassID       uuid.UUID  `json:"class_id" validate:"required"`
	SectionID     uuid.UUID  `json:"section_id" validate:"required"`
	RollNo        int        `json:"roll_no" validate:"required,min=1"`
	AdmissionNo   *string    `json:"admission_no,omitempty" validate:"omitempty,max=64"`
	GuardianName  string     `json:"guardian_name" validate:"omitempty,max=120"`
	GuardianPhone string     `json:"guardian_phone" validate:"omitempty,max=30"`
	ContactEmail  *string    `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone  *string    `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
	Address       string     `json:"address"`
	PhotoURL      *string    `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type StudentUpdateRequest struct {
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	FullName      *string    `json:"full_name,omitempty" validate:"omitempty,max=120"`
	Gender        *string    `json:"gender,omitempty" validate:"omitempty,oneof=M F O"`
	DateOfBirth   *string    `json:"date_of_birth,omitempty"`
	ClassID       *uuid.UUID `json:"class_id,omitempty"`
	SectionID     *uuid.UUID `json:"section_id,omitempty"`
	RollNo        *int       `json:"roll_no,omitempty" validate:"omitempty,min=1"`
	AdmissionNo   *string    `json:"admission_no,omitempty" validate:"omitempty,max=64"`
	GuardianName  *string    `json:"guardian_name,omitempty" validate:"omitempty,max=120"`
	GuardianPhone *string    `json:"guardian_phone,omitempty" validate:"omitempty,max=30"`
	ContactEmail  *string    `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone  *string    `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
	Address       *string    `json:"address,omitempty"`
	PhotoURL      *string    `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type StudentResponse struct {
	StudentID     uuid.UUID  `json:"student_id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	FullName      string     `json:"full_name"`
	Gender        string     `json:"gender"`
	DateOfBirth   *string    `json:"date_of_birth,omitempty"`
	ClassID       uuid.UUID  `json:"class_id"`
	SectionID     uuid.UUID  `json:"section_id"`
	RollNo        int        `json:"roll_no"`
	AdmissionNo   *string    `json:"admission_no,omitempty"`
	GuardianName  string     `json:"guardian_name"`
	GuardianPhone string     `json:"guardian_phone"`
	ContactEmail  *string    `json:"contact_email,omitempty"`
	ContactPhone  *string    `json:"contact_phone,omitempty"`
	Address       string     `json:"address"`
	PhotoURL      *string    `json:"photo_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (r *StudentCreateRequest) ToModel() (model.StudentModel, error) {
	s := model.StudentModel{
		StudentUserID:        r.UserID,
		StudentFullName:      strings.TrimSpace(r.FullName),
		StudentGender:        r.Gender,
		StudentClassID:       r.ClassID,
		StudentSectionID:     r.SectionID,
		StudentRollNo:        r.RollNo,
		StudentAdmissionNo:   r.AdmissionNo,
		StudentGuardianName:  strings.TrimSpace(r.GuardianName),
		StudentGuardianPhone: strings.TrimSpace(r.GuardianPhone),
		StudentContactEmail:  r.ContactEmail,
		StudentContactPhone:  r.ContactPhone,
		StudentAddress:       strings.TrimSpace(r.Address),
		StudentPhotoURL:      r.PhotoURL,
	}
	if r.DateOfBirth != nil && strings.TrimSpace(*r.DateOfBirth) != "" {
		dob, err := helper.ParseDate(*r.DateOfBirth)
		if err != nil {
			return s, err
		}
		s.StudentDateOfBirth = &dob
	}
	return s, nil
}

func (r *StudentUpdateRequest) ApplyUpdates(s *model.StudentModel) error {
	if r.UserID != nil {
		s.StudentUserID = r.UserID
	}
	if r.FullName != nil {
		s.StudentFullName = strings.TrimSpace(*r.FullName)
	}
	if r.Gender != nil {
		s.StudentGender = *r.Gender
	}
	if r.DateOfBirth != nil {
		if strings.TrimSpace(*r.DateOfBirth) == "" {
			s.StudentDateOfBirth = nil
		} else {
			dob, err := helper.ParseDate(*r.DateOfBirth)
			if err != nil {
				return err
			}
			s.StudentDateOfBirth = &dob
		}
	}
	if r.ClassID != nil {
		s.StudentClassID = *r.ClassID
	}
	if r.SectionID != nil {
		s.StudentSectionID = *r.SectionID
	}
	if r.RollNo != nil {
		s.StudentRollNo = *r.RollNo
	}
	if r.AdmissionNo != nil {
		s.StudentAdmissionNo = r.AdmissionNo
	}
	if r.GuardianName != nil {
		s.StudentGuardianName = strings.TrimSpace(*r.GuardianName)
	}
	if r.GuardianPhone != nil {
		s.StudentGuardianPhone = strings.TrimSpace(*r.GuardianPhone)
	}
	if r.ContactEmail != nil {
		s.StudentContactEmail = r.ContactEmail
	}
	if r.ContactPhone != nil {
		s.StudentContactPhone = r.ContactPhone
	}
	if r.Address != nil {
		s.StudentAddress = strings.TrimSpace(*r.Address)
	}
	if r.PhotoURL != nil {
		s.StudentPhotoURL = r.PhotoURL
	}
	return nil
}

func FromStudentModel(s model.StudentModel) StudentResponse {
	resp := StudentResponse{
		StudentID:     s.StudentID,
		UserID:        s.StudentUserID,
		FullName:      s.StudentFullName,
		Gender:        s.StudentGender,
		ClassID:       s.StudentClassID,
		SectionID:     s.StudentSectionID,
		RollNo:        s.StudentRollNo,
		AdmissionNo:   s.StudentAdmissionNo,
		GuardianName:  s.StudentGuardianName,
		GuardianPhone: s.StudentGuardianPhone,
		ContactEmail:  s.StudentContactEmail,
		ContactPhone:  s.StudentContactPhone,
		Address:       s.StudentAddress,
		PhotoURL:      s.StudentPhotoURL,
		CreatedAt:     s.StudentCreatedAt,
	}
	if s.StudentDateOfBirth != nil {
		d := s.StudentDateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &d
	}
	return resp
}

/* =======================
   Teacher
======================= */

type TeacherCreateRequest struct {
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	FullName     string     `json:"full_name" validate:"required,max=150"`
	ContactEmail string     `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string     `json:"contact_phone" validate:"omitempty,max=20"`
	Subject      string     `json:"subject" validate:"omitempty,max=100"`
	Designation  string     `json:"designation" validate:"omitempty,max=100"`
	Intro        *string    `json:"intro,omitempty"`
	PhotoURL     *string    `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type TeacherUpdateRequest struct {
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	FullName     *string    `json:"full_name,omitempty" validate:"omitempty,max=150"`
	ContactEmail *string    `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string    `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	Subject      *string    `json:"subject,omitempty" validate:"omitempty,max=100"`
	Designation  *string    `json:"designation,omitempty" validate:"omitempty,max=100"`
	Intro        *string    `json:"intro,omitempty"`
	PhotoURL     *string    `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type TeacherResponse struct {
	TeacherID    uuid.UUID  `json:"teacher_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	FullName     string     `json:"full_name"`
	ContactEmail string     `json:"contact_email"`
	ContactPhone string     `json:"contact_phone"`
	Subject      string     `json:"subject"`
	Designation  string     `json:"designation"`
	Intro        *string    `json:"intro,omitempty"`
	PhotoURL     *string    `json:"photo_url,omitempty"`
}

func (r *TeacherCreateRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		TeacherUserID:       r.UserID,
		TeacherFullName:     strings.TrimSpace(r.FullName),
		TeacherContactEmail: strings.TrimSpace(r.ContactEmail),
		TeacherContactPhone: strings.TrimSpace(r.ContactPhone),
		TeacherSubject:      strings.TrimSpace(r.Subject),
		TeacherDesignation:  strings.TrimSpace(r.Designation),
		TeacherIntro:        r.Intro,
		TeacherPhotoURL:     r.PhotoURL,
	}
}

func (r *TeacherUpdateRequest) ApplyUpdates(t *model.TeacherModel) {
	if r.UserID != nil {
		t.TeacherUserID = r.UserID
	}
	if r.FullName != nil {
		t.TeacherFullName = strings.TrimSpace(*r.FullName)
	}
	if r.ContactEmail != nil {
		t.TeacherContactEmail = strings.TrimSpace(*r.ContactEmail)
	}
	if r.ContactPhone != nil {
		t.TeacherContactPhone = strings.TrimSpace(*r.ContactPhone)
	}
	if r.Subject != nil {
		t.TeacherSubject = strings.TrimSpace(*r.Subject)
	}
	if r.Designation != nil {
		t.TeacherDesignation = strings.TrimSpace(*r.Designation)
	}
	if r.Intro != nil {
		t.TeacherIntro = r.Intro
	}
	if r.PhotoURL != nil {
		t.TeacherPhotoURL = r.PhotoURL
	}
}

func FromTeacherModel(t model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:    t.TeacherID,
		UserID:       t.TeacherUserID,
		FullName:     t.TeacherFullName,
		ContactEmail: t.TeacherContactEmail,
		ContactPhone: t.TeacherContactPhone,
		Subject:      t.TeacherSubject,
		Designation:  t.TeacherDesignation,
		Intro:        t.TeacherIntro,
		PhotoURL:     t.TeacherPhotoURL,
	}
}

/* =======================
   Staff
======================= */

type StaffCreateRequest struct {
	FullName     string  `json:"full_name" validate:"required,max=150"`
	ContactEmail string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string  `json:"contact_phone" validate:"omitempty,max=20"`
	Designation  string  `json:"designation" validate:"omitempty,max=100"`
	PhotoURL     *string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type StaffUpdateRequest struct {
	FullName     *string `json:"full_name,omitempty" validate:"omitempty,max=150"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	Designation  *string `json:"designation,omitempty" validate:"omitempty,max=100"`
	PhotoURL     *string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

type StaffResponse struct {
	StaffID      uuid.UUID `json:"staff_id"`
	FullName     string    `json:"full_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Designation  string    `json:"designation"`
	PhotoURL     *string   `json:"photo_url,omitempty"`
}

func (r *StaffCreateRequest) ToModel() model.StaffModel {
	return model.StaffModel{
		StaffFullName:     strings.TrimSpace(r.FullName),
		StaffContactEmail: strings.TrimSpace(r.ContactEmail),
		StaffContactPhone: strings.TrimSpace(r.ContactPhone),
		StaffDesignation:  strings.TrimSpace(r.Designation),
		StaffPhotoURL:     r.PhotoURL,
	}
}

func (r *StaffUpdateRequest) ApplyUpdates(s *model.StaffModel) {
	if r.FullName != nil {
		s.StaffFullName = strings.TrimSpace(*r.FullName)
	}
	if r.ContactEmail != nil {
		s.StaffContactEmail = strings.TrimSpace(*r.ContactEmail)
	}
	if r.ContactPhone != nil {
		s.StaffContactPhone = strings.TrimSpace(*r.ContactPhone)
	}
	if r.Designation != nil {
		s.StaffDesignation = strings.TrimSpace(*r.Designation)
	}
	if r.PhotoURL != nil {
		s.StaffPhotoURL = r.PhotoURL
	}
}

func FromStaffModel(s model.StaffModel) StaffResponse {
	return StaffResponse{
		StaffID:      s.StaffID,
		FullName:     s.StaffFullName,
		ContactEmail: s.StaffContactEmail,
		ContactPhone: s.StaffContactPhone,
		Designation:  s.StaffDesignation,
		PhotoURL:     s.StaffPhotoURL,
	}
}
