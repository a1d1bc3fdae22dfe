package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// Optional link to a login account.
	StudentUserID *uuid.UUID `gorm:"column:student_user_id;type:uuid;uniqueIndex" json:"student_user_id,omitempty"`

	StudentFullName    string     `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`
	StudentGender      string     `gorm:"column:student_gender;type:varchar(1)" json:"student_gender"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`

	StudentClassID   uuid.UUID `gorm:"column:student_class_id;type:uuid;not null;uniqueIndex:uniq_student_class_section_roll" json:"student_class_id"`
	StudentSectionID uuid.UUID `gorm:"column:student_section_id;type:uuid;not null;uniqueIndex:uniq_student_class_section_roll" json:"student_section_id"`
	StudentRollNo    int       `gorm:"column:student_roll_no;not null;uniqueIndex:uniq_student_class_section_roll" json:"student_roll_no"`

	StudentAdmissionNo *string `gorm:"column:student_admission_no;type:varchar(64);uniqueIndex" json:"student_admission_no,omitempty"`

	StudentGuardianName  string  `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name"`
	StudentGuardianPhone string  `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone"`
	StudentContactEmail  *string `gorm:"column:student_contact_email;type:varchar(255)" json:"student_contact_email,omitempty"`
	StudentContactPhone  *string `gorm:"column:student_contact_phone;type:varchar(30)" json:"student_contact_phone,omitempty"`
	StudentAddress       string  `gorm:"column:student_address;type:text" json:"student_address"`
	StudentPhotoURL      *string `gorm:"column:student_photo_url;type:text" json:"student_photo_url,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}
