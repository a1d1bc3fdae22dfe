package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	// Optional link to a login account.
	TeacherUserID *uuid.UUID `gorm:"column:teacher_user_id;type:uuid;uniqueIndex" json:"teacher_user_id,omitempty"`

	TeacherFullName     string  `gorm:"column:teacher_full_name;type:varchar(150);not null" json:"teacher_full_name"`
	TeacherContactEmail string  `gorm:"column:teacher_contact_email;type:varchar(255)" json:"teacher_contact_email"`
	TeacherContactPhone string  `gorm:"column:teacher_contact_phone;type:varchar(20)" json:"teacher_contact_phone"`
	TeacherSubject      string  `gorm:"column:teacher_subject;type:varchar(100)" json:"teacher_subject"`
	TeacherDesignation  string  `gorm:"column:teacher_designation;type:varchar(100)" json:"teacher_designation"`
	TeacherIntro        *string `gorm:"column:teacher_intro;type:text" json:"teacher_intro,omitempty"`
	TeacherPhotoURL     *string `gorm:"column:teacher_photo_url;type:text" json:"teacher_photo_url,omitempty"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
