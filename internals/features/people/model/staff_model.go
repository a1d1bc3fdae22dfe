package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffModel struct {
	StaffID uuid.UUID `gorm:"column:staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_id"`

	StaffFullName     string  `gorm:"column:staff_full_name;type:varchar(150);not null" json:"staff_full_name"`
	StaffContactEmail string  `gorm:"column:staff_contact_email;type:varchar(255)" json:"staff_contact_email"`
	StaffContactPhone string  `gorm:"column:staff_contact_phone;type:varchar(20)" json:"staff_contact_phone"`
	StaffDesignation  string  `gorm:"column:staff_designation;type:varchar(100)" json:"staff_designation"`
	StaffPhotoURL     *string `gorm:"column:staff_photo_url;type:text" json:"staff_photo_url,omitempty"`

	StaffCreatedAt time.Time      `gorm:"column:staff_created_at;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt time.Time      `gorm:"column:staff_updated_at;autoUpdateTime" json:"staff_updated_at"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;index" json:"-"`
}

func (StaffModel) TableName() string {
	return "staff_members"
}
