package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserModel backs the users table. Passwords are bcrypt hashes, never
// plaintext.
type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserUsername string `gorm:"column:user_username;size:150;uniqueIndex;not null" json:"user_username"`
	UserEmail    string `gorm:"column:user_email;size:255" json:"user_email"`
	UserFullName string `gorm:"column:user_full_name;size:150" json:"user_full_name"`
	UserPassword string `gorm:"column:user_password;not null" json:"-"`

	UserRole       string `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role"`
	UserIsApproved bool   `gorm:"column:user_is_approved;not null;default:false" json:"user_is_approved"`
	UserIsActive   bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
