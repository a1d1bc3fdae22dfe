package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/auth/model"
)

/* =======================
   Request DTO
======================= */

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email"    validate:"omitempty,email"`
	FullName string `json:"full_name" validate:"omitempty,max=150"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type ProfileUpdateRequest struct {
	Email    *string `json:"email,omitempty"     validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=150"`
}

// AdminUserUpsertRequest covers admin-side create and approve/update.
type AdminUserUpsertRequest struct {
	Username   *string `json:"username,omitempty"    validate:"omitempty,min=3,max=150"`
	Email      *string `json:"email,omitempty"       validate:"omitempty,email"`
	FullName   *string `json:"full_name,omitempty"   validate:"omitempty,max=150"`
	Password   *string `json:"password,omitempty"    validate:"omitempty,min=8"`
	Role       *string `json:"role,omitempty"        validate:"omitempty,oneof=student teacher staff admin"`
	IsApproved *bool   `json:"is_approved,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type AdminResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

/* =======================
   Response DTO
======================= */

type UserResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

/* =======================
   Helpers
======================= */

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
}

func (r *RegisterRequest) ToModel() (model.UserModel, error) {
	u := model.UserModel{
		UserUsername: r.Username,
		UserEmail:    r.Email,
		UserFullName: r.FullName,
		UserRole:     "student",
	}
	if err := u.SetPassword(r.Password); err != nil {
		return model.UserModel{}, err
	}
	return u, nil
}

func (r *AdminUserUpsertRequest) ApplyUpdates(u *model.UserModel) error {
	if r.Username != nil {
		u.UserUsername = strings.TrimSpace(*r.Username)
	}
	if r.Email != nil {
		u.UserEmail = strings.TrimSpace(strings.ToLower(*r.Email))
	}
	if r.FullName != nil {
		u.UserFullName = strings.TrimSpace(*r.FullName)
	}
	if r.Role != nil {
		u.UserRole = *r.Role
	}
	if r.IsApproved != nil {
		u.UserIsApproved = *r.IsApproved
	}
	if r.IsActive != nil {
		u.UserIsActive = *r.IsActive
	}
	if r.Password != nil {
		if err := u.SetPassword(*r.Password); err != nil {
			return err
		}
	}
	return nil
}

func FromModel(u model.UserModel) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Username:   u.UserUsername,
		Email:      u.UserEmail,
		FullName:   u.UserFullName,
		Role:       u.UserRole,
		IsApproved: u.UserIsApproved,
		IsActive:   u.UserIsActive,
		CreatedAt:  u.UserCreatedAt,
	}
}
