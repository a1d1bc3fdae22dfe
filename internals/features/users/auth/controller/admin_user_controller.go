package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/users/auth/dto"
	m "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
)

// AdminUserController covers admin-side user management: list with filters,
// create staff accounts, approve, update and reset passwords.
type AdminUserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminUserController(db *gorm.DB, v *validator.Validate) *AdminUserController {
	if v == nil {
		v = validator.New()
	}
	return &AdminUserController{DB: db, Validate: v}
}

var userSortColumns = map[string]string{
	"created_at": "user_created_at",
	"username":   "user_username",
	"role":       "user_role",
}

// List supports ?approved=true|false and ?role= filters.
func (ctl *AdminUserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderClause(userSortColumns, "created_at")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.Context()).Model(&m.UserModel{})
	if raw := strings.TrimSpace(c.Query("approved")); raw != "" {
		approved := raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes")
		tx = tx.Where("user_is_approved = ?", approved)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("LOWER(user_role) = LOWER(?)", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var users []m.UserModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]d.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, d.FromModel(u))
	}
	return helper.JsonList(c, "", out, helper.BuildMeta(total, p))
}

func (ctl *AdminUserController) Create(c *fiber.Ctx) error {
	var req d.AdminUserUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if req.Username == nil || req.Password == nil {
		return helper.JsonError(c, http.StatusBadRequest, "username and password are required")
	}

	user := m.UserModel{UserRole: "staff", UserIsApproved: true}
	if err := req.ApplyUpdates(&user); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "", d.FromModel(user))
}

func (ctl *AdminUserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid user id")
	}
	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(user))
}

// Patch applies partial updates, e.g. {"is_approved": true, "role": "teacher"}.
func (ctl *AdminUserController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid user id")
	}

	var req d.AdminUserUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := req.ApplyUpdates(&user); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromModel(user))
}

func (ctl *AdminUserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid user id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&m.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.JsonPGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "User not found")
	}
	return helper.JsonDeleted(c, "", fiber.Map{"user_id": id})
}

func (ctl *AdminUserController) ResetPassword(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid user id")
	}

	var req d.AdminResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonOK(c, "Password reset", nil)
}
