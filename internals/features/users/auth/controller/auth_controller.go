package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	d "schoolku_backend/internals/features/users/auth/dto"
	m "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validate: v}
}

func accessTokenTTL() time.Duration {
	if raw := configs.GetEnv("JWT_ACCESS_TTL_HOURS"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return 24 * time.Hour
}

func issueAccessToken(u m.UserModel, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserUsername,
		"role":      u.UserRole,
		"exp":       exp.Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	return signed, exp, err
}

/* ========================= Register ========================= */

// Register handles public self-signup. New accounts start unapproved with
// the student role; an admin promotes them.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	user, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful", d.FromModel(user))
}

/* ========================= Login ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user m.UserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("user_username = ?", req.Username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if !user.CheckPassword(req.Password) {
		return helper.JsonError(c, http.StatusUnauthorized, "Invalid username or password")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "Your account has been deactivated")
	}

	signed, exp, err := issueAccessToken(user, accessTokenTTL())
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to sign token")
	}

	return helper.JsonOK(c, "Login successful", d.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   exp,
		User:        d.FromModel(user),
	})
}

/* ========================= Logout ========================= */

// Logout blacklists the presented token until its natural expiry.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, http.StatusBadRequest, "No token supplied")
	}

	exp := time.Now().Add(accessTokenTTL())
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			exp = time.Unix(int64(expFloat), 0)
		}
	}

	entry := m.TokenBlacklist{Token: raw, ExpiresAt: exp}
	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonOK(c, "Logged out", nil)
}

/* ========================= Profile ========================= */

func (ctl *AuthController) Profile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(user))
}

func (ctl *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "User not found")
	}
	if req.Email != nil {
		user.UserEmail = *req.Email
	}
	if req.FullName != nil {
		user.UserFullName = *req.FullName
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonUpdated(c, "", d.FromModel(user))
}

/* ========================= Change password ========================= */

func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "User not found")
	}
	if !user.CheckPassword(req.OldPassword) {
		return helper.JsonError(c, http.StatusBadRequest, "Old password is incorrect")
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to hash password")
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.JsonPGError(c, err)
	}
	return helper.JsonOK(c, "Password changed", nil)
}
