package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authCtl "schoolku_backend/internals/features/users/auth/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login, no token required.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)

	api.Post("/auth/register", middlewares.RegisterRateLimiter(), ctl.Register)
	api.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthUserRoutes: endpoints for any logged-in user.
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)

	api.Post("/auth/logout", ctl.Logout)
	api.Get("/auth/user", ctl.Profile)
	api.Patch("/auth/update-profile", ctl.UpdateProfile)
	api.Post("/auth/change-password", ctl.ChangePassword)
}

// AuthAdminRoutes: admin-only user management.
func AuthAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAdminUserController(db, nil)

	base := api.Group("/admin/users",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("user management"),
			constants.AdminOnly,
		),
	)
	base.Get("/", ctl.List)
	base.Post("/", ctl.Create)
	base.Get("/:id", ctl.GetByID)
	base.Patch("/:id", ctl.Patch)
	base.Delete("/:id", ctl.Delete)
	base.Post("/:id/reset-password", ctl.ResetPassword)
}
