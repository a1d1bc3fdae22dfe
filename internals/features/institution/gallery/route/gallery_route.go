package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	galleryCtl "schoolku_backend/internals/features/institution/gallery/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// GalleryPublicRoutes: the gallery and banners are world-readable.
func GalleryPublicRoutes(api fiber.Router, db *gorm.DB) {
	gallery := galleryCtl.NewGalleryController(db)
	banner := galleryCtl.NewBannerController(db)

	api.Get("/gallery", gallery.List)
	api.Get("/banners", banner.List)
}

// GalleryAdminRoutes: uploads and deletes need staff or admin.
func GalleryAdminRoutes(api fiber.Router, db *gorm.DB) {
	gallery := galleryCtl.NewGalleryController(db)
	banner := galleryCtl.NewBannerController(db)

	staff := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("gallery management"),
			constants.StaffAndAbove,
		),
	)
	staff.Post("/gallery", gallery.Upload)
	staff.Delete("/gallery/:id", gallery.Delete)

	staff.Post("/banners", banner.Upload)
	staff.Delete("/banners/:id", banner.Delete)
}
