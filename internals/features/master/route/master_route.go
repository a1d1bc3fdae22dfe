package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	masterCtl "schoolku_backend/internals/features/master/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// MasterRoutes: sections, classes and subjects. Reads are open to any
// logged-in user, writes are restricted to staff and admin.
func MasterRoutes(api fiber.Router, db *gorm.DB) {
	sectionCtl := masterCtl.NewSectionController(db, nil)
	classCtl := masterCtl.NewClassController(db, nil)
	subjectCtl := masterCtl.NewSubjectController(db, nil)

	api.Get("/sections", sectionCtl.List)
	api.Get("/classes", classCtl.List)
	api.Get("/classes/:id", classCtl.GetByID)
	api.Get("/subjects", subjectCtl.List)

	staff := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("master data"),
			constants.StaffAndAbove,
		),
	)
	staff.Post("/sections", sectionCtl.Create)
	staff.Patch("/sections/:id", sectionCtl.Patch)
	staff.Delete("/sections/:id", sectionCtl.Delete)

	staff.Post("/classes", classCtl.Create)
	staff.Patch("/classes/:id", classCtl.Patch)
	staff.Delete("/classes/:id", classCtl.Delete)

	staff.Post("/subjects", subjectCtl.Create)
	staff.Patch("/subjects/:id", subjectCtl.Patch)
	staff.Delete("/subjects/:id", subjectCtl.Delete)
}
