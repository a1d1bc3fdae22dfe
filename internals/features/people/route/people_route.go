package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	peopleCtl "schoolku_backend/internals/features/people/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// PeopleRoutes: student, teacher and staff directories. Reads are open
// to any logged-in user, writes are restricted to staff and admin.
func PeopleRoutes(api fiber.Router, db *gorm.DB) {
	studentCtl := peopleCtl.NewStudentController(db, nil)
	teacherCtl := peopleCtl.NewTeacherController(db, nil)
	staffCtl := peopleCtl.NewStaffController(db, nil)

	api.Get("/students", studentCtl.List)
	api.Get("/students/:id", studentCtl.GetByID)
	api.Get("/teachers", teacherCtl.List)
	api.Get("/teachers/:id", teacherCtl.GetByID)
	api.Get("/staff", staffCtl.List)

	staff := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("people records"),
			constants.StaffAndAbove,
		),
	)
	staff.Post("/students", studentCtl.Create)
	staff.Patch("/students/:id", studentCtl.Patch)
	staff.Delete("/students/:id", studentCtl.Delete)

	staff.Post("/teachers", teacherCtl.Create)
	staff.Patch("/teachers/:id", teacherCtl.Patch)
	staff.Delete("/teachers/:id", teacherCtl.Delete)

	staff.Post("/staff", staffCtl.Create)
	staff.Patch("/staff/:id", staffCtl.Patch)
	staff.Delete("/staff/:id", staffCtl.Delete)
}
