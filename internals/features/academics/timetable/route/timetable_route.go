package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	ttCtl "schoolku_backend/internals/features/academics/timetable/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// TimetableRoutes: periods, classrooms and the weekly timetable. Reads
// are open to any logged-in user, writes are restricted to staff and
// admin.
func TimetableRoutes(api fiber.Router, db *gorm.DB) {
	periodCtl := ttCtl.NewPeriodController(db, nil)
	classroomCtl := ttCtl.NewClassroomController(db, nil)
	timetableCtl := ttCtl.NewTimetableController(db, nil)

	api.Get("/periods", periodCtl.List)
	api.Get("/classrooms", classroomCtl.List)
	api.Get("/timetable", timetableCtl.List)
	api.Get("/timetable/week", timetableCtl.Week)

	staff := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("timetable management"),
			constants.StaffAndAbove,
		),
	)
	staff.Post("/periods", periodCtl.Create)
	staff.Patch("/periods/:id", periodCtl.Patch)
	staff.Delete("/periods/:id", periodCtl.Delete)

	staff.Post("/classrooms", classroomCtl.Create)
	staff.Patch("/classrooms/:id", classroomCtl.Patch)
	staff.Delete("/classrooms/:id", classroomCtl.Delete)

	staff.Post("/timetable", timetableCtl.Create)
	staff.Patch("/timetable/:id", timetableCtl.Patch)
	staff.Delete("/timetable/:id", timetableCtl.Delete)
}
