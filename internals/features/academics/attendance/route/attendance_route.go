package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attCtl "schoolku_backend/internals/features/academics/attendance/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AttendanceRoutes: daily roster marking and monthly reports. Marking
// needs a teacher-level role; reads are open to any logged-in user.
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attCtl.NewAttendanceController(db, nil)

	api.Get("/attendance", ctl.List)
	api.Get("/attendance/report", ctl.Report)

	teacher := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("attendance marking"),
			constants.TeacherAndAbove,
		),
	)
	teacher.Get("/attendance/roster", ctl.Roster)
	teacher.Post("/attendance/roster", ctl.SubmitRoster)
}
