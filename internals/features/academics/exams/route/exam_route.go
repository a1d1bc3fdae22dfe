package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	examCtl "schoolku_backend/internals/features/academics/exams/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// ExamRoutes: grade scales, exams, marks and finalization. Reads are
// open to any logged-in user; marking needs a teacher, finalizing and
// scale management need staff or admin.
func ExamRoutes(api fiber.Router, db *gorm.DB) {
	scaleCtl := examCtl.NewGradeScaleController(db, nil)
	examController := examCtl.NewExamController(db, nil)
	finalsCtl := examCtl.NewFinalsController(db, nil)

	api.Get("/grade-scales", scaleCtl.List)
	api.Get("/exams", examController.List)
	api.Get("/exams/:id", examController.GetByID)
	api.Get("/exams/:id/marks", examController.ListMarks)

	teacher := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("exam marking"),
			constants.TeacherAndAbove,
		),
	)
	teacher.Post("/exams/:id/marks", examController.UpsertMark)

	staff := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("exam management"),
			constants.StaffAndAbove,
		),
	)
	staff.Post("/grade-scales", scaleCtl.Create)
	staff.Post("/grade-scales/:id/activate", scaleCtl.Activate)
	staff.Delete("/grade-scales/:id", scaleCtl.Delete)

	staff.Post("/exams", examController.Create)
	staff.Delete("/exams/:id", examController.Delete)
	staff.Post("/finals/finalize-publish", finalsCtl.FinalizePublish)
}
