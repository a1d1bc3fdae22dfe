package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "schoolku_backend/internals/features/academics/attendance/route"
	examRoute "schoolku_backend/internals/features/academics/exams/route"
	timetableRoute "schoolku_backend/internals/features/academics/timetable/route"
	galleryRoute "schoolku_backend/internals/features/institution/gallery/route"
	masterRoute "schoolku_backend/internals/features/master/route"
	peopleRoute "schoolku_backend/internals/features/people/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	authRoute.AuthPublicRoutes(public, db)
	galleryRoute.GalleryPublicRoutes(public, db)

	// ===================== PRIVATE (any logged-in user) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(db))
	authRoute.AuthUserRoutes(private, db)
	masterRoute.MasterRoutes(private, db)
	peopleRoute.PeopleRoutes(private, db)
	timetableRoute.TimetableRoutes(private, db)
	examRoute.ExamRoutes(private, db)
	attendanceRoute.AttendanceRoutes(private, db)
	galleryRoute.GalleryAdminRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	authRoute.AuthAdminRoutes(private, db)
}
