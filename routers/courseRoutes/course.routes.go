package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App, ctrl *controllers.CourseController) {
	courseGroup := app.Group("/course")

	// Browsing (approved courses only; listing is public)
	courseGroup.Get("/list", ctrl.BrowseCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), ctrl.GetCourseDetail)

	// Enrollment and the stubbed payment flow
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), ctrl.EnrollInCourse)
	courseGroup.Post("/:id/payment", middleware.JWTMiddleware, validators.CourseID(), ctrl.StartPayment)

	// Certificate request
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.CourseID(), ctrl.RequestCertificate)

	// Lesson viewing and quiz submission
	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/:id", middleware.JWTMiddleware, validators.LessonID(), ctrl.ViewLesson)
	lessonGroup.Post("/:id/quiz", middleware.JWTMiddleware, validators.LessonID(), validators.SubmitQuiz(), ctrl.SubmitQuiz)

	// Per-student aggregates
	userGroup := app.Group("/user")
	userGroup.Get("/dashboard", middleware.JWTMiddleware, ctrl.GetDashboard)
	userGroup.Get("/certificates", middleware.JWTMiddleware, ctrl.GetMyCertificates)
}
