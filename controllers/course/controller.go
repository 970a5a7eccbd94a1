package controllers

import (
	"errors"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// CourseController holds the injected services behind the student-facing
// course routes.
type CourseController struct {
	Catalog      *services.CatalogService
	Enrollments  *services.EnrollmentService
	Progress     *services.ProgressService
	Quiz         *services.QuizService
	Certificates *services.CertificateService
}

func NewCourseController(
	catalog *services.CatalogService,
	enrollments *services.EnrollmentService,
	progress *services.ProgressService,
	quiz *services.QuizService,
	certificates *services.CertificateService,
) *CourseController {
	return &CourseController{
		Catalog:      catalog,
		Enrollments:  enrollments,
		Progress:     progress,
		Quiz:         quiz,
		Certificates: certificates,
	}
}

// studentID pulls the authenticated user id set by the JWT middleware.
func studentID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userId").(uint)
	return id, ok
}

// serviceError maps service failures onto the response envelope.
func serviceError(c *fiber.Ctx, err error) error {
	var eligibility *services.EligibilityError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.Is(err, services.ErrNotApproved):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not approved!", nil)
	case errors.Is(err, services.ErrNotEnrolled):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	case errors.As(err, &eligibility):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate requirements not met!", eligibility)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
