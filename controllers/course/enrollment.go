package controllers

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the student into an approved course. Enrolling twice
// is reported as informational, not as a failure.
func (ctrl *CourseController) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	enrollment, already, err := ctrl.Enrollments.Enroll(c.UserContext(), userID, courseID)
	if err != nil {
		return serviceError(c, err)
	}

	if already {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course.", enrollment)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully enrolled in the course!", enrollment)
}

// StartPayment is the stubbed payment flow: posting to it confirms the
// "payment" and enrolls the student.
func (ctrl *CourseController) StartPayment(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	enrollment, paid, err := ctrl.Enrollments.StartPayment(c.UserContext(), userID, courseID)
	if err != nil {
		return serviceError(c, err)
	}

	message := "Successfully enrolled in the course!"
	if paid {
		message = "Payment successful! You're now enrolled."
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, enrollment)
}

// GetDashboard summarizes every enrollment with progress and the next lesson
func (ctrl *CourseController) GetDashboard(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	entries, err := ctrl.Progress.Dashboard(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"enrollments": entries,
		"total":       len(entries),
	})
}
