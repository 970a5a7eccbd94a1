package controllers

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// BrowseCourses lists approved courses, optionally filtered by ?q=
func (ctrl *CourseController) BrowseCourses(c *fiber.Ctx) error {
	query := c.Query("q")

	courses, err := ctrl.Catalog.Browse(c.UserContext(), query)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"query":   query,
	})
}

// GetCourseDetail returns a course with its lessons and the student's
// completion state
func (ctrl *CourseController) GetCourseDetail(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	detail, err := ctrl.Catalog.Detail(c.UserContext(), userID, courseID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", detail)
}
