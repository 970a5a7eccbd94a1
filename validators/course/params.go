package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id path parameter and stores it in Locals
func CourseID() fiber.Handler {
	return idParam("id", "courseID", "Course")
}

// LessonID validates the :id path parameter and stores it in Locals
func LessonID() fiber.Handler {
	return idParam("id", "lessonID", "Lesson")
}

func idParam(param, localKey, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+" ID!", nil)
		}

		c.Locals(localKey, uint(id))
		return c.Next()
	}
}
