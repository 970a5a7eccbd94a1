package controllers

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz grades the submitted answer set against the lesson's full
// question bank and stores the latest score.
func (ctrl *CourseController) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	lessonID := c.Locals("lessonID").(uint)
	answers := c.Locals("quizAnswers").(map[uint]uint)

	result, err := ctrl.Quiz.Grade(c.UserContext(), userID, lessonID, answers)
	if err != nil {
		return serviceError(c, err)
	}

	message := "Quiz graded."
	if result.IsPerfect {
		message = "Perfect score!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, result)
}
