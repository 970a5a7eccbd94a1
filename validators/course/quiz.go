package courseValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// quizSubmission carries the answer set: question id -> selected choice id.
// Unanswered questions are simply absent from the map.
type quizSubmission struct {
	Answers map[uint]uint `json:"answers" validate:"required"`
}

// SubmitQuiz validator middleware
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(quizSubmission)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Field is " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		for questionID, choiceID := range reqData.Answers {
			if questionID == 0 || choiceID == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question or choice ID!", nil)
			}
		}

		c.Locals("quizAnswers", reqData.Answers)
		return c.Next()
	}
}
