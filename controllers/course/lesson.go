package controllers

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// ViewLesson records the lesson view (completing the lesson for the student)
// and returns the lesson with its quiz questions. Video metadata is
// best-effort.
func (ctrl *CourseController) ViewLesson(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	lessonID := c.Locals("lessonID").(uint)

	progress, lesson, err := ctrl.Progress.RecordView(c.UserContext(), userID, lessonID)
	if err != nil {
		return serviceError(c, err)
	}

	questions, choicesByQuestion, err := ctrl.Quiz.QuestionsWithChoices(c.UserContext(), lessonID)
	if err != nil {
		return serviceError(c, err)
	}

	var videoMeta *utils.VideoMeta
	if lesson.YoutubeLink != "" {
		if meta, err := utils.FetchVideoMeta(lesson.YoutubeLink); err == nil {
			videoMeta = meta
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":     lesson,
		"progress":   progress,
		"questions":  toQuestionViews(questions, choicesByQuestion),
		"video_meta": videoMeta,
	})
}

// quizQuestionView strips the correct flags off choices before rendering
type quizQuestionView struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Choices []choice `json:"choices"`
}

type choice struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

func toQuestionViews(questions []courseModels.Question, choicesByQuestion map[uint][]courseModels.Choice) []quizQuestionView {
	views := make([]quizQuestionView, 0, len(questions))
	for _, q := range questions {
		view := quizQuestionView{ID: q.ID, Text: q.Text}
		for _, ch := range choicesByQuestion[q.ID] {
			view.Choices = append(view.Choices, choice{ID: ch.ID, Text: ch.Text})
		}
		views = append(views, view)
	}
	return views
}
