package services

import (
	"context"
	"encoding/json"
	"errors"

	courseModels "lms/models/course"
	"lms/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IncorrectAnswer is the diagnostic for one wrong or unanswered question.
type IncorrectAnswer struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// QuizResult is the outcome of grading one submission.
type QuizResult struct {
	Score     int               `json:"score"`
	Total     int               `json:"total"`
	IsPerfect bool              `json:"is_perfect"`
	Incorrect []IncorrectAnswer `json:"incorrect_answers"`
}

// QuizService grades single-correct-answer multiple choice quizzes.
type QuizService struct {
	catalog repository.CatalogRepo
	scores  repository.QuizScoreRepo
}

func NewQuizService(catalog repository.CatalogRepo, scores repository.QuizScoreRepo) *QuizService {
	return &QuizService{catalog: catalog, scores: scores}
}

// QuestionsWithChoices loads a lesson's question bank for rendering.
func (s *QuizService) QuestionsWithChoices(ctx context.Context, lessonID uint) ([]courseModels.Question, map[uint][]courseModels.Choice, error) {
	questions, err := s.catalog.ListQuestions(ctx, lessonID)
	if err != nil {
		return nil, nil, err
	}
	choicesByQuestion := make(map[uint][]courseModels.Choice, len(questions))
	for _, q := range questions {
		choices, err := s.catalog.ListChoices(ctx, q.ID)
		if err != nil {
			return nil, nil, err
		}
		choicesByQuestion[q.ID] = choices
	}
	return questions, choicesByQuestion, nil
}

// Grade evaluates answers (question id -> selected choice id) against every
// question of the lesson, not just the answered ones. A question counts as
// correct only when the submitted choice belongs to that question and carries
// the correct flag. The score row for (student, lesson) is overwritten; no
// attempt history is kept.
func (s *QuizService) Grade(ctx context.Context, studentID, lessonID uint, answers map[uint]uint) (*QuizResult, error) {
	if _, err := s.catalog.GetLesson(ctx, lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	questions, err := s.catalog.ListQuestions(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	result := &QuizResult{Total: len(questions)}

	for _, q := range questions {
		choices, err := s.catalog.ListChoices(ctx, q.ID)
		if err != nil {
			return nil, err
		}

		var selected, correct *courseModels.Choice
		selectedID, answered := answers[q.ID]
		for i := range choices {
			if answered && choices[i].ID == selectedID {
				selected = &choices[i]
			}
			if correct == nil && choices[i].IsCorrect {
				correct = &choices[i]
			}
		}

		if selected != nil && selected.IsCorrect {
			result.Score++
			continue
		}

		yourAnswer := "No answer"
		if selected != nil {
			yourAnswer = selected.Text
		}
		correctAnswer := "N/A"
		if correct != nil {
			correctAnswer = correct.Text
		}
		result.Incorrect = append(result.Incorrect, IncorrectAnswer{
			Question:      q.Text,
			YourAnswer:    yourAnswer,
			CorrectAnswer: correctAnswer,
		})
	}

	result.IsPerfect = result.Score == result.Total

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	row := &courseModels.QuizScore{
		StudentID: studentID,
		LessonID:  lessonID,
		Score:     result.Score,
		Total:     result.Total,
		IsPerfect: result.IsPerfect,
		Answers:   datatypes.JSON(answersJSON),
	}
	if err := s.scores.Upsert(ctx, row); err != nil {
		return nil, err
	}

	return result, nil
}
