package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonProgress is upserted on every lesson view, keyed (student, lesson)
type LessonProgress struct {
	gorm.Model
	StudentID   uint      `json:"student_id" gorm:"uniqueIndex:idx_lesson_progress_student_lesson;not null"`
	LessonID    uint      `json:"lesson_id" gorm:"uniqueIndex:idx_lesson_progress_student_lesson;not null"`
	IsCompleted bool      `json:"is_completed" gorm:"default:false"`
	WatchedOn   time.Time `json:"watched_on"`
}

// QuizScore keeps only the latest quiz attempt per (student, lesson); a
// retake overwrites the row. Answers holds the submitted question->choice map.
type QuizScore struct {
	gorm.Model
	StudentID uint           `json:"student_id" gorm:"uniqueIndex:idx_quiz_scores_student_lesson;not null"`
	LessonID  uint           `json:"lesson_id" gorm:"uniqueIndex:idx_quiz_scores_student_lesson;not null"`
	Score     int            `json:"score"`
	Total     int            `json:"total"` // question count at grading time
	IsPerfect bool           `json:"is_perfect" gorm:"default:false"`
	Answers   datatypes.JSON `json:"answers"`
}
