package course

import "gorm.io/gorm"

// Question is a single-correct-answer multiple choice question of a lesson
type Question struct {
	gorm.Model
	LessonID uint   `json:"lesson_id" gorm:"index;not null"`
	Text     string `json:"text" gorm:"not null"`
}

// Choice is one selectable answer of a question
type Choice struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
