package repository

import (
	"context"

	courseModels "lms/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizScoreRepo interface {
	// Upsert stores the latest attempt for (student, lesson); a retake
	// overwrites the prior score entirely.
	Upsert(ctx context.Context, row *courseModels.QuizScore) error
	Get(ctx context.Context, studentID, lessonID uint) (*courseModels.QuizScore, error)
}

type quizScoreRepo struct {
	db *gorm.DB
}

func NewQuizScoreRepo(db *gorm.DB) QuizScoreRepo {
	return &quizScoreRepo{db: db}
}

func (r *quizScoreRepo) Upsert(ctx context.Context, row *courseModels.QuizScore) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score", "total", "is_perfect", "answers", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *quizScoreRepo) Get(ctx context.Context, studentID, lessonID uint) (*courseModels.QuizScore, error) {
	var result courseModels.QuizScore
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
