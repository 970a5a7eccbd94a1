package repository

import (
	"context"
	"time"

	courseModels "lms/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepo interface {
	// UpsertView marks the lesson completed for the student, refreshing the
	// watch timestamp on repeat views. Exactly one row per (student, lesson).
	UpsertView(ctx context.Context, studentID, lessonID uint, watchedOn time.Time) (*courseModels.LessonProgress, error)
	Get(ctx context.Context, studentID, lessonID uint) (*courseModels.LessonProgress, error)
	CompletedLessonIDs(ctx context.Context, studentID uint, lessonIDs []uint) ([]uint, error)
}

type progressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepo {
	return &progressRepo{db: db}
}

func (r *progressRepo) UpsertView(ctx context.Context, studentID, lessonID uint, watchedOn time.Time) (*courseModels.LessonProgress, error) {
	row := &courseModels.LessonProgress{
		StudentID:   studentID,
		LessonID:    lessonID,
		IsCompleted: true,
		WatchedOn:   watchedOn,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_completed", "watched_on", "updated_at",
			}),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the surviving row, not the insert attempt.
	return r.Get(ctx, studentID, lessonID)
}

func (r *progressRepo) Get(ctx context.Context, studentID, lessonID uint) (*courseModels.LessonProgress, error) {
	var result courseModels.LessonProgress
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *progressRepo) CompletedLessonIDs(ctx context.Context, studentID uint, lessonIDs []uint) ([]uint, error) {
	var results []uint
	if len(lessonIDs) == 0 {
		return results, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&courseModels.LessonProgress{}).
		Where("student_id = ? AND lesson_id IN ? AND is_completed = ?", studentID, lessonIDs, true).
		Pluck("lesson_id", &results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
