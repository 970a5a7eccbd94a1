package repository

import (
	"context"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// CatalogRepo reads course/lesson/question/choice reference data. Writes are
// limited to the cascade delete used when an instructor or admin removes a
// whole course.
type CatalogRepo interface {
	GetCourse(ctx context.Context, id uint) (*courseModels.Course, error)
	ListApprovedCourses(ctx context.Context, query string) ([]courseModels.Course, error)
	GetLesson(ctx context.Context, id uint) (*courseModels.Lesson, error)
	ListLessons(ctx context.Context, courseID uint) ([]courseModels.Lesson, error)
	ListQuestions(ctx context.Context, lessonID uint) ([]courseModels.Question, error)
	ListChoices(ctx context.Context, questionID uint) ([]courseModels.Choice, error)
	CountQuestions(ctx context.Context, lessonID uint) (int64, error)
	DeleteCourseCascade(ctx context.Context, courseID uint) error
}

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) GetCourse(ctx context.Context, id uint) (*courseModels.Course, error) {
	var result courseModels.Course
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *catalogRepo) ListApprovedCourses(ctx context.Context, query string) ([]courseModels.Course, error) {
	var results []courseModels.Course
	db := r.db.WithContext(ctx).Where("approval_status = ?", courseModels.ApprovalApproved)
	if query != "" {
		like := "%" + query + "%"
		db = db.Where("title LIKE ? OR description LIKE ? OR category LIKE ?", like, like, like)
	}
	if err := db.Order("created_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *catalogRepo) GetLesson(ctx context.Context, id uint) (*courseModels.Lesson, error) {
	var result courseModels.Lesson
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *catalogRepo) ListLessons(ctx context.Context, courseID uint) ([]courseModels.Lesson, error) {
	var results []courseModels.Lesson
	if err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *catalogRepo) ListQuestions(ctx context.Context, lessonID uint) ([]courseModels.Question, error) {
	var results []courseModels.Question
	if err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("id asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *catalogRepo) ListChoices(ctx context.Context, questionID uint) ([]courseModels.Choice, error) {
	var results []courseModels.Choice
	if err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *catalogRepo) CountQuestions(ctx context.Context, lessonID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&courseModels.Question{}).
		Where("lesson_id = ?", lessonID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCourseCascade removes a course together with its lessons, questions,
// choices and all per-student records in one transaction.
func (r *catalogRepo) DeleteCourseCascade(ctx context.Context, courseID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&courseModels.Lesson{}).Select("id").Where("course_id = ?", courseID)
		questionIDs := tx.Model(&courseModels.Question{}).Select("id").Where("lesson_id IN (?)", lessonIDs)

		if err := tx.Unscoped().Where("question_id IN (?)", questionIDs).Delete(&courseModels.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("lesson_id IN (?)", lessonIDs).Delete(&courseModels.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("lesson_id IN (?)", lessonIDs).Delete(&courseModels.LessonProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("lesson_id IN (?)", lessonIDs).Delete(&courseModels.QuizScore{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&courseModels.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&courseModels.Certificate{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&courseModels.Course{}, courseID).Error
	})
}
