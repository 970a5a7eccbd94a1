package repository

import (
	"context"
	"time"

	courseModels "lms/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepo interface {
	// GetOrCreate inserts the (student, course) enrollment if absent and
	// returns the surviving row. The bool reports whether a new row was
	// created by this call.
	GetOrCreate(ctx context.Context, studentID, courseID uint) (*courseModels.Enrollment, bool, error)
	Get(ctx context.Context, studentID, courseID uint) (*courseModels.Enrollment, error)
	Exists(ctx context.Context, studentID, courseID uint) (bool, error)
	ListByStudent(ctx context.Context, studentID uint) ([]courseModels.Enrollment, error)
	CountAll(ctx context.Context) (int64, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepo {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) GetOrCreate(ctx context.Context, studentID, courseID uint) (*courseModels.Enrollment, bool, error) {
	row := &courseModels.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledOn: time.Now(),
	}

	// Insert-or-ignore on the natural key closes the race window between
	// concurrent enroll requests; losers fall through to the fetch below.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return row, true, nil
	}

	existing, err := r.Get(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *enrollmentRepo) Get(ctx context.Context, studentID, courseID uint) (*courseModels.Enrollment, error) {
	var result courseModels.Enrollment
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *enrollmentRepo) Exists(ctx context.Context, studentID, courseID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *enrollmentRepo) ListByStudent(ctx context.Context, studentID uint) ([]courseModels.Enrollment, error) {
	var results []courseModels.Enrollment
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("enrolled_on desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *enrollmentRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&courseModels.Enrollment{}).Count(&count).Error
	return count, err
}
