package repository

import (
	"context"
	"time"

	courseModels "lms/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepo interface {
	// GetOrCreate inserts the certificate row for (student, course) if absent.
	// Concurrent eligible requests race on the unique index; exactly one row
	// survives and both callers get it back.
	GetOrCreate(ctx context.Context, studentID, courseID uint, number string, issuedOn time.Time) (*courseModels.Certificate, bool, error)
	Get(ctx context.Context, studentID, courseID uint) (*courseModels.Certificate, error)
	AttachFile(ctx context.Context, id uint, fileURL string) error
	ListByStudent(ctx context.Context, studentID uint) ([]courseModels.Certificate, error)
	ListAll(ctx context.Context) ([]courseModels.Certificate, error)
}

type certificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) CertificateRepo {
	return &certificateRepo{db: db}
}

func (r *certificateRepo) GetOrCreate(ctx context.Context, studentID, courseID uint, number string, issuedOn time.Time) (*courseModels.Certificate, bool, error) {
	row := &courseModels.Certificate{
		StudentID:         studentID,
		CourseID:          courseID,
		CertificateNumber: number,
		IssuedOn:          issuedOn,
	}

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

func (r *certificateRepo) Get(ctx context.Context, studentID, courseID uint) (*courseModels.Certificate, error) {
	var result courseModels.Certificate
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *certificateRepo) AttachFile(ctx context.Context, id uint, fileURL string) error {
	return r.db.WithContext(ctx).
		Model(&courseModels.Certificate{}).
		Where("id = ?", id).
		Update("certificate_url", fileURL).Error
}

func (r *certificateRepo) ListByStudent(ctx context.Context, studentID uint) ([]courseModels.Certificate, error) {
	var results []courseModels.Certificate
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("issued_on desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *certificateRepo) ListAll(ctx context.Context) ([]courseModels.Certificate, error) {
	var results []courseModels.Certificate
	if err := r.db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
