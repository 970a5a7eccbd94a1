package services

import (
	"context"
	"errors"

	courseModels "lms/models/course"
	"lms/repository"

	"gorm.io/gorm"
)

// EnrollmentService is the gate for all downstream progress actions: nothing
// is tracked for a student until an enrollment row exists.
type EnrollmentService struct {
	catalog     repository.CatalogRepo
	enrollments repository.EnrollmentRepo
}

func NewEnrollmentService(catalog repository.CatalogRepo, enrollments repository.EnrollmentRepo) *EnrollmentService {
	return &EnrollmentService{catalog: catalog, enrollments: enrollments}
}

// Enroll creates the (student, course) enrollment. Enrolling twice is benign:
// the existing row comes back with alreadyEnrolled set. Courses that are not
// approved are not enrollable.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID uint) (enrollment *courseModels.Enrollment, alreadyEnrolled bool, err error) {
	c, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	if c.ApprovalStatus != courseModels.ApprovalApproved {
		return nil, false, ErrNotApproved
	}

	row, created, err := s.enrollments.GetOrCreate(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}
	return row, !created, nil
}

// StartPayment is a deliberate stub: free courses enroll directly and any
// confirmed "payment" on a priced course enrolls without gateway involvement.
// The bool reports whether payment confirmation was required at all.
func (s *EnrollmentService) StartPayment(ctx context.Context, studentID, courseID uint) (enrollment *courseModels.Enrollment, paid bool, err error) {
	c, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	row, _, err := s.Enroll(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}
	return row, c.Price > 0, nil
}

func (s *EnrollmentService) IsEnrolled(ctx context.Context, studentID, courseID uint) (bool, error) {
	return s.enrollments.Exists(ctx, studentID, courseID)
}
