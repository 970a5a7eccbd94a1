package services

import (
	"context"
	"errors"

	courseModels "lms/models/course"
	"lms/repository"

	"gorm.io/gorm"
)

// CatalogService exposes the student-facing read side of the catalog.
type CatalogService struct {
	catalog     repository.CatalogRepo
	enrollments repository.EnrollmentRepo
	progress    repository.ProgressRepo
}

func NewCatalogService(catalog repository.CatalogRepo, enrollments repository.EnrollmentRepo, progress repository.ProgressRepo) *CatalogService {
	return &CatalogService{catalog: catalog, enrollments: enrollments, progress: progress}
}

// Browse lists approved courses, optionally filtered by a free-text query
// over title, description and category.
func (s *CatalogService) Browse(ctx context.Context, query string) ([]courseModels.Course, error) {
	return s.catalog.ListApprovedCourses(ctx, query)
}

// CourseDetail is the course page payload for one student.
type CourseDetail struct {
	Course           *courseModels.Course  `json:"course"`
	Lessons          []courseModels.Lesson `json:"lessons"`
	IsEnrolled       bool                  `json:"is_enrolled"`
	CompletedLessons []uint                `json:"completed_lessons"`
}

func (s *CatalogService) Detail(ctx context.Context, studentID, courseID uint) (*CourseDetail, error) {
	c, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lessons, err := s.catalog.ListLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	lessonIDs := make([]uint, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}
	completed, err := s.progress.CompletedLessonIDs(ctx, studentID, lessonIDs)
	if err != nil {
		return nil, err
	}

	return &CourseDetail{
		Course:           c,
		Lessons:          lessons,
		IsEnrolled:       enrolled,
		CompletedLessons: completed,
	}, nil
}
