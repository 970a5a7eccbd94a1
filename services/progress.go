package services

import (
	"context"
	"errors"
	"time"

	courseModels "lms/models/course"
	"lms/repository"

	"gorm.io/gorm"
)

// ProgressService tracks per-lesson completion. A single view completes a
// lesson; no minimum watch duration is modeled.
type ProgressService struct {
	catalog     repository.CatalogRepo
	enrollments repository.EnrollmentRepo
	progress    repository.ProgressRepo
}

func NewProgressService(catalog repository.CatalogRepo, enrollments repository.EnrollmentRepo, progress repository.ProgressRepo) *ProgressService {
	return &ProgressService{catalog: catalog, enrollments: enrollments, progress: progress}
}

// RecordView marks the lesson completed for the student and refreshes the
// watch timestamp. Repeated views update the same row. The student must be
// enrolled in the lesson's course.
func (s *ProgressService) RecordView(ctx context.Context, studentID, lessonID uint) (*courseModels.LessonProgress, *courseModels.Lesson, error) {
	lesson, err := s.catalog.GetLesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, lesson.CourseID)
	if err != nil {
		return nil, nil, err
	}
	if !enrolled {
		return nil, nil, ErrNotEnrolled
	}

	row, err := s.progress.UpsertView(ctx, studentID, lessonID, time.Now())
	if err != nil {
		return nil, nil, err
	}
	return row, lesson, nil
}

// CompletedLessonIDs lists the student's completed lessons within a course.
func (s *ProgressService) CompletedLessonIDs(ctx context.Context, studentID, courseID uint) ([]uint, error) {
	lessons, err := s.catalog.ListLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	return s.progress.CompletedLessonIDs(ctx, studentID, ids)
}

// ProgressPercent is floor(100 * completed / total), 0 for a course with no
// lessons.
func (s *ProgressService) ProgressPercent(ctx context.Context, studentID, courseID uint) (int, error) {
	lessons, completed, err := s.courseProgress(ctx, studentID, courseID)
	if err != nil {
		return 0, err
	}
	if len(lessons) == 0 {
		return 0, nil
	}
	return 100 * len(completed) / len(lessons), nil
}

// NextLesson is the lowest-id lesson not yet completed, falling back to the
// course's first lesson when everything is done. Nil for an empty course.
func (s *ProgressService) NextLesson(ctx context.Context, studentID, courseID uint) (*courseModels.Lesson, error) {
	lessons, completed, err := s.courseProgress(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, nil
	}

	done := make(map[uint]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	for i := range lessons {
		if !done[lessons[i].ID] {
			return &lessons[i], nil
		}
	}
	return &lessons[0], nil
}

// DashboardEntry summarizes one enrollment for the student dashboard.
type DashboardEntry struct {
	Course     *courseModels.Course `json:"course"`
	Progress   int                  `json:"progress"`
	NextLesson *courseModels.Lesson `json:"next_lesson"`
	EnrolledOn time.Time            `json:"enrolled_on"`
}

// Dashboard aggregates progress across every course the student is enrolled
// in.
func (s *ProgressService) Dashboard(ctx context.Context, studentID uint) ([]DashboardEntry, error) {
	enrollments, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	entries := make([]DashboardEntry, 0, len(enrollments))
	for _, e := range enrollments {
		c, err := s.catalog.GetCourse(ctx, e.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		percent, err := s.ProgressPercent(ctx, studentID, e.CourseID)
		if err != nil {
			return nil, err
		}
		next, err := s.NextLesson(ctx, studentID, e.CourseID)
		if err != nil {
			return nil, err
		}

		entries = append(entries, DashboardEntry{
			Course:     c,
			Progress:   percent,
			NextLesson: next,
			EnrolledOn: e.EnrolledOn,
		})
	}
	return entries, nil
}

func (s *ProgressService) courseProgress(ctx context.Context, studentID, courseID uint) ([]courseModels.Lesson, []uint, error) {
	lessons, err := s.catalog.ListLessons(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]uint, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	completed, err := s.progress.CompletedLessonIDs(ctx, studentID, ids)
	if err != nil {
		return nil, nil, err
	}
	return lessons, completed, nil
}
