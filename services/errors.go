package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced course, lesson, question or choice does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotApproved means the targeted course has not been approved by an
	// admin and is not enrollable.
	ErrNotApproved = errors.New("course is not approved")
	// ErrNotEnrolled means a progress or certificate action was attempted
	// without an enrollment.
	ErrNotEnrolled = errors.New("not enrolled in this course")
)

// Eligibility failure reasons reported to the student.
const (
	ReasonLessonNotCompleted = "lesson not completed"
	ReasonQuizNotPerfect     = "full marks required on quiz"
)

// EligibilityError names the first lesson (ascending id) that blocks
// certificate issuance.
type EligibilityError struct {
	Reason      string `json:"reason"`
	LessonTitle string `json:"lesson_title"`
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("not eligible for certificate: %s (%s)", e.Reason, e.LessonTitle)
}
