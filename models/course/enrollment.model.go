package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a student to a course. The composite unique index is the
// natural key; enrollment rows are never mutated or auto-deleted.
type Enrollment struct {
	gorm.Model
	StudentID  uint      `json:"student_id" gorm:"uniqueIndex:idx_enrollments_student_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollments_student_course;not null"`
	EnrolledOn time.Time `json:"enrolled_on"`
}
