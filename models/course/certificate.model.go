package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued at most once per (student, course). The row may exist
// briefly without a file reference if the process died mid-generation; the
// next request regenerates the file and fills CertificateURL.
type Certificate struct {
	gorm.Model
	StudentID         uint      `json:"student_id" gorm:"uniqueIndex:idx_certificates_student_course;not null"`
	CourseID          uint      `json:"course_id" gorm:"uniqueIndex:idx_certificates_student_course;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	CertificateURL    string    `json:"certificate_url"`
	IssuedOn          time.Time `json:"issued_on"`
}
