package course

import "gorm.io/gorm"

// Course approval states. Only approved courses are visible to students.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Course represents a learning course published by an instructor
type Course struct {
	gorm.Model
	InstructorID   uint    `json:"instructor_id" gorm:"index;not null"`
	Title          string  `json:"title" gorm:"not null"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Price          float64 `json:"price" gorm:"default:0"` // 0 means free
	ThumbnailURL   string  `json:"thumbnail_url"`
	ApprovalStatus string  `json:"approval_status" gorm:"default:'pending'"` // pending, approved, rejected
}

// Lesson belongs to exactly one course; removed when the course is removed
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	YoutubeLink string `json:"youtube_link"`
	VideoFile   string `json:"video_file"`
}
