package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a student to a course with a progress percentage.
// The composite unique index closes the double-enroll race at the
// storage level; handlers still pre-check to return a friendly message.
type Enrollment struct {
	gorm.Model
	StudentID  uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollment_student_course"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_student_course"`
	EnrolledAt time.Time `json:"enrolled_at" gorm:"autoCreateTime"`
	Progress   int       `json:"progress" gorm:"default:0"` // completion percentage (0-100)

	Student *User   `json:"-" gorm:"foreignKey:StudentID"`
	Course  *Course `json:"course,omitempty"`
}
