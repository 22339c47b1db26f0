package models

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleItem is a calendar entry owned by exactly one user. A teacher's
// and a student's view of the same lesson are two independent rows so each
// side keeps its own reminder text. Start/end ordering is the caller's
// responsibility.
type ScheduleItem struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time" gorm:"not null"`
	EndTime       time.Time `json:"end_time" gorm:"not null"`
	CourseID      *uint     `json:"course_id"`
	ReminderText  string    `json:"reminder_text"`
	IsTeacherView bool      `json:"is_teacher_view" gorm:"default:false"`
}
