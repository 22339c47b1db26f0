package models

import (
	"gorm.io/gorm"
)

// Roles form a closed, flat set. There is no hierarchy: admin is not
// implicitly allowed where teacher is required.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleUser    = "user"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleUser:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Username  string `json:"username" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"default:'user'"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`

	Instruments   []Instrument `json:"instruments,omitempty" gorm:"many2many:user_instruments;"`
	TaughtCourses []Course     `json:"taught_courses,omitempty" gorm:"many2many:teacher_courses;"`
}
