package models

import "gorm.io/gorm"

// Course represents a course for one instrument at a given level
type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description"`
	InstrumentID uint   `json:"instrument_id" gorm:"index;not null"`
	Level        string `json:"level" gorm:"default:'Débutant'"` // Débutant, Intermédiaire, Avancé
	ImageURL     string `json:"image_url"`

	Instrument *Instrument `json:"instrument,omitempty"`
	Teachers   []User      `json:"-" gorm:"many2many:teacher_courses;"`
}
