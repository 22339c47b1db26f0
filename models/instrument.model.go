package models

import "gorm.io/gorm"

type Instrument struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	Users []User `json:"-" gorm:"many2many:user_instruments;"`
}
