package models

import "gorm.io/gorm"

// Lesson carries the teaching material for one song of a course: sheet
// music, song history and chord help. Order drives display sequencing
// within the course and is not unique.
type Lesson struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Title         string `json:"title" gorm:"not null"`
	Description   string `json:"description"`
	SongName      string `json:"song_name"`
	SongHistory   string `json:"song_history"`
	ChordHelp     string `json:"chord_help"`
	SheetMusicURL string `json:"sheet_music_url"`
	VideoURL      string `json:"video_url"`
	Order         int    `json:"order" gorm:"column:sort_order;default:0"`
}
