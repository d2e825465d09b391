package model

import (
	"fmt"
	"time"
)

// Song represents a song in the catalog.
type Song struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Artist    string    `json:"artist" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName maps the model to the songs table.
func (Song) TableName() string {
	return "songs"
}

// Display returns the human-readable form of the song.
func (s *Song) Display() string {
	return fmt.Sprintf("%s - %s", s.Title, s.Artist)
}
