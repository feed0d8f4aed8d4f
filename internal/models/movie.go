package models

import (
	"time"
)

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"not null;size:255" json:"title" example:"Central do Brasil"`
	GenreID     uint      `gorm:"index;not null" json:"genre_id" example:"1"`
	Genre       *Genre    `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
	LanguageID  uint      `gorm:"index;not null" json:"language_id" example:"1"`
	Language    *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	OscarCount  int       `gorm:"not null;default:0" json:"oscar_count" example:"0"`
	ReleaseDate Date      `gorm:"index" json:"release_date" swaggertype:"string" example:"1998-04-03"`
	PosterURL   string    `json:"poster_url,omitempty" example:"https://storage.example.com/posters/central_1a2b3c4d.jpg"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}
