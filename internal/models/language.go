package models

import "time"

type Language struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Code      string    `gorm:"uniqueIndex;not null;size:10" json:"code" example:"pt"` // ISO 639-1 code (e.g., 'en', 'pt')
	Name      string    `gorm:"not null" json:"name" example:"Portuguese"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Language) TableName() string {
	return "languages"
}
