package models

import "time"

// Cliente do salão, sem login próprio
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	BirthDate *time.Time `json:"birth_date"`
	Gender    string     `gorm:"size:20" json:"gender"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
