package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Specialties []ProfessionalSpecialty `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE;" json:"specialties"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Categoria de serviço que a profissional atende (LASH, HAIR, MANICURE...)
type ProfessionalSpecialty struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID uint   `gorm:"not null;index" json:"professional_id"`
	Specialty      string `gorm:"size:30;not null" json:"specialty"`
}
