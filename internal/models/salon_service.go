package models

import "time"

// Serviço de tabela do salão. Dados de referência imutáveis na prática:
// duração e preço fixos consultados no cálculo da janela do agendamento.
type SalonService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	ServiceType string `gorm:"size:30;not null" json:"service_type"`

	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `gorm:"not null" json:"price"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
