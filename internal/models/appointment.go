package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	Status string `gorm:"size:20;not null;default:'SCHEDULED';index" json:"status"`

	Observations string `gorm:"size:500" json:"observations"`

	// Itens pertencem exclusivamente ao agendamento: no update são
	// substituídos por inteiro, nunca mesclados.
	Items []AppointmentItem `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
