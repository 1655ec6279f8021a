package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null;uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	Method string `gorm:"size:20;not null" json:"method"`
	Status string `gorm:"size:20;not null" json:"status"`

	PaymentDate time.Time `gorm:"not null" json:"payment_date"`

	Observations string `gorm:"size:255" json:"observations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
